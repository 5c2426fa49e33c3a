package handlers

import (
	"time"
)

// --------------------------------------------------
// Datas e horários vêm do cliente sem fuso na maioria
// dos casos; o fuso configurado do sistema resolve.
// --------------------------------------------------

func parseStartsAt(loc *time.Location, s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, loc)
}

func parseDate(loc *time.Location, s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, loc)
}
