package schedule

import "time"

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time

	// Limites do expediente no formato "15:04".
	DayStart string
	DayEnd   string
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
