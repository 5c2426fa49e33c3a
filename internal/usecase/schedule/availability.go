package schedule

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/vbfcarvalho/barber-agenda/internal/domain/schedule"
	"github.com/vbfcarvalho/barber-agenda/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	if svc.BarberID != in.BarberID {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	loc := in.Date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(in.DayStart)
	dayEnd := parseHM(in.DayEnd)
	if !dayEnd.After(dayStart) {
		return []domain.TimeSlot{}, nil
	}

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.BarberID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(svc.DurationMin) * time.Minute
	slots := []domain.TimeSlot{}

	apIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slot := domain.Window{Start: cur, End: cur.Add(slotDuration)}

		// avança agendamentos que terminam até o início do slot
		for apIdx < len(appointments) && !appointments[apIdx].EndsAt.After(slot.Start) {
			apIdx++
		}

		conflict := false
		if apIdx < len(appointments) {
			conflict = appointments[apIdx].StartsAt.Before(slot.End)
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slot.Start.Format("15:04"),
				End:   slot.End.Format("15:04"),
			})
		}
	}

	return slots, nil
}
