package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/vbfcarvalho/barber-agenda/internal/domain/schedule"
	"github.com/vbfcarvalho/barber-agenda/internal/httperr"
)

func availabilityInput(serviceID uint) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: serviceID,
		Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DayStart:  "09:00",
		DayEnd:    "12:00",
	}
}

func TestGetAvailability_SkipsBookedSlots(t *testing.T) {
	repo := newFakeRepo()
	book := NewBookAppointment(repo, NewBarberLocks(), nil)
	avail := NewGetAvailability(repo)

	mustBook(t, book, "Ana", 1, at(10, 0))

	slots, err := avail.Execute(context.Background(), availabilityInput(1))
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	want := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want starts %v", slots, want)
	}
	for i, s := range slots {
		if s.Start != want[i] {
			t.Fatalf("slot %d start = %s, want %s", i, s.Start, want[i])
		}
	}
}

func TestGetAvailability_EmptyAgendaFillsTheDay(t *testing.T) {
	repo := newFakeRepo()
	avail := NewGetAvailability(repo)

	slots, err := avail.Execute(context.Background(), availabilityInput(1))
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	// 09:00–12:00 com serviço de 30 min
	if len(slots) != 6 {
		t.Fatalf("len(slots) = %d, want 6", len(slots))
	}
	if slots[len(slots)-1].End != "12:00" {
		t.Fatalf("last slot end = %s, want 12:00", slots[len(slots)-1].End)
	}
}

func TestGetAvailability_ServiceOfAnotherBarber(t *testing.T) {
	repo := newFakeRepo()
	avail := NewGetAvailability(repo)

	// serviço 2 pertence ao barbeiro 2
	_, err := avail.Execute(context.Background(), availabilityInput(2))
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("err = %v, want service_not_found", err)
	}
}

func TestGetAvailability_LookupFailureIsNotBusiness(t *testing.T) {
	repo := newFakeRepo()
	repo.lookupErr = errors.New("connection reset by peer")
	avail := NewGetAvailability(repo)

	_, err := avail.Execute(context.Background(), availabilityInput(1))
	if err == nil {
		t.Fatalf("expected store error")
	}
	if httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("store failure surfaced as service_not_found")
	}
}

func TestGetAvailability_CancelledAppointmentsDoNotBlock(t *testing.T) {
	repo := newFakeRepo()
	book := NewBookAppointment(repo, NewBarberLocks(), nil)
	cancel := NewCancelAppointment(repo, nil)
	avail := NewGetAvailability(repo)

	ap := mustBook(t, book, "Ana", 1, at(10, 0))
	if _, err := cancel.Execute(context.Background(), ap.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	slots, err := avail.Execute(context.Background(), availabilityInput(1))
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(slots) != 6 {
		t.Fatalf("len(slots) = %d, want 6 (cancelado não ocupa horário)", len(slots))
	}
}
