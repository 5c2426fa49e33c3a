package schedule

import (
	"context"
	"errors"
	"testing"

	domain "github.com/vbfcarvalho/barber-agenda/internal/domain/schedule"
	"github.com/vbfcarvalho/barber-agenda/internal/httperr"
)

func TestCancelAppointment(t *testing.T) {
	repo := newFakeRepo()
	book := NewBookAppointment(repo, NewBarberLocks(), nil)
	cancel := NewCancelAppointment(repo, nil)

	ap := mustBook(t, book, "Ana", 1, at(10, 0))

	got, err := cancel.Execute(context.Background(), ap.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %q, want cancelled", got.Status)
	}
	if got.CancelledAt == nil {
		t.Fatalf("expected cancelled_at to be set")
	}

	// cancelado não conta mais para conflito
	mustBook(t, book, "Dan", 1, at(10, 0))
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()
	cancel := NewCancelAppointment(repo, nil)

	_, err := cancel.Execute(context.Background(), 42)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("err = %v, want appointment_not_found", err)
	}
}

func TestCancelAppointment_LookupFailureIsNotBusiness(t *testing.T) {
	repo := newFakeRepo()
	repo.lookupErr = errors.New("connection reset by peer")
	cancel := NewCancelAppointment(repo, nil)

	_, err := cancel.Execute(context.Background(), 1)
	if err == nil {
		t.Fatalf("expected store error")
	}
	if httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("store failure surfaced as appointment_not_found")
	}
}

func TestCancelAppointment_Twice(t *testing.T) {
	repo := newFakeRepo()
	book := NewBookAppointment(repo, NewBarberLocks(), nil)
	cancel := NewCancelAppointment(repo, nil)

	ap := mustBook(t, book, "Ana", 1, at(10, 0))

	first, err := cancel.Execute(context.Background(), ap.ID)
	if err != nil {
		t.Fatalf("first cancel: %v", err)
	}

	second, err := cancel.Execute(context.Background(), ap.ID)
	if err != nil {
		t.Fatalf("second cancel must be a no-op, got %v", err)
	}
	if !second.CancelledAt.Equal(*first.CancelledAt) {
		t.Fatalf("second cancel must not move cancelled_at")
	}
}
