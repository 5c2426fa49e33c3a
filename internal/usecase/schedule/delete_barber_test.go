package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/vbfcarvalho/barber-agenda/internal/httperr"
)

func TestDeleteBarber_BlockedByActiveAppointments(t *testing.T) {
	repo := newFakeRepo()
	book := NewBookAppointment(repo, NewBarberLocks(), nil)
	cancel := NewCancelAppointment(repo, nil)
	del := NewDeleteBarber(repo, nil)

	ap := mustBook(t, book, "Ana", 1, at(10, 0))

	err := del.Execute(context.Background(), 1)
	if !httperr.IsBusiness(err, "barber_has_appointments") {
		t.Fatalf("err = %v, want barber_has_appointments", err)
	}

	// com o agendamento cancelado a exclusão passa
	if _, err := cancel.Execute(context.Background(), ap.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := del.Execute(context.Background(), 1); err != nil {
		t.Fatalf("delete after cancel: %v", err)
	}

	if _, err := repo.GetBarber(context.Background(), 1); err == nil {
		t.Fatalf("barber should be gone")
	}
}

func TestDeleteBarber_NotFound(t *testing.T) {
	repo := newFakeRepo()
	del := NewDeleteBarber(repo, nil)

	err := del.Execute(context.Background(), 99)
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("err = %v, want barber_not_found", err)
	}
}

func TestDeleteBarber_LookupFailureIsNotBusiness(t *testing.T) {
	repo := newFakeRepo()
	repo.lookupErr = errors.New("connection reset by peer")
	del := NewDeleteBarber(repo, nil)

	err := del.Execute(context.Background(), 1)
	if err == nil {
		t.Fatalf("expected store error")
	}
	if httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("store failure surfaced as barber_not_found")
	}
}

func TestDeleteBarber_FreeBarber(t *testing.T) {
	repo := newFakeRepo()
	del := NewDeleteBarber(repo, nil)

	if err := del.Execute(context.Background(), 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
