package schedule

import (
	"testing"
	"time"
)

func TestBarberLocks_SameBarberSerializes(t *testing.T) {
	locks := NewBarberLocks()

	unlock := locks.Lock(1)

	acquired := make(chan struct{})
	go func() {
		u := locks.Lock(1)
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatalf("second Lock(1) must block while the first is held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatalf("second Lock(1) never acquired after release")
	}
}

func TestBarberLocks_DifferentBarbersDoNotBlock(t *testing.T) {
	locks := NewBarberLocks()

	unlock := locks.Lock(1)
	defer unlock()

	acquired := make(chan struct{})
	go func() {
		u := locks.Lock(2)
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatalf("Lock(2) must not wait for Lock(1)")
	}
}
