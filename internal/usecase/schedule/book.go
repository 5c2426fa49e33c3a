package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vbfcarvalho/barber-agenda/internal/audit"
	domain "github.com/vbfcarvalho/barber-agenda/internal/domain/schedule"
	"github.com/vbfcarvalho/barber-agenda/internal/httperr"
	"github.com/vbfcarvalho/barber-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientName string
	ServiceID  uint
	StartsAt   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	locks *BarberLocks
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	locks *BarberLocks,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		locks: locks,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Cliente
	// --------------------------------------------------
	clientName := strings.TrimSpace(in.ClientName)
	if clientName == "" {
		return nil, httperr.ErrBusiness("invalid_client")
	}

	// --------------------------------------------------
	// 2. Serviço (snapshot de duração e barbeiro)
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		// falha de infraestrutura não é "não encontrado"
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	// o catálogo deveria garantir duração positiva, mas o motor
	// nunca aceita uma janela vazia ou invertida
	if svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	// --------------------------------------------------
	// 3. Janela candidata
	// --------------------------------------------------
	start := in.StartsAt.UTC().Truncate(time.Second)
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)
	candidate := domain.Window{Start: start, End: end}

	// --------------------------------------------------
	// 4. Seção crítica por barbeiro (check-then-act)
	// --------------------------------------------------
	unlock := uc.locks.Lock(svc.BarberID)
	defer unlock()

	windows, err := uc.repo.ListActiveWindows(ctx, svc.BarberID)
	if err != nil {
		return nil, err
	}

	if domain.NewTimeline(windows).Conflicts(candidate) {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	// --------------------------------------------------
	// 5. Criação (status centralizado no domínio)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientName: clientName,
		BarberID:   svc.BarberID,
		ServiceID:  svc.ID,
		StartsAt:   start,
		EndsAt:     end,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
