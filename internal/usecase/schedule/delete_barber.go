package schedule

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vbfcarvalho/barber-agenda/internal/audit"
	domain "github.com/vbfcarvalho/barber-agenda/internal/domain/schedule"
	"github.com/vbfcarvalho/barber-agenda/internal/httperr"
)

// DeleteBarber remove um barbeiro do catálogo. A remoção é barrada
// enquanto houver agendamentos ativos apontando para ele, para que
// todo agendamento ativo sempre resolva para um barbeiro existente.
type DeleteBarber struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBarber(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBarber {
	return &DeleteBarber{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBarber) Execute(
	ctx context.Context,
	barberID uint,
) error {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("barber_not_found")
		}
		return err
	}

	busy, err := uc.repo.BarberHasActiveAppointments(ctx, barberID)
	if err != nil {
		return err
	}
	if busy {
		return httperr.ErrBusiness("barber_has_appointments")
	}

	if err := uc.repo.DeleteBarber(ctx, barberID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &barberID,
	})

	return nil
}
