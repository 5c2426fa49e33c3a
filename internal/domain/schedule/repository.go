package schedule

import (
	"context"
	"time"

	"github.com/vbfcarvalho/barber-agenda/internal/models"
)

type Repository interface {
	// -------- Catálogo --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	DeleteBarber(
		ctx context.Context,
		id uint,
	) error

	// -------- Agendamento (create / conflict) --------
	ListActiveWindows(
		ctx context.Context,
		barberID uint,
	) ([]Window, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Agendamento (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Consultas --------
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	BarberHasActiveAppointments(
		ctx context.Context,
		barberID uint,
	) (bool, error)
}
