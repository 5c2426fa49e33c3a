package dto

import (
	"time"

	"github.com/vbfcarvalho/barber-agenda/internal/models"
)

type AppointmentDTO struct {
	ID          uint       `json:"id"`
	ClientName  string     `json:"client_name"`
	BarberID    uint       `json:"barber_id"`
	ServiceID   uint       `json:"service_id"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      time.Time  `json:"ends_at"`
	Status      string     `json:"status"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:          ap.ID,
		ClientName:  ap.ClientName,
		BarberID:    ap.BarberID,
		ServiceID:   ap.ServiceID,
		StartsAt:    ap.StartsAt,
		EndsAt:      ap.EndsAt,
		Status:      ap.Status,
		CancelledAt: ap.CancelledAt,
	}
}

func FromAppointments(apps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(apps))
	for i := range apps {
		out = append(out, FromAppointment(&apps[i]))
	}
	return out
}
