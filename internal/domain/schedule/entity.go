package schedule

import (
	"time"

	"github.com/vbfcarvalho/barber-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel marca o agendamento como cancelado. Não há guarda além da
// existência: agendamentos passados podem ser cancelados e cancelar
// duas vezes é um no-op.
func Cancel(ap *models.Appointment, now time.Time) {
	if ap.Status == string(StatusCancelled) {
		return
	}
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
}

// WindowOf extrai a janela ocupada por um agendamento.
func WindowOf(ap *models.Appointment) Window {
	return Window{Start: ap.StartsAt, End: ap.EndsAt}
}
