package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vbfcarvalho/barber-agenda/internal/config"
	domain "github.com/vbfcarvalho/barber-agenda/internal/domain/schedule"
	"github.com/vbfcarvalho/barber-agenda/internal/dto"
	"github.com/vbfcarvalho/barber-agenda/internal/httperr"
	"github.com/vbfcarvalho/barber-agenda/internal/httpresp"
	"github.com/vbfcarvalho/barber-agenda/internal/models"
	"github.com/vbfcarvalho/barber-agenda/internal/timezone"
	ucschedule "github.com/vbfcarvalho/barber-agenda/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	cfg          *config.Config
	bookUC       *ucschedule.BookAppointment
	cancelUC     *ucschedule.CancelAppointment
	availability *ucschedule.GetAvailability
}

func NewAppointmentHandler(
	db *gorm.DB,
	cfg *config.Config,
	bookUC *ucschedule.BookAppointment,
	cancelUC *ucschedule.CancelAppointment,
	availability *ucschedule.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		cfg:          cfg,
		bookUC:       bookUC,
		cancelUC:     cancelUC,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	StartsAt   string `json:"starts_at" binding:"required"` // RFC3339 ou 2006-01-02T15:04
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseStartsAt(timezone.Location(h.cfg.Timezone), req.StartsAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_starts_at", "Data ou hora inválida.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucschedule.BookAppointmentInput{
		ClientName: req.ClientName,
		ServiceID:  req.ServiceID,
		StartsAt:   start,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "time_conflict"):
			httperr.Conflict(c, "time_conflict", "Esse barbeiro já tem cliente nesse horário.")
		case httperr.IsBusiness(err, "invalid_duration"):
			httperr.BadRequest(c, "invalid_duration", "Serviço com duração inválida.")
		case httperr.IsBusiness(err, "invalid_client"):
			httperr.BadRequest(c, "invalid_client", "Nome do cliente é obrigatório.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromAppointment(ap))
}

// ======================================================
// LISTING
// ======================================================

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	var apps []models.Appointment
	if err := h.db.WithContext(c.Request.Context()).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, dto.FromAppointments(apps))
}

func (h *AppointmentHandler) ListActive(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "barber_id é obrigatório.")
		return
	}

	var apps []models.Appointment
	if err := h.db.WithContext(c.Request.Context()).
		Where(
			"barber_id = ? AND status = ?",
			uint(barberID),
			string(domain.StatusScheduled),
		).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, dto.FromAppointments(apps))
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Identificador inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "service_id é obrigatório.")
		return
	}

	date, err := parseDate(timezone.Location(h.cfg.Timezone), c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      date,
		DayStart:  h.cfg.OpenTime,
		DayEnd:    h.cfg.CloseTime,
	})
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro ao calcular horários.")
		return
	}

	httpresp.List(c, slots)
}
