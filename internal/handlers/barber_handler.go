package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vbfcarvalho/barber-agenda/internal/httperr"
	"github.com/vbfcarvalho/barber-agenda/internal/httpresp"
	"github.com/vbfcarvalho/barber-agenda/internal/models"
	ucschedule "github.com/vbfcarvalho/barber-agenda/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	db       *gorm.DB
	deleteUC *ucschedule.DeleteBarber
}

func NewBarberHandler(db *gorm.DB, deleteUC *ucschedule.DeleteBarber) *BarberHandler {
	return &BarberHandler{
		db:       db,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name string `json:"name" binding:"required"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber := models.Barber{Name: req.Name}
	if err := h.db.WithContext(c.Request.Context()).Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id)); err != nil {
		switch {
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		case httperr.IsBusiness(err, "barber_has_appointments"):
			httperr.Conflict(c, "barber_has_appointments", "Barbeiro possui agendamentos ativos.")
		default:
			httperr.Internal(c, "failed_to_delete_barber", "Erro ao excluir barbeiro.")
		}
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}
