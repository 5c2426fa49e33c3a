package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vbfcarvalho/barber-agenda/internal/httperr"
	"github.com/vbfcarvalho/barber-agenda/internal/httpresp"
	"github.com/vbfcarvalho/barber-agenda/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required,gt=0"`
	BarberID    uint   `json:"barber_id" binding:"required"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		First(&barber, req.BarberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		DurationMin: req.DurationMin,
		BarberID:    barber.ID,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}
