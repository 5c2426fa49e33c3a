package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/vbfcarvalho/barber-agenda/internal/audit"
	"github.com/vbfcarvalho/barber-agenda/internal/config"
	"github.com/vbfcarvalho/barber-agenda/internal/handlers"
	infraRepo "github.com/vbfcarvalho/barber-agenda/internal/infra/repository"
	"github.com/vbfcarvalho/barber-agenda/internal/middleware"
	ucschedule "github.com/vbfcarvalho/barber-agenda/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	barberLocks := ucschedule.NewBarberLocks()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	bookUC := ucschedule.NewBookAppointment(
		scheduleRepo,
		barberLocks,
		auditDispatcher,
	)

	cancelUC := ucschedule.NewCancelAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	deleteBarberUC := ucschedule.NewDeleteBarber(
		scheduleRepo,
		auditDispatcher,
	)

	availabilityUC := ucschedule.NewGetAvailability(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	barberHandler := handlers.NewBarberHandler(db, deleteBarberUC)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		cfg,
		bookUC,
		cancelUC,
		availabilityUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// BARBERS
		// ------------------------------
		api.POST("/barbers", barberHandler.Create)
		api.GET("/barbers", barberHandler.List)
		api.DELETE("/barbers/:id", barberHandler.Delete)
		api.GET("/barbers/:id/availability", appointmentHandler.Availability)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.POST("/services", serviceHandler.Create)
		api.GET("/services", serviceHandler.List)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST(
			"/appointments",
			middleware.RateLimit(rdb, cfg.BookingRateLimit, cfg.BookingRateWindow),
			appointmentHandler.Create,
		)
		api.GET("/appointments", appointmentHandler.ListAll)
		api.GET("/appointments/active", appointmentHandler.ListActive)
		api.DELETE("/appointments/:id", appointmentHandler.Cancel)

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
