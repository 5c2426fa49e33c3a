package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/vbfcarvalho/barber-agenda/internal/domain/schedule"
	"github.com/vbfcarvalho/barber-agenda/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ScheduleGormRepository) DeleteBarber(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Barber{}, id).Error
}

// --------------------------------------------------
// Agendamento (create / conflict)
// --------------------------------------------------

func (r *ScheduleGormRepository) ListActiveWindows(
	ctx context.Context,
	barberID uint,
) ([]domain.Window, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("starts_at", "ends_at").
		Where(
			"barber_id = ? AND status = ?",
			barberID,
			string(domain.StatusScheduled),
		).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	windows := make([]domain.Window, 0, len(apps))
	for i := range apps {
		windows = append(windows, domain.WindowOf(&apps[i]))
	}

	return windows, nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Agendamento (state change)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Consultas
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("starts_at", "ends_at").
		Where(
			"barber_id = ? AND status = ? AND starts_at < ? AND ends_at > ?",
			barberID,
			string(domain.StatusScheduled),
			end,
			start,
		).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) BarberHasActiveAppointments(
	ctx context.Context,
	barberID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND status = ?",
			barberID,
			string(domain.StatusScheduled),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
