package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id).Error
}
