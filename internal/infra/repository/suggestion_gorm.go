package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barberbook/barberbook-api/internal/domain/suggestion"
	"github.com/barberbook/barberbook-api/internal/models"
)

type SuggestionGormRepository struct {
	db *gorm.DB
}

func NewSuggestionGormRepository(db *gorm.DB) *SuggestionGormRepository {
	return &SuggestionGormRepository{db: db}
}

func (r *SuggestionGormRepository) List(ctx context.Context) ([]models.Suggestion, error) {
	var sugs []models.Suggestion
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&sugs).Error; err != nil {
		return nil, err
	}
	return sugs, nil
}

func (r *SuggestionGormRepository) ListByStatus(ctx context.Context, status domain.Status) ([]models.Suggestion, error) {
	var sugs []models.Suggestion
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&sugs).Error; err != nil {
		return nil, err
	}
	return sugs, nil
}

func (r *SuggestionGormRepository) GetByID(ctx context.Context, id string) (*models.Suggestion, error) {
	var s models.Suggestion
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SuggestionGormRepository) Create(ctx context.Context, s *models.Suggestion) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SuggestionGormRepository) Update(ctx context.Context, s *models.Suggestion) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SuggestionGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Suggestion{}, "id = ?", id).Error
}
