package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

type ShopGormRepository struct {
	db *gorm.DB
}

func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

func (r *ShopGormRepository) Get(ctx context.Context) (*models.ShopProfile, error) {
	var p models.ShopProfile
	err := r.db.WithContext(ctx).Order("id ASC").First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p = models.ShopProfile{
		Name:     "BarberBook",
		Timezone: timezone.DefaultTimezone,
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ShopGormRepository) Update(ctx context.Context, p *models.ShopProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}
