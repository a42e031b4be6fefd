package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) Search(ctx context.Context, query string) ([]models.Client, error) {
	q := r.db.WithContext(ctx)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) ListByStatus(ctx context.Context, status domain.Status) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientGormRepository) Update(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id).Error
}
