package catalog

import (
	"context"

	"github.com/barberbook/barberbook-api/internal/models"
)

type Repository interface {
	// List retorna o catálogo ordenado por nome.
	List(ctx context.Context) ([]models.Service, error)

	// GetByID retorna (nil, nil) quando o serviço não existe.
	GetByID(ctx context.Context, id string) (*models.Service, error)

	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id string) error
}
