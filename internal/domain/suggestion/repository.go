package suggestion

import (
	"context"

	"github.com/barberbook/barberbook-api/internal/models"
)

type Repository interface {
	// List retorna todas as sugestões, mais recentes primeiro.
	List(ctx context.Context) ([]models.Suggestion, error)

	ListByStatus(ctx context.Context, status Status) ([]models.Suggestion, error)

	// GetByID retorna (nil, nil) quando a sugestão não existe.
	GetByID(ctx context.Context, id string) (*models.Suggestion, error)

	Create(ctx context.Context, s *models.Suggestion) error
	Update(ctx context.Context, s *models.Suggestion) error
	Delete(ctx context.Context, id string) error
}
