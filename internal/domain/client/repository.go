package client

import (
	"context"

	"github.com/barberbook/barberbook-api/internal/models"
)

type Repository interface {
	// List retorna todos os clientes ordenados por nome.
	List(ctx context.Context) ([]models.Client, error)

	// Search filtra por substring (case-insensitive) em nome, email e telefone.
	Search(ctx context.Context, query string) ([]models.Client, error)

	ListByStatus(ctx context.Context, status Status) ([]models.Client, error)

	// GetByID retorna (nil, nil) quando o cliente não existe.
	GetByID(ctx context.Context, id string) (*models.Client, error)

	Create(ctx context.Context, c *models.Client) error
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id string) error
}
