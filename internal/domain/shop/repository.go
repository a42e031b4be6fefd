package shop

import (
	"context"

	"github.com/barberbook/barberbook-api/internal/models"
)

type Repository interface {
	// Get retorna o perfil da barbearia, criando o registro padrão
	// na primeira chamada.
	Get(ctx context.Context) (*models.ShopProfile, error)

	Update(ctx context.Context, p *models.ShopProfile) error
}
