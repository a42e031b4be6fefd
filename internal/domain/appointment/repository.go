package appointment

import (
	"context"

	"github.com/barberbook/barberbook-api/internal/models"
)

type Repository interface {
	// List retorna todos os agendamentos ordenados por data e hora.
	List(ctx context.Context) ([]models.Appointment, error)

	// ListByDate filtra pela string exata "YYYY-MM-DD", ordenado por hora.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)

	ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error)

	// GetByID retorna (nil, nil) quando o agendamento não existe.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id string) error
}
