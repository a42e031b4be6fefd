package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Serviço do catálogo. Editar duração/preço não altera agendamentos
// já criados: cada agendamento guarda sua própria cópia da duração.
type Service struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description *string `gorm:"size:255" json:"description"`
	Duration    int     `gorm:"not null" json:"duration"`
	Price       float64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
