package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID  string  `gorm:"type:uuid;not null;index" json:"client_id"`
	ServiceID *string `gorm:"type:uuid" json:"service_id"`

	// data e hora locais da barbearia, sem timezone
	Date string `gorm:"size:10;not null;index" json:"date"`
	Time string `gorm:"size:8;not null" json:"time"`

	// minutos, copiados do serviço no momento da criação
	Duration int `gorm:"not null" json:"duration"`

	Status string  `gorm:"size:20;default:'upcoming'" json:"status"`
	Notes  *string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
