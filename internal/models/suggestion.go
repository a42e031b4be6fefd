package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sugestão de agendamento proativo enviada ao cliente.
type Suggestion struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID  string  `gorm:"type:uuid;not null;index" json:"client_id"`
	ServiceID *string `gorm:"type:uuid" json:"service_id"`

	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:8;not null" json:"time"`

	Reason string `gorm:"size:255" json:"reason"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	SentAt      *time.Time `json:"sent_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Suggestion) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
