package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string  `gorm:"size:100;not null" json:"name"`
	Email    string  `gorm:"size:100;not null" json:"email"`
	Phone    *string `gorm:"size:20" json:"phone"`
	ImageURL *string `gorm:"size:255" json:"image_url"`

	Status string `gorm:"size:20;default:'new'" json:"status"`

	// estatísticas desnormalizadas, atualizadas apenas por update explícito
	LastVisit       *string `gorm:"size:10" json:"last_visit"`
	TotalVisits     int     `gorm:"default:0" json:"total_visits"`
	FavoriteService *string `gorm:"size:100" json:"favorite_service"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
