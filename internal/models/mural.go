package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mural is a single artwork record. Medidas is the free-text dimensions
// string ("2m x 3m") that the gallery layout parses leniently.
type Mural struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Author      string         `gorm:"size:255" json:"author"`
	Technique   string         `gorm:"size:255" json:"technique"`
	Year        int            `json:"year"`
	ImageURL    string         `gorm:"type:text" json:"image_url"`
	WebpURL     string         `gorm:"type:text" json:"webp_url"`
	Location    string         `gorm:"size:255" json:"location"`
	Latitude    *float64       `json:"latitude"`
	Longitude   *float64       `json:"longitude"`
	Description string         `gorm:"type:text" json:"description"`
	Medidas     string         `gorm:"size:100" json:"medidas"`
	CreatedBy   uuid.UUID      `gorm:"type:uuid;index" json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
