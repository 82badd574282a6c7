package models

import (
	"time"

	"github.com/google/uuid"
)

// ViewerConfig is a tuning value served to the 3D viewer client
// (spacing, thresholds, feature toggles). Type tells the client how to
// decode Value: string, bool, int, float or json.
type ViewerConfig struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Key       string    `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	Type      string    `gorm:"size:20;default:'string'" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
