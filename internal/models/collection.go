package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Collection is a user's personal list of saved murals. Items is an
// opaque ordered JSON array owned by the client.
type Collection struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Items     datatypes.JSON `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
