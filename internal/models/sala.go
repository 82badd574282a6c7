package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sala is a curated grouping of murals shown together in the virtual
// gallery. The owner and collaborators may edit it; only the owner may
// delete it.
type Sala struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	OwnerID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner         User           `gorm:"foreignKey:OwnerID" json:"-"`
	Collaborators []User         `gorm:"many2many:sala_collaborators" json:"collaborators,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// SalaMural links a sala to a mural. The composite primary key keeps a
// given pair from appearing more than once; Position is the display
// order inside the hall.
type SalaMural struct {
	SalaID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"sala_id"`
	MuralID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"mural_id"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
