package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a visitor flag on a mural (wrong attribution, inappropriate
// content). Admins resolve or dismiss them.
type Report struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MuralID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"mural_id"`
	ReporterID uuid.UUID  `gorm:"type:uuid;not null;index" json:"reporter_id"`
	Reason     string     `gorm:"size:100;not null" json:"reason"`
	Details    string     `gorm:"type:text" json:"details"`
	Status     string     `gorm:"size:20;default:'pending';index" json:"status"`
	ResolvedAt *time.Time `json:"resolved_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

const (
	ReportPending   = "pending"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)
