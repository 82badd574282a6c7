package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReportRequest struct {
	MuralID uuid.UUID `json:"mural_id"`
	Reason  string    `json:"reason"`
	Details string    `json:"details"`
}

type ActionReportRequest struct {
	Status string `json:"status"` // resolved or dismissed
}

type ReportResponse struct {
	ID         uuid.UUID  `json:"id"`
	MuralID    uuid.UUID  `json:"mural_id"`
	ReporterID uuid.UUID  `json:"reporter_id"`
	Reason     string     `json:"reason"`
	Details    string     `json:"details"`
	Status     string     `json:"status"`
	ResolvedAt *time.Time `json:"resolved_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int64            `json:"total"`
}
