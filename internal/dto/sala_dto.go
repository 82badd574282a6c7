package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSalaRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	MuralIDs    []uuid.UUID `json:"mural_ids"`
}

type UpdateSalaRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type AttachMuralsRequest struct {
	MuralIDs []uuid.UUID `json:"mural_ids"`
}

// DetachMuralsRequest removes the listed pairs; a nil list clears the
// whole sala.
type DetachMuralsRequest struct {
	MuralIDs []uuid.UUID `json:"mural_ids"`
}

type ReplaceMuralsRequest struct {
	MuralIDs []uuid.UUID `json:"mural_ids"`
}

type CollaboratorRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

type SalaResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	OwnerID       uuid.UUID       `json:"owner_id"`
	Collaborators []UserResponse  `json:"collaborators,omitempty"`
	Murals        []MuralResponse `json:"murals,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type SalaListResponse struct {
	Salas []SalaResponse `json:"salas"`
	Total int64          `json:"total"`
}

type DetachResponse struct {
	Removed int64 `json:"removed"`
}

type ProximityRequest struct {
	Position  float64  `json:"position"`
	Threshold *float64 `json:"threshold"`
}
