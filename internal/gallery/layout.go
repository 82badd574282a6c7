package gallery

import (
	"github.com/archivomural/murales-backend/internal/config"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/google/uuid"
)

// Placement is one mural positioned along the hall axis. X is the mural
// center; murals hang flat on the wall so a single coordinate suffices.
type Placement struct {
	MuralID uuid.UUID `json:"mural_id"`
	X       float64   `json:"x"`
	Width   float64   `json:"width"`
	Height  float64   `json:"height"`
}

// Layout is the computed 1-D arrangement of a sala's murals plus the
// boundary metadata the proximity detector and the lighting pass need.
type Layout struct {
	Placements        []Placement `json:"placements"`
	FirstX            float64     `json:"first_x"`
	LastX             float64     `json:"last_x"`
	StartWallX        float64     `json:"start_wall_x"`
	EndWallX          float64     `json:"end_wall_x"`
	HallLength        float64     `json:"hall_length"`
	CenterX           float64     `json:"center_x"`
	WallMarginInitial float64     `json:"wall_margin_initial"`
	WallMarginFinal   float64     `json:"wall_margin_final"`
	PointLights       int         `json:"point_lights"`
	Lamps             int         `json:"lamps"`
}

// ComputeLayout places murals left to right along a single axis. Each
// mural sits one spacing unit past the previous mural's right edge, so
// positions are strictly increasing and adjacent gaps equal the
// configured spacing. The hall extends one margin past each outermost
// mural and is floored at MinHallLength so an empty or single-mural sala
// still renders a usable room.
func ComputeLayout(murals []models.Mural, cfg config.GalleryConfig) Layout {
	placements := make([]Placement, 0, len(murals))

	var x, prevHalf float64
	for i, m := range murals {
		w, h := ParseDimensions(m.Medidas, cfg)
		half := w / 2
		if i > 0 {
			x += prevHalf + cfg.Spacing + half
		}
		placements = append(placements, Placement{
			MuralID: m.ID,
			X:       x,
			Width:   w,
			Height:  h,
		})
		prevHalf = half
	}

	var firstX, lastX float64
	if len(placements) > 0 {
		firstX = placements[0].X
		lastX = placements[len(placements)-1].X
	}

	startWall := firstX - cfg.WallMarginInitial
	endWall := lastX + cfg.WallMarginFinal
	if endWall-startWall < cfg.MinHallLength {
		endWall = startWall + cfg.MinHallLength
	}
	hallLength := endWall - startWall

	return Layout{
		Placements:        placements,
		FirstX:            firstX,
		LastX:             lastX,
		StartWallX:        startWall,
		EndWallX:          endWall,
		HallLength:        hallLength,
		CenterX:           (startWall + endWall) / 2,
		WallMarginInitial: cfg.WallMarginInitial,
		WallMarginFinal:   cfg.WallMarginFinal,
		PointLights:       fixtureCount(hallLength, cfg.LightSpan, cfg.MinFixtures),
		Lamps:             fixtureCount(hallLength, cfg.LampSpan, cfg.MinFixtures),
	}
}

// fixtureCount scales fixture density linearly with hall length, with a
// floor so even a single-mural sala is lit.
func fixtureCount(hallLength, span float64, minimum int) int {
	if span <= 0 {
		return minimum
	}
	n := int(hallLength / span)
	if n < minimum {
		return minimum
	}
	return n
}
