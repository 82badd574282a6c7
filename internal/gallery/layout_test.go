package gallery

import (
	"math"
	"testing"

	"github.com/archivomural/murales-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func muralWithMedidas(medidas string) models.Mural {
	return models.Mural{ID: uuid.New(), Title: "m", Medidas: medidas}
}

func TestComputeLayout_TwoMuralSpacing(t *testing.T) {
	murals := []models.Mural{
		muralWithMedidas("2m x 2m"), // width 20
		muralWithMedidas("3m x 2m"), // width 30
	}

	layout := ComputeLayout(murals, testGalleryConfig())

	require.Len(t, layout.Placements, 2)
	assert.Equal(t, 0.0, layout.Placements[0].X)
	// 0 + 10 (half of A) + 2 (spacing) + 15 (half of B)
	assert.Equal(t, 27.0, layout.Placements[1].X)
	assert.Equal(t, 0.0, layout.FirstX)
	assert.Equal(t, 27.0, layout.LastX)
	assert.Equal(t, -10.0, layout.StartWallX)
	assert.Equal(t, 37.0, layout.EndWallX)
	assert.Equal(t, 47.0, layout.HallLength)
	assert.Equal(t, 13.5, layout.CenterX)
}

func TestComputeLayout_PositionsStrictlyIncreasing(t *testing.T) {
	murals := []models.Mural{
		muralWithMedidas("2m x 3m"),
		muralWithMedidas("1m x 1m"),
		muralWithMedidas("bad"),
		muralWithMedidas("5m x 4m"),
	}
	cfg := testGalleryConfig()

	layout := ComputeLayout(murals, cfg)

	require.Len(t, layout.Placements, len(murals))
	for i := 1; i < len(layout.Placements); i++ {
		prev, curr := layout.Placements[i-1], layout.Placements[i]
		assert.Greater(t, curr.X, prev.X)
		gap := (curr.X - curr.Width/2) - (prev.X + prev.Width/2)
		assert.InDelta(t, cfg.Spacing, gap, 1e-9)
	}
}

func TestComputeLayout_Empty(t *testing.T) {
	cfg := testGalleryConfig()

	layout := ComputeLayout(nil, cfg)

	assert.Empty(t, layout.Placements)
	assert.False(t, math.IsNaN(layout.HallLength))
	assert.Equal(t, cfg.MinHallLength, layout.HallLength)
	assert.Equal(t, -cfg.WallMarginInitial, layout.StartWallX)
	assert.Equal(t, layout.StartWallX+cfg.MinHallLength, layout.EndWallX)
	assert.Equal(t, cfg.MinFixtures, layout.PointLights)
	assert.Equal(t, cfg.MinFixtures, layout.Lamps)
}

func TestComputeLayout_SingleMural(t *testing.T) {
	cfg := testGalleryConfig()

	layout := ComputeLayout([]models.Mural{muralWithMedidas("2m x 3m")}, cfg)

	require.Len(t, layout.Placements, 1)
	assert.Equal(t, 0.0, layout.Placements[0].X)
	assert.Equal(t, -10.0, layout.StartWallX)
	// 0 + 10 margin = 10, but the hall is floored at 40 from the start wall.
	assert.Equal(t, 30.0, layout.EndWallX)
	assert.Equal(t, cfg.MinHallLength, layout.HallLength)
	assert.GreaterOrEqual(t, layout.PointLights, cfg.MinFixtures)
	assert.GreaterOrEqual(t, layout.Lamps, cfg.MinFixtures)
}

func TestComputeLayout_FixtureCountsScaleWithLength(t *testing.T) {
	cfg := testGalleryConfig()
	murals := make([]models.Mural, 10)
	for i := range murals {
		murals[i] = muralWithMedidas("3m x 3m")
	}

	layout := ComputeLayout(murals, cfg)

	// 10 murals of width 30 with spacing 2: last at 9*32=288, hall 288+20=308.
	assert.Equal(t, 308.0, layout.HallLength)
	assert.Equal(t, 10, layout.PointLights) // 308/30
	assert.Equal(t, 6, layout.Lamps)        // 308/45
}
