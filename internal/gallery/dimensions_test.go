package gallery

import (
	"testing"

	"github.com/archivomural/murales-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func testGalleryConfig() config.GalleryConfig {
	return config.GalleryConfig{
		Spacing:            2,
		WallMarginInitial:  10,
		WallMarginFinal:    10,
		DimensionScale:     10,
		DefaultWidth:       200,
		DefaultHeight:      300,
		MinHallLength:      40,
		LightSpan:          30,
		LampSpan:           45,
		MinFixtures:        2,
		ProximityThreshold: 2,
	}
}

func TestParseDimensions_WellFormed(t *testing.T) {
	w, h := ParseDimensions("2m x 3m", testGalleryConfig())
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 30.0, h)
}

func TestParseDimensions_IrregularSpacingAndCase(t *testing.T) {
	w, h := ParseDimensions("  4 X 5 ", testGalleryConfig())
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 50.0, h)
}

func TestParseDimensions_Fractional(t *testing.T) {
	w, h := ParseDimensions("1.5m x 2.25m", testGalleryConfig())
	assert.Equal(t, 15.0, w)
	assert.Equal(t, 22.5, h)
}

func TestParseDimensions_Malformed(t *testing.T) {
	cfg := testGalleryConfig()
	for _, input := range []string{"abc", "", "2m", "x", "m x m", "0m x 3m", "-2m x 3m"} {
		w, h := ParseDimensions(input, cfg)
		assert.Equal(t, cfg.DefaultWidth, w, "input %q", input)
		assert.Equal(t, cfg.DefaultHeight, h, "input %q", input)
	}
}

func TestParseDimensions_ExtraTokensIgnored(t *testing.T) {
	// Only the first two valid numeric tokens count.
	w, h := ParseDimensions("2m x 3m x 4m", testGalleryConfig())
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 30.0, h)
}
