package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadGallery_Defaults(t *testing.T) {
	g := LoadGallery()

	assert.Equal(t, 2.0, g.Spacing)
	assert.Equal(t, 10.0, g.WallMarginInitial)
	assert.Equal(t, 10.0, g.WallMarginFinal)
	assert.Equal(t, 10.0, g.DimensionScale)
	assert.Equal(t, 200.0, g.DefaultWidth)
	assert.Equal(t, 300.0, g.DefaultHeight)
	assert.Equal(t, 40.0, g.MinHallLength)
	assert.Equal(t, 2, g.MinFixtures)
	assert.Equal(t, 2.0, g.ProximityThreshold)
	assert.Equal(t, 500*time.Millisecond, g.PollInterval)
}

func TestLoadGallery_EnvOverrides(t *testing.T) {
	t.Setenv("GALLERY_SPACING", "3.5")
	t.Setenv("GALLERY_MIN_FIXTURES", "4")
	t.Setenv("GALLERY_POLL_INTERVAL", "250ms")

	g := LoadGallery()

	assert.Equal(t, 3.5, g.Spacing)
	assert.Equal(t, 4, g.MinFixtures)
	assert.Equal(t, 250*time.Millisecond, g.PollInterval)
}

func TestLoadGallery_MalformedEnvFallsBack(t *testing.T) {
	t.Setenv("GALLERY_SPACING", "not-a-number")

	g := LoadGallery()
	assert.Equal(t, 2.0, g.Spacing)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5432",
		DBUser:     "murales",
		DBPassword: "pw",
		DBName:     "murales_db",
		DBSSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.internal user=murales password=pw dbname=murales_db port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
