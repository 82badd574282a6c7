package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/archivomural/murales-backend/internal/config"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database per test. Shared
// cache keeps the database alive across the pool's connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Mural{},
		&models.Sala{},
		&models.SalaMural{},
		&models.Collection{},
		&models.Report{},
		&models.ViewerConfig{},
		&models.SystemLog{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
		Gallery:          testGalleryConfig(),
	}
}

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

func createTestUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	hash := "$2a$10$placeholderplaceholderplaceholderplaceha"
	user := models.User{
		ID:           uuid.New(),
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Name:         "Test User",
		PasswordHash: &hash,
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestMural(t *testing.T, db *gorm.DB, title, medidas string) *models.Mural {
	t.Helper()
	mural := models.Mural{
		ID:      uuid.New(),
		Title:   title,
		Author:  "Autor",
		Medidas: medidas,
	}
	require.NoError(t, db.Create(&mural).Error)
	return &mural
}

func associationCount(t *testing.T, db *gorm.DB, salaID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.SalaMural{}).Where("sala_id = ?", salaID).Count(&n).Error)
	return n
}
