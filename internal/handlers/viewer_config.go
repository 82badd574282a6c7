package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/archivomural/murales-backend/internal/config"
	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ViewerConfigHandler serves the tuning values the 3D viewer client
// reads at startup and lets admins override them without a deploy.
type ViewerConfigHandler struct {
	db *gorm.DB
}

func NewViewerConfigHandler(db *gorm.DB) *ViewerConfigHandler {
	return &ViewerConfigHandler{db: db}
}

// GetConfig handles GET /config (public).
func (h *ViewerConfigHandler) GetConfig(c *fiber.Ctx) error {
	var configs []models.ViewerConfig
	if err := h.db.Find(&configs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Failed to fetch configuration",
		})
	}

	result := make(map[string]interface{})
	for _, cfg := range configs {
		var value interface{}
		switch cfg.Type {
		case "bool":
			value, _ = strconv.ParseBool(cfg.Value)
		case "int":
			value, _ = strconv.Atoi(cfg.Value)
		case "float":
			value, _ = strconv.ParseFloat(cfg.Value, 64)
		case "json":
			json.Unmarshal([]byte(cfg.Value), &value)
		default:
			value = cfg.Value
		}
		result[cfg.Key] = value
	}

	return c.JSON(result)
}

// SetConfigKey handles PUT /admin/config/:key.
func (h *ViewerConfigHandler) SetConfigKey(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Key parameter is required",
		})
	}

	var payload struct {
		Value string `json:"value"`
		Type  string `json:"type"` // string, bool, int, float, json
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Invalid request body",
		})
	}

	if payload.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Value is required",
		})
	}
	if payload.Type == "" {
		payload.Type = "string"
	}

	var cfg models.ViewerConfig
	err := h.db.Where("key = ?", key).First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		cfg = models.ViewerConfig{
			ID:        uuid.New(),
			Key:       key,
			Value:     payload.Value,
			Type:      payload.Type,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := h.db.Create(&cfg).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Failed to create config",
			})
		}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Failed to query config",
		})
	} else {
		cfg.Value = payload.Value
		cfg.Type = payload.Type
		cfg.UpdatedAt = time.Now()
		if err := h.db.Save(&cfg).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Failed to update config",
			})
		}
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Config updated successfully",
		"config": fiber.Map{
			"key":   cfg.Key,
			"value": cfg.Value,
			"type":  cfg.Type,
		},
	})
}

// DeleteConfigKey handles DELETE /admin/config/:key.
func (h *ViewerConfigHandler) DeleteConfigKey(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Key parameter is required",
		})
	}

	result := h.db.Where("key = ?", key).Delete(&models.ViewerConfig{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Failed to delete config",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Config not found",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Config deleted successfully",
	})
}

// SeedDefaults publishes the gallery tuning values as viewer config so
// the 3D client and the server agree on spacing and thresholds.
// Existing keys are left untouched.
func (h *ViewerConfigHandler) SeedDefaults(g config.GalleryConfig) {
	defaults := []models.ViewerConfig{
		{Key: "gallery_spacing", Value: formatFloat(g.Spacing), Type: "float"},
		{Key: "gallery_wall_margin_initial", Value: formatFloat(g.WallMarginInitial), Type: "float"},
		{Key: "gallery_wall_margin_final", Value: formatFloat(g.WallMarginFinal), Type: "float"},
		{Key: "gallery_dimension_scale", Value: formatFloat(g.DimensionScale), Type: "float"},
		{Key: "gallery_default_width", Value: formatFloat(g.DefaultWidth), Type: "float"},
		{Key: "gallery_default_height", Value: formatFloat(g.DefaultHeight), Type: "float"},
		{Key: "gallery_min_hall_length", Value: formatFloat(g.MinHallLength), Type: "float"},
		{Key: "gallery_proximity_threshold", Value: formatFloat(g.ProximityThreshold), Type: "float"},
		{Key: "gallery_poll_interval_ms", Value: strconv.FormatInt(g.PollInterval.Milliseconds(), 10), Type: "int"},
	}

	for _, def := range defaults {
		var existing models.ViewerConfig
		if err := h.db.Where("key = ?", def.Key).First(&existing).Error; err != gorm.ErrRecordNotFound {
			continue
		}
		def.ID = uuid.New()
		def.CreatedAt = time.Now()
		def.UpdatedAt = time.Now()
		h.db.Create(&def)
	}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
