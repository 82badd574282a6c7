package handlers

import (
	"encoding/json"

	"github.com/archivomural/murales-backend/internal/authctx"
	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CollectionHandler struct {
	collectionService *services.CollectionService
}

func NewCollectionHandler(collectionService *services.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// GetCollection handles GET /collection
func (h *CollectionHandler) GetCollection(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	collection, err := h.collectionService.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch collection",
		})
	}

	return c.JSON(dto.CollectionResponse{Items: json.RawMessage(collection.Items)})
}

// ReplaceCollection handles PUT /collection
func (h *CollectionHandler) ReplaceCollection(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ReplaceCollectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Items are required",
		})
	}

	collection, err := h.collectionService.Replace(userID, req.Items)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(dto.CollectionResponse{Items: json.RawMessage(collection.Items)})
}
