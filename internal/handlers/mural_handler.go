package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/archivomural/murales-backend/internal/authctx"
	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/imagehost"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/archivomural/murales-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MuralHandler struct {
	muralService *services.MuralService
	images       *imagehost.Client
}

func NewMuralHandler(muralService *services.MuralService, images *imagehost.Client) *MuralHandler {
	return &MuralHandler{muralService: muralService, images: images}
}

// ListMurals handles GET /murals
func (h *MuralHandler) ListMurals(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 100 {
		limit = 100
	}

	murals, total, err := h.muralService.List(c.Query("q"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch murals",
		})
	}

	return c.JSON(dto.MuralListResponse{
		Murals: toMuralResponses(murals),
		Total:  total,
	})
}

// RandomMurals handles GET /murals/random
func (h *MuralHandler) RandomMurals(c *fiber.Ctx) error {
	n, _ := strconv.Atoi(c.Query("count", "6"))
	if n > 50 {
		n = 50
	}

	murals, err := h.muralService.Random(n)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch murals",
		})
	}

	return c.JSON(dto.MuralListResponse{
		Murals: toMuralResponses(murals),
		Total:  int64(len(murals)),
	})
}

// GetMural handles GET /murals/:id
func (h *MuralHandler) GetMural(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid mural ID",
		})
	}

	mural, err := h.muralService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrMuralNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Mural not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch mural",
		})
	}

	return c.JSON(toMuralResponse(mural))
}

// CreateMural handles POST /murals (curator only)
func (h *MuralHandler) CreateMural(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateMuralRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	mural, err := h.muralService.Create(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toMuralResponse(mural))
}

// UpdateMural handles PUT /murals/:id (curator only)
func (h *MuralHandler) UpdateMural(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid mural ID",
		})
	}

	var req dto.UpdateMuralRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	mural, err := h.muralService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrMuralNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Mural not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update mural",
		})
	}

	return c.JSON(toMuralResponse(mural))
}

// DeleteMural handles DELETE /murals/:id (curator only)
func (h *MuralHandler) DeleteMural(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid mural ID",
		})
	}

	if err := h.muralService.Delete(id); err != nil {
		if errors.Is(err, services.ErrMuralNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Mural not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete mural",
		})
	}

	return c.JSON(fiber.Map{"message": "Mural deleted successfully"})
}

// UploadImage handles POST /murals/upload (curator only, multipart form)
func (h *MuralHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read image file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read image file",
		})
	}

	url, displayURL, err := h.images.Upload(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Image upload failed",
		})
	}

	return c.JSON(dto.UploadImageResponse{URL: url, DisplayURL: displayURL})
}

func toMuralResponse(m *models.Mural) dto.MuralResponse {
	return dto.MuralResponse{
		ID:          m.ID,
		Title:       m.Title,
		Author:      m.Author,
		Technique:   m.Technique,
		Year:        m.Year,
		ImageURL:    m.ImageURL,
		WebpURL:     m.WebpURL,
		Location:    m.Location,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Description: m.Description,
		Medidas:     m.Medidas,
		CreatedAt:   m.CreatedAt,
	}
}

func toMuralResponses(murals []models.Mural) []dto.MuralResponse {
	out := make([]dto.MuralResponse, len(murals))
	for i := range murals {
		out[i] = toMuralResponse(&murals[i])
	}
	return out
}
