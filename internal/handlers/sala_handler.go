package handlers

import (
	"errors"
	"strconv"

	"github.com/archivomural/murales-backend/internal/authctx"
	"github.com/archivomural/murales-backend/internal/config"
	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/gallery"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/archivomural/murales-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SalaHandler struct {
	salaService *services.SalaService
	galleryCfg  config.GalleryConfig
}

func NewSalaHandler(salaService *services.SalaService, galleryCfg config.GalleryConfig) *SalaHandler {
	return &SalaHandler{salaService: salaService, galleryCfg: galleryCfg}
}

// CreateSala handles POST /salas
func (h *SalaHandler) CreateSala(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateSalaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	sala, err := h.salaService.Create(userID, &req)
	if err != nil {
		return h.mapSalaError(c, err, fiber.StatusBadRequest)
	}

	return c.Status(fiber.StatusCreated).JSON(h.toSalaResponse(sala, nil))
}

// ListSalas handles GET /salas (the caller's salas)
func (h *SalaHandler) ListSalas(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 100 {
		limit = 100
	}

	salas, total, err := h.salaService.ListForUser(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch salas",
		})
	}

	responses := make([]dto.SalaResponse, len(salas))
	for i := range salas {
		responses[i] = h.toSalaResponse(&salas[i], nil)
	}
	return c.JSON(dto.SalaListResponse{Salas: responses, Total: total})
}

// GetSala handles GET /salas/:id, including the murals in display order.
func (h *SalaHandler) GetSala(c *fiber.Ctx) error {
	salaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sala ID",
		})
	}

	sala, err := h.salaService.Get(salaID)
	if err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}

	murals, err := h.salaService.Murals(salaID)
	if err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(h.toSalaResponse(sala, murals))
}

// UpdateSala handles PUT /salas/:id
func (h *SalaHandler) UpdateSala(c *fiber.Ctx) error {
	salaID, userID, ok := h.parseSalaAndUser(c)
	if !ok {
		return nil
	}

	var req dto.UpdateSalaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	sala, err := h.salaService.Update(salaID, userID, &req)
	if err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(h.toSalaResponse(sala, nil))
}

// DeleteSala handles DELETE /salas/:id
func (h *SalaHandler) DeleteSala(c *fiber.Ctx) error {
	salaID, userID, ok := h.parseSalaAndUser(c)
	if !ok {
		return nil
	}

	if err := h.salaService.Delete(salaID, userID); err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"message": "Sala deleted successfully"})
}

// AttachMurals handles POST /salas/:id/murals
func (h *SalaHandler) AttachMurals(c *fiber.Ctx) error {
	salaID, userID, ok := h.parseSalaAndUser(c)
	if !ok {
		return nil
	}

	var req dto.AttachMuralsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.salaService.Attach(salaID, userID, req.MuralIDs); err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}

	murals, err := h.salaService.Murals(salaID)
	if err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"murals": toMuralResponses(murals)})
}

// DetachMurals handles DELETE /salas/:id/murals. An absent mural_ids
// list clears every association.
func (h *SalaHandler) DetachMurals(c *fiber.Ctx) error {
	salaID, userID, ok := h.parseSalaAndUser(c)
	if !ok {
		return nil
	}

	var req dto.DetachMuralsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid request body",
			})
		}
	}

	removed, err := h.salaService.Detach(salaID, userID, req.MuralIDs)
	if err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(dto.DetachResponse{Removed: removed})
}

// ReplaceMurals handles PUT /salas/:id/murals
func (h *SalaHandler) ReplaceMurals(c *fiber.Ctx) error {
	salaID, userID, ok := h.parseSalaAndUser(c)
	if !ok {
		return nil
	}

	var req dto.ReplaceMuralsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.salaService.Replace(salaID, userID, req.MuralIDs); err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}

	murals, err := h.salaService.Murals(salaID)
	if err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"murals": toMuralResponses(murals)})
}

// AddCollaborator handles POST /salas/:id/collaborators
func (h *SalaHandler) AddCollaborator(c *fiber.Ctx) error {
	salaID, userID, ok := h.parseSalaAndUser(c)
	if !ok {
		return nil
	}

	var req dto.CollaboratorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.salaService.AddCollaborator(salaID, userID, req.UserID); err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"message": "Collaborator added"})
}

// RemoveCollaborator handles DELETE /salas/:id/collaborators/:user_id
func (h *SalaHandler) RemoveCollaborator(c *fiber.Ctx) error {
	salaID, userID, ok := h.parseSalaAndUser(c)
	if !ok {
		return nil
	}

	collaboratorID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if err := h.salaService.RemoveCollaborator(salaID, userID, collaboratorID); err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"message": "Collaborator removed"})
}

// GetLayout handles GET /salas/:id/layout
func (h *SalaHandler) GetLayout(c *fiber.Ctx) error {
	salaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sala ID",
		})
	}

	layout, err := h.salaService.Layout(salaID)
	if err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}
	return c.JSON(layout)
}

// PollProximity handles POST /salas/:id/proximity: given a viewer
// position it reports wall-zone membership against the current layout.
func (h *SalaHandler) PollProximity(c *fiber.Ctx) error {
	salaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sala ID",
		})
	}

	var req dto.ProximityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	layout, err := h.salaService.Layout(salaID)
	if err != nil {
		return h.mapSalaError(c, err, fiber.StatusInternalServerError)
	}

	threshold := h.galleryCfg.ProximityThreshold
	if req.Threshold != nil && *req.Threshold > 0 {
		threshold = *req.Threshold
	}

	return c.JSON(gallery.Poll(req.Position, layout, threshold))
}

func (h *SalaHandler) parseSalaAndUser(c *fiber.Ctx) (uuid.UUID, uuid.UUID, bool) {
	salaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sala ID",
		})
		return uuid.Nil, uuid.Nil, false
	}

	userID, err := authctx.GetUserID(c)
	if err != nil {
		c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
		return uuid.Nil, uuid.Nil, false
	}
	return salaID, userID, true
}

func (h *SalaHandler) mapSalaError(c *fiber.Ctx, err error, fallback int) error {
	var missing *services.MissingMuralsError
	if errors.As(err, &missing) {
		ids := make([]string, len(missing.MissingIDs))
		for i, id := range missing.MissingIDs {
			ids[i] = id.String()
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.MissingIDsResponse{
			Error:      true,
			Message:    "Some murals do not exist",
			MissingIDs: ids,
		})
	}
	if errors.Is(err, services.ErrSalaNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Sala not found",
		})
	}
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}
	if errors.Is(err, services.ErrNotOwner) || errors.Is(err, services.ErrNotEditor) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	if fallback == fiber.StatusBadRequest {
		return c.Status(fallback).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fallback).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func (h *SalaHandler) toSalaResponse(sala *models.Sala, murals []models.Mural) dto.SalaResponse {
	resp := dto.SalaResponse{
		ID:          sala.ID,
		Name:        sala.Name,
		Description: sala.Description,
		OwnerID:     sala.OwnerID,
		CreatedAt:   sala.CreatedAt,
	}
	for _, u := range sala.Collaborators {
		resp.Collaborators = append(resp.Collaborators, dto.UserResponse{
			ID:              u.ID,
			Email:           u.Email,
			Name:            u.Name,
			Role:            u.Role,
			ProfileImageURL: u.ProfileImageURL,
			IsGoogleUser:    u.AuthProvider == "google",
		})
	}
	if murals != nil {
		resp.Murals = toMuralResponses(murals)
	}
	return resp
}
