package handlers

import (
	"errors"
	"strconv"

	"github.com/archivomural/murales-backend/internal/authctx"
	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/archivomural/murales-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReport handles POST /reports
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.reportService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrMuralNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Mural not found",
			})
		}
		if errors.Is(err, services.ErrAlreadyReported) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toReportResponse(report))
}

// ListReports handles GET /admin/reports
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 200 {
		limit = 200
	}

	reports, total, err := h.reportService.List(c.Query("status"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	responses := make([]dto.ReportResponse, len(reports))
	for i := range reports {
		responses[i] = toReportResponse(&reports[i])
	}
	return c.JSON(dto.ReportListResponse{Reports: responses, Total: total})
}

// ActionReport handles PUT /admin/reports/:id
func (h *ReportHandler) ActionReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.ActionReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.reportService.Action(reportID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Report not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(toReportResponse(report))
}

func toReportResponse(r *models.Report) dto.ReportResponse {
	return dto.ReportResponse{
		ID:         r.ID,
		MuralID:    r.MuralID,
		ReporterID: r.ReporterID,
		Reason:     r.Reason,
		Details:    r.Details,
		Status:     r.Status,
		ResolvedAt: r.ResolvedAt,
		CreatedAt:  r.CreatedAt,
	}
}
