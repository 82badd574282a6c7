package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrAlreadyReported = errors.New("you already have an open report for this mural")
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) Create(reporterID uuid.UUID, req *dto.CreateReportRequest) (*models.Report, error) {
	if req.Reason == "" {
		return nil, errors.New("reason is required")
	}

	var mural models.Mural
	if err := s.db.First(&mural, "id = ?", req.MuralID).Error; err != nil {
		return nil, ErrMuralNotFound
	}

	var existing models.Report
	err := s.db.Where("mural_id = ? AND reporter_id = ? AND status = ?",
		req.MuralID, reporterID, models.ReportPending).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyReported
	}

	report := models.Report{
		ID:         uuid.New(),
		MuralID:    req.MuralID,
		ReporterID: reporterID,
		Reason:     req.Reason,
		Details:    req.Details,
		Status:     models.ReportPending,
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

func (s *ReportService) List(status string, limit, offset int) ([]models.Report, int64, error) {
	query := s.db.Model(&models.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var reports []models.Report
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reports: %w", err)
	}
	return reports, total, nil
}

func (s *ReportService) Action(reportID uuid.UUID, status string) (*models.Report, error) {
	if status != models.ReportResolved && status != models.ReportDismissed {
		return nil, errors.New("status must be resolved or dismissed")
	}

	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      status,
		"resolved_at": &now,
	}
	if err := s.db.Model(&report).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	return &report, nil
}
