package services

import (
	"testing"

	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	visitor := createTestUser(t, db, models.RoleVisitor)
	mural := createTestMural(t, db, "M", "2m x 2m")

	report, err := svc.Create(visitor.ID, &dto.CreateReportRequest{
		MuralID: mural.ID,
		Reason:  "wrong_attribution",
		Details: "El autor listado no pintó este mural",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportPending, report.Status)
	assert.Equal(t, visitor.ID, report.ReporterID)
}

func TestReportCreate_UnknownMural(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	visitor := createTestUser(t, db, models.RoleVisitor)

	_, err := svc.Create(visitor.ID, &dto.CreateReportRequest{MuralID: uuid.New(), Reason: "spam"})
	assert.ErrorIs(t, err, ErrMuralNotFound)
}

func TestReportCreate_OnePendingPerUserAndMural(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	visitor := createTestUser(t, db, models.RoleVisitor)
	mural := createTestMural(t, db, "M", "2m x 2m")

	first, err := svc.Create(visitor.ID, &dto.CreateReportRequest{MuralID: mural.ID, Reason: "spam"})
	require.NoError(t, err)

	_, err = svc.Create(visitor.ID, &dto.CreateReportRequest{MuralID: mural.ID, Reason: "spam"})
	assert.ErrorIs(t, err, ErrAlreadyReported)

	// Resolving the open report allows a new one.
	_, err = svc.Action(first.ID, models.ReportResolved)
	require.NoError(t, err)

	_, err = svc.Create(visitor.ID, &dto.CreateReportRequest{MuralID: mural.ID, Reason: "spam"})
	assert.NoError(t, err)
}

func TestReportAction(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	visitor := createTestUser(t, db, models.RoleVisitor)
	mural := createTestMural(t, db, "M", "2m x 2m")

	report, err := svc.Create(visitor.ID, &dto.CreateReportRequest{MuralID: mural.ID, Reason: "spam"})
	require.NoError(t, err)

	_, err = svc.Action(report.ID, "escalated")
	assert.Error(t, err)

	updated, err := svc.Action(report.ID, models.ReportDismissed)
	require.NoError(t, err)
	assert.Equal(t, models.ReportDismissed, updated.Status)
	assert.NotNil(t, updated.ResolvedAt)
}

func TestReportList_FiltersByStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	visitor := createTestUser(t, db, models.RoleVisitor)
	m1 := createTestMural(t, db, "M1", "2m x 2m")
	m2 := createTestMural(t, db, "M2", "2m x 2m")

	r1, err := svc.Create(visitor.ID, &dto.CreateReportRequest{MuralID: m1.ID, Reason: "spam"})
	require.NoError(t, err)
	_, err = svc.Create(visitor.ID, &dto.CreateReportRequest{MuralID: m2.ID, Reason: "spam"})
	require.NoError(t, err)

	_, err = svc.Action(r1.ID, models.ReportResolved)
	require.NoError(t, err)

	_, total, err := svc.List(models.ReportPending, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = svc.List("", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
