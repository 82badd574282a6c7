package services

import (
	"testing"

	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSalaFixture(t *testing.T) (*SalaService, *models.User, *models.Sala) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewSalaService(db, testGalleryConfig())
	owner := createTestUser(t, db, models.RoleCurator)

	sala, err := svc.Create(owner.ID, &dto.CreateSalaRequest{Name: "Sala Norte"})
	require.NoError(t, err)
	return svc, owner, sala
}

func TestSalaCreate_RequiresName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSalaService(db, testGalleryConfig())
	owner := createTestUser(t, db, models.RoleCurator)

	_, err := svc.Create(owner.ID, &dto.CreateSalaRequest{})
	assert.Error(t, err)
}

func TestSalaAttach_MissingMuralReportedAndNothingWritten(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	existing := createTestMural(t, svc.db, "Mural A", "2m x 2m")
	missing := uuid.New()

	err := svc.Attach(sala.ID, owner.ID, []uuid.UUID{existing.ID, missing})

	var me *MissingMuralsError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, []uuid.UUID{missing}, me.MissingIDs)
	assert.Equal(t, int64(0), associationCount(t, svc.db, sala.ID))
}

func TestSalaAttach_IdempotentPerPair(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	mural := createTestMural(t, svc.db, "Mural A", "2m x 2m")

	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{mural.ID}))
	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{mural.ID}))

	assert.Equal(t, int64(1), associationCount(t, svc.db, sala.ID))
}

func TestSalaAttach_AppendsAfterExistingPositions(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	a := createTestMural(t, svc.db, "A", "2m x 2m")
	b := createTestMural(t, svc.db, "B", "3m x 2m")
	c := createTestMural(t, svc.db, "C", "1m x 1m")

	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{a.ID, b.ID}))
	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{c.ID}))

	murals, err := svc.Murals(sala.ID)
	require.NoError(t, err)
	require.Len(t, murals, 3)
	assert.Equal(t, a.ID, murals[0].ID)
	assert.Equal(t, b.ID, murals[1].ID)
	assert.Equal(t, c.ID, murals[2].ID)
}

func TestSalaAttach_StrangerForbidden(t *testing.T) {
	svc, _, sala := newSalaFixture(t)
	stranger := createTestUser(t, svc.db, models.RoleVisitor)
	mural := createTestMural(t, svc.db, "A", "2m x 2m")

	err := svc.Attach(sala.ID, stranger.ID, []uuid.UUID{mural.ID})
	assert.ErrorIs(t, err, ErrNotEditor)
}

func TestSalaAttach_CollaboratorAllowed(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	collab := createTestUser(t, svc.db, models.RoleVisitor)
	mural := createTestMural(t, svc.db, "A", "2m x 2m")

	require.NoError(t, svc.AddCollaborator(sala.ID, owner.ID, collab.ID))
	require.NoError(t, svc.Attach(sala.ID, collab.ID, []uuid.UUID{mural.ID}))

	assert.Equal(t, int64(1), associationCount(t, svc.db, sala.ID))
}

func TestSalaDetach_ListedPairs(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	a := createTestMural(t, svc.db, "A", "2m x 2m")
	b := createTestMural(t, svc.db, "B", "3m x 2m")
	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{a.ID, b.ID}))

	removed, err := svc.Detach(sala.ID, owner.ID, []uuid.UUID{a.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Equal(t, int64(1), associationCount(t, svc.db, sala.ID))
}

func TestSalaDetach_MissingPairIsNoOp(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	a := createTestMural(t, svc.db, "A", "2m x 2m")
	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{a.ID}))

	removed, err := svc.Detach(sala.ID, owner.ID, []uuid.UUID{uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
	assert.Equal(t, int64(1), associationCount(t, svc.db, sala.ID))
}

func TestSalaDetach_NilClearsAll(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	a := createTestMural(t, svc.db, "A", "2m x 2m")
	b := createTestMural(t, svc.db, "B", "3m x 2m")
	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{a.ID, b.ID}))

	removed, err := svc.Detach(sala.ID, owner.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.Equal(t, int64(0), associationCount(t, svc.db, sala.ID))
}

func TestSalaReplace_SetsExactOrderedList(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	a := createTestMural(t, svc.db, "A", "2m x 2m")
	b := createTestMural(t, svc.db, "B", "3m x 2m")
	c := createTestMural(t, svc.db, "C", "1m x 1m")
	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{a.ID, b.ID}))

	require.NoError(t, svc.Replace(sala.ID, owner.ID, []uuid.UUID{c.ID, b.ID}))

	murals, err := svc.Murals(sala.ID)
	require.NoError(t, err)
	require.Len(t, murals, 2)
	assert.Equal(t, c.ID, murals[0].ID)
	assert.Equal(t, b.ID, murals[1].ID)
}

func TestSalaReplace_MissingMuralLeavesSetUntouched(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	a := createTestMural(t, svc.db, "A", "2m x 2m")
	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{a.ID}))

	err := svc.Replace(sala.ID, owner.ID, []uuid.UUID{uuid.New()})

	var me *MissingMuralsError
	require.ErrorAs(t, err, &me)
	murals, err := svc.Murals(sala.ID)
	require.NoError(t, err)
	require.Len(t, murals, 1)
	assert.Equal(t, a.ID, murals[0].ID)
}

func TestSalaReplace_EmptyListClears(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	a := createTestMural(t, svc.db, "A", "2m x 2m")
	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{a.ID}))

	require.NoError(t, svc.Replace(sala.ID, owner.ID, nil))
	assert.Equal(t, int64(0), associationCount(t, svc.db, sala.ID))
}

func TestSalaLayout_ReflectsCurrentAssociations(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	a := createTestMural(t, svc.db, "A", "2m x 2m")
	b := createTestMural(t, svc.db, "B", "3m x 2m")
	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{a.ID, b.ID}))

	layout, err := svc.Layout(sala.ID)
	require.NoError(t, err)
	require.Len(t, layout.Placements, 2)
	assert.Equal(t, 0.0, layout.Placements[0].X)
	assert.Equal(t, 27.0, layout.Placements[1].X)

	_, err = svc.Detach(sala.ID, owner.ID, []uuid.UUID{b.ID})
	require.NoError(t, err)

	layout, err = svc.Layout(sala.ID)
	require.NoError(t, err)
	require.Len(t, layout.Placements, 1)
	assert.Equal(t, testGalleryConfig().MinHallLength, layout.HallLength)
}

func TestSalaDelete_OwnerOnlyAndCascades(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	collab := createTestUser(t, svc.db, models.RoleVisitor)
	a := createTestMural(t, svc.db, "A", "2m x 2m")
	require.NoError(t, svc.AddCollaborator(sala.ID, owner.ID, collab.ID))
	require.NoError(t, svc.Attach(sala.ID, owner.ID, []uuid.UUID{a.ID}))

	assert.ErrorIs(t, svc.Delete(sala.ID, collab.ID), ErrNotOwner)

	require.NoError(t, svc.Delete(sala.ID, owner.ID))
	_, err := svc.Get(sala.ID)
	assert.ErrorIs(t, err, ErrSalaNotFound)
	assert.Equal(t, int64(0), associationCount(t, svc.db, sala.ID))
}

func TestSalaListForUser_IncludesCollaborations(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	collab := createTestUser(t, svc.db, models.RoleVisitor)
	require.NoError(t, svc.AddCollaborator(sala.ID, owner.ID, collab.ID))

	other := createTestUser(t, svc.db, models.RoleCurator)
	_, err := svc.Create(other.ID, &dto.CreateSalaRequest{Name: "Sala Sur"})
	require.NoError(t, err)

	salas, total, err := svc.ListForUser(collab.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, salas, 1)
	assert.Equal(t, sala.ID, salas[0].ID)
}

func TestSalaUpdate_EditorOnly(t *testing.T) {
	svc, owner, sala := newSalaFixture(t)
	stranger := createTestUser(t, svc.db, models.RoleVisitor)
	name := "Renombrada"

	_, err := svc.Update(sala.ID, stranger.ID, &dto.UpdateSalaRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotEditor)

	updated, err := svc.Update(sala.ID, owner.ID, &dto.UpdateSalaRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", updated.Name)
}
