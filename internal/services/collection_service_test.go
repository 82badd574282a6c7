package services

import (
	"encoding/json"
	"testing"

	"github.com/archivomural/murales-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionGet_CreatesEmptyOnFirstUse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectionService(db)
	visitor := createTestUser(t, db, models.RoleVisitor)

	collection, err := svc.Get(visitor.ID)
	require.NoError(t, err)
	assert.Equal(t, visitor.ID, collection.UserID)
	assert.JSONEq(t, "[]", string(collection.Items))

	again, err := svc.Get(visitor.ID)
	require.NoError(t, err)
	assert.Equal(t, collection.ID, again.ID)
}

func TestCollectionReplace(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectionService(db)
	visitor := createTestUser(t, db, models.RoleVisitor)

	items := json.RawMessage(`[{"mural_id":"abc","note":"favorita"}]`)
	collection, err := svc.Replace(visitor.ID, items)
	require.NoError(t, err)
	assert.JSONEq(t, string(items), string(collection.Items))

	stored, err := svc.Get(visitor.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(items), string(stored.Items))
}

func TestCollectionReplace_RejectsNonArray(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectionService(db)
	visitor := createTestUser(t, db, models.RoleVisitor)

	_, err := svc.Replace(visitor.ID, json.RawMessage(`{"not":"an array"}`))
	assert.Error(t, err)

	_, err = svc.Replace(visitor.ID, json.RawMessage(`[]`))
	assert.NoError(t, err)
}
