package services

import (
	"encoding/json"
	"fmt"

	"github.com/archivomural/murales-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CollectionService struct {
	db *gorm.DB
}

func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{db: db}
}

// Get returns the user's collection, creating an empty one on first use.
func (s *CollectionService) Get(userID uuid.UUID) (*models.Collection, error) {
	var collection models.Collection
	err := s.db.Where("user_id = ?", userID).First(&collection).Error
	if err == nil {
		return &collection, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to fetch collection: %w", err)
	}

	collection = models.Collection{
		ID:     uuid.New(),
		UserID: userID,
		Items:  datatypes.JSON([]byte("[]")),
	}
	if err := s.db.Create(&collection).Error; err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}
	return &collection, nil
}

// Replace overwrites the saved item list. Items must be a JSON array;
// the contents are otherwise opaque to the server.
func (s *CollectionService) Replace(userID uuid.UUID, items json.RawMessage) (*models.Collection, error) {
	var probe []json.RawMessage
	if err := json.Unmarshal(items, &probe); err != nil {
		return nil, fmt.Errorf("items must be a JSON array: %w", err)
	}

	collection, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	collection.Items = datatypes.JSON(items)
	if err := s.db.Model(collection).Update("items", collection.Items).Error; err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}
	return collection, nil
}
