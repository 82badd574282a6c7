package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/archivomural/murales-backend/internal/config"
	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/gallery"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSalaNotFound = errors.New("sala not found")
	ErrNotOwner     = errors.New("only the owner may do this")
	ErrNotEditor    = errors.New("you may not edit this sala")
)

// MissingMuralsError reports the exact catalog ids a mutation referenced
// that do not exist. The mutation performs no partial write.
type MissingMuralsError struct {
	MissingIDs []uuid.UUID
}

func (e *MissingMuralsError) Error() string {
	ids := make([]string, len(e.MissingIDs))
	for i, id := range e.MissingIDs {
		ids[i] = id.String()
	}
	return "murals not found: " + strings.Join(ids, ", ")
}

type SalaService struct {
	db         *gorm.DB
	galleryCfg config.GalleryConfig
}

func NewSalaService(db *gorm.DB, galleryCfg config.GalleryConfig) *SalaService {
	return &SalaService{db: db, galleryCfg: galleryCfg}
}

func (s *SalaService) Create(ownerID uuid.UUID, req *dto.CreateSalaRequest) (*models.Sala, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	sala := models.Sala{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}

	if err := s.db.Create(&sala).Error; err != nil {
		return nil, fmt.Errorf("failed to create sala: %w", err)
	}

	if len(req.MuralIDs) > 0 {
		if err := s.Attach(sala.ID, ownerID, req.MuralIDs); err != nil {
			return nil, err
		}
	}

	return &sala, nil
}

func (s *SalaService) Get(salaID uuid.UUID) (*models.Sala, error) {
	var sala models.Sala
	if err := s.db.Preload("Collaborators").First(&sala, "id = ?", salaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalaNotFound
		}
		return nil, fmt.Errorf("failed to fetch sala: %w", err)
	}
	return &sala, nil
}

// ListForUser returns salas the user owns or collaborates on.
func (s *SalaService) ListForUser(userID uuid.UUID, limit, offset int) ([]models.Sala, int64, error) {
	base := s.db.Model(&models.Sala{}).
		Joins("LEFT JOIN sala_collaborators sc ON sc.sala_id = salas.id").
		Where("salas.owner_id = ? OR sc.user_id = ?", userID, userID)

	var total int64
	base.Session(&gorm.Session{}).Distinct("salas.id").Count(&total)

	var salas []models.Sala
	if err := base.Session(&gorm.Session{}).Distinct("salas.*").
		Order("salas.created_at DESC").Limit(limit).Offset(offset).Find(&salas).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch salas: %w", err)
	}
	return salas, total, nil
}

func (s *SalaService) Update(salaID, userID uuid.UUID, req *dto.UpdateSalaRequest) (*models.Sala, error) {
	sala, err := s.Get(salaID)
	if err != nil {
		return nil, err
	}
	if !s.canEdit(sala, userID) {
		return nil, ErrNotEditor
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) > 0 {
		if err := s.db.Model(sala).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update sala: %w", err)
		}
	}
	return sala, nil
}

// Delete removes the sala and cascades its associations. Owner only.
func (s *SalaService) Delete(salaID, userID uuid.UUID) error {
	sala, err := s.Get(salaID)
	if err != nil {
		return err
	}
	if sala.OwnerID != userID {
		return ErrNotOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sala_id = ?", salaID).Delete(&models.SalaMural{}).Error; err != nil {
			return err
		}
		tx.Exec("DELETE FROM sala_collaborators WHERE sala_id = ?", salaID)
		return tx.Delete(sala).Error
	})
}

func (s *SalaService) AddCollaborator(salaID, ownerID, userID uuid.UUID) error {
	sala, err := s.Get(salaID)
	if err != nil {
		return err
	}
	if sala.OwnerID != ownerID {
		return ErrNotOwner
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	return s.db.Model(sala).Association("Collaborators").Append(&user)
}

func (s *SalaService) RemoveCollaborator(salaID, ownerID, userID uuid.UUID) error {
	sala, err := s.Get(salaID)
	if err != nil {
		return err
	}
	if sala.OwnerID != ownerID {
		return ErrNotOwner
	}
	return s.db.Model(sala).Association("Collaborators").Delete(&models.User{ID: userID})
}

// Attach adds murals to the sala. Every referenced id must exist: if any
// is missing the call fails with MissingMuralsError and writes nothing.
// Pairs already attached are skipped, so attach is idempotent per pair.
func (s *SalaService) Attach(salaID, userID uuid.UUID, muralIDs []uuid.UUID) error {
	sala, err := s.Get(salaID)
	if err != nil {
		return err
	}
	if !s.canEdit(sala, userID) {
		return ErrNotEditor
	}
	if len(muralIDs) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkAllExist(tx, muralIDs); err != nil {
			return err
		}

		var existing []models.SalaMural
		if err := tx.Where("sala_id = ?", salaID).Order("position ASC").Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to fetch associations: %w", err)
		}
		attached := make(map[uuid.UUID]bool, len(existing))
		nextPos := 0
		for _, assoc := range existing {
			attached[assoc.MuralID] = true
			if assoc.Position >= nextPos {
				nextPos = assoc.Position + 1
			}
		}

		for _, id := range muralIDs {
			if attached[id] {
				continue
			}
			attached[id] = true
			link := models.SalaMural{
				SalaID:   salaID,
				MuralID:  id,
				Position: nextPos,
			}
			nextPos++
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("failed to attach mural: %w", err)
			}
		}
		return nil
	})
}

// Detach removes the listed pairs, or every association when muralIDs is
// nil. Missing pairs are no-ops. Returns the number of rows removed.
func (s *SalaService) Detach(salaID, userID uuid.UUID, muralIDs []uuid.UUID) (int64, error) {
	sala, err := s.Get(salaID)
	if err != nil {
		return 0, err
	}
	if !s.canEdit(sala, userID) {
		return 0, ErrNotEditor
	}

	query := s.db.Where("sala_id = ?", salaID)
	if muralIDs != nil {
		if len(muralIDs) == 0 {
			return 0, nil
		}
		query = query.Where("mural_id IN ?", muralIDs)
	}

	result := query.Delete(&models.SalaMural{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to detach murals: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Replace sets the sala's mural set to exactly muralIDs inside one
// transaction, so a concurrent reader sees the old set or the new set,
// never an intermediate state. Positions follow the request order.
func (s *SalaService) Replace(salaID, userID uuid.UUID, muralIDs []uuid.UUID) error {
	sala, err := s.Get(salaID)
	if err != nil {
		return err
	}
	if !s.canEdit(sala, userID) {
		return ErrNotEditor
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkAllExist(tx, muralIDs); err != nil {
			return err
		}

		if err := tx.Where("sala_id = ?", salaID).Delete(&models.SalaMural{}).Error; err != nil {
			return fmt.Errorf("failed to clear associations: %w", err)
		}

		for i, id := range muralIDs {
			link := models.SalaMural{
				SalaID:   salaID,
				MuralID:  id,
				Position: i,
			}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("failed to attach mural: %w", err)
			}
		}
		return nil
	})
}

// Murals returns the sala's murals in display order. The list is read
// fresh on every call; association changes are visible immediately.
func (s *SalaService) Murals(salaID uuid.UUID) ([]models.Mural, error) {
	if _, err := s.Get(salaID); err != nil {
		return nil, err
	}

	var links []models.SalaMural
	if err := s.db.Where("sala_id = ?", salaID).Order("position ASC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch associations: %w", err)
	}
	if len(links) == 0 {
		return []models.Mural{}, nil
	}

	ids := make([]uuid.UUID, len(links))
	for i, l := range links {
		ids[i] = l.MuralID
	}

	var murals []models.Mural
	if err := s.db.Where("id IN ?", ids).Find(&murals).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch murals: %w", err)
	}

	byID := make(map[uuid.UUID]models.Mural, len(murals))
	for _, m := range murals {
		byID[m.ID] = m
	}
	ordered := make([]models.Mural, 0, len(links))
	for _, l := range links {
		if m, ok := byID[l.MuralID]; ok {
			ordered = append(ordered, m)
		}
	}
	return ordered, nil
}

// Layout computes the sala's current gallery layout from its ordered
// mural list.
func (s *SalaService) Layout(salaID uuid.UUID) (*gallery.Layout, error) {
	murals, err := s.Murals(salaID)
	if err != nil {
		return nil, err
	}
	layout := gallery.ComputeLayout(murals, s.galleryCfg)
	return &layout, nil
}

func (s *SalaService) canEdit(sala *models.Sala, userID uuid.UUID) bool {
	if sala.OwnerID == userID {
		return true
	}
	for _, u := range sala.Collaborators {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// checkAllExist fails with MissingMuralsError when any referenced id is
// absent from the catalog.
func (s *SalaService) checkAllExist(tx *gorm.DB, muralIDs []uuid.UUID) error {
	if len(muralIDs) == 0 {
		return nil
	}

	var found []uuid.UUID
	if err := tx.Model(&models.Mural{}).Where("id IN ?", muralIDs).Pluck("id", &found).Error; err != nil {
		return fmt.Errorf("failed to validate murals: %w", err)
	}

	foundSet := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		foundSet[id] = true
	}

	var missing []uuid.UUID
	seen := make(map[uuid.UUID]bool, len(muralIDs))
	for _, id := range muralIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !foundSet[id] {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		return &MissingMuralsError{MissingIDs: missing}
	}
	return nil
}
