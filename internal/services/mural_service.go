package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/archivomural/murales-backend/internal/cache"
	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMuralNotFound = errors.New("mural not found")

const randomCacheTTL = 5 * time.Minute

type MuralService struct {
	db          *gorm.DB
	randomCache *cache.TTL[[]models.Mural]
}

func NewMuralService(db *gorm.DB) *MuralService {
	return &MuralService{
		db:          db,
		randomCache: cache.NewTTL[[]models.Mural](randomCacheTTL, nil),
	}
}

func (s *MuralService) Create(userID uuid.UUID, req *dto.CreateMuralRequest) (*models.Mural, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}

	mural := models.Mural{
		ID:          uuid.New(),
		Title:       req.Title,
		Author:      req.Author,
		Technique:   req.Technique,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
		WebpURL:     req.WebpURL,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
		Medidas:     req.Medidas,
		CreatedBy:   userID,
	}

	if err := s.db.Create(&mural).Error; err != nil {
		return nil, fmt.Errorf("failed to create mural: %w", err)
	}

	s.randomCache.Invalidate()
	return &mural, nil
}

func (s *MuralService) Get(id uuid.UUID) (*models.Mural, error) {
	var mural models.Mural
	if err := s.db.First(&mural, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMuralNotFound
		}
		return nil, fmt.Errorf("failed to fetch mural: %w", err)
	}
	return &mural, nil
}

// List pages through the catalog, optionally filtering on a search term
// across title, author and technique.
func (s *MuralService) List(search string, limit, offset int) ([]models.Mural, int64, error) {
	query := s.db.Model(&models.Mural{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(technique) LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	query.Count(&total)

	var murals []models.Mural
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&murals).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch murals: %w", err)
	}
	return murals, total, nil
}

// Random returns up to n murals picked from a cached sample of the
// catalog. The cache is owned by this service with an explicit TTL; it
// is invalidated on catalog mutations.
func (s *MuralService) Random(n int) ([]models.Mural, error) {
	if n <= 0 {
		n = 6
	}

	pool, ok := s.randomCache.Get()
	if !ok {
		if err := s.db.Limit(200).Order("created_at DESC").Find(&pool).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch murals: %w", err)
		}
		s.randomCache.Set(pool)
	}

	if len(pool) <= n {
		out := make([]models.Mural, len(pool))
		copy(out, pool)
		return out, nil
	}

	perm := rand.Perm(len(pool))
	out := make([]models.Mural, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out, nil
}

func (s *MuralService) Update(id uuid.UUID, req *dto.UpdateMuralRequest) (*models.Mural, error) {
	mural, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.Technique != nil {
		updates["technique"] = *req.Technique
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.WebpURL != nil {
		updates["webp_url"] = *req.WebpURL
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Medidas != nil {
		updates["medidas"] = *req.Medidas
	}

	if len(updates) > 0 {
		if err := s.db.Model(mural).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update mural: %w", err)
		}
		s.randomCache.Invalidate()
	}
	return mural, nil
}

// Delete removes the mural and any associations referencing it.
func (s *MuralService) Delete(id uuid.UUID) error {
	mural, err := s.Get(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mural_id = ?", id).Delete(&models.SalaMural{}).Error; err != nil {
			return err
		}
		return tx.Delete(mural).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete mural: %w", err)
	}

	s.randomCache.Invalidate()
	return nil
}
