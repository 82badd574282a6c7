package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is a visitor or curator account. PasswordHash is nil for accounts
// created through Google Sign-In.
type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name            string         `gorm:"size:255" json:"name"`
	PasswordHash    *string        `gorm:"size:255" json:"-"`
	Role            string         `gorm:"size:20;default:'visitor'" json:"role"`
	AuthProvider    string         `gorm:"size:50;default:'email'" json:"-"`
	GoogleUserID    *string        `gorm:"size:255;index" json:"-"`
	ProfileImageURL string         `gorm:"type:text" json:"profile_image_url"`
	EmailVerifiedAt *time.Time     `json:"email_verified_at"`
	Settings        datatypes.JSON `json:"settings"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

const (
	RoleVisitor = "visitor"
	RoleCurator = "curator"
	RoleAdmin   = "admin"
)

// IsCurator reports whether the user may mutate the catalog.
func (u *User) IsCurator() bool {
	return u.Role == RoleCurator || u.Role == RoleAdmin
}
