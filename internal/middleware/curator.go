package middleware

import (
	"github.com/archivomural/murales-backend/internal/authctx"
	"github.com/archivomural/murales-backend/internal/dto"
	"github.com/archivomural/murales-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CuratorRequired gates catalog mutations. The JWT role claim is checked
// first; the DB is the fallback so role changes take effect before the
// token expires.
func CuratorRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := authctx.GetRole(c)
		if role == models.RoleCurator || role == models.RoleAdmin {
			return c.Next()
		}

		userID, err := authctx.GetUserID(c)
		if err == nil {
			var user models.User
			if err := db.First(&user, "id = ?", userID).Error; err == nil && user.IsCurator() {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Curator access required",
		})
	}
}
