package authctx

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := getClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// GetEmail extracts the email claim, or "" when absent.
func GetEmail(c *fiber.Ctx) string {
	claims, err := getClaims(c)
	if err != nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

// GetRole extracts the role claim, or "" when absent.
func GetRole(c *fiber.Ctx) string {
	claims, err := getClaims(c)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

func getClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
