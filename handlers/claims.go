package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/skillswap/backend/models"
)

// currentUser rebuilds the acting user from the verified JWT set by the
// Protected middleware. Only the id and role travel in the token.
func currentUser(c *fiber.Ctx) models.User {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return models.User{
		ID:   claims["user_id"].(string),
		Role: claims["role"].(string),
	}
}
