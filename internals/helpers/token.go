package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys diisi oleh middleware auth (lihat internals/middlewares/auth).

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token: user id missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token: malformed user id")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

func GetUserNameFromToken(c *fiber.Ctx) string {
	name, _ := c.Locals("user_name").(string)
	return name
}

// GetCityFromToken mengembalikan city milik teacher (kosong untuk admin).
func GetCityFromToken(c *fiber.Ctx) string {
	city, _ := c.Locals("city").(string)
	return city
}
