package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles menolak request yang role-nya tidak ada di daftar.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - insufficient role")
		}
		return c.Next()
	}
}

func OnlyTeacher() fiber.Handler { return RequireRoles("teacher") }
func OnlyAdmin() fiber.Handler   { return RequireRoles("admin") }

// AdminOrTeacher dipakai di reports (kedua role boleh lihat).
func AdminOrTeacher() fiber.Handler { return RequireRoles("admin", "teacher") }
