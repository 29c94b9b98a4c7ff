package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
)

// RequireRole returns a middleware that rejects requests whose token role is
// not one of the listed roles. Must run AFTER AuthMiddleware (it reads
// LocalRole).
//
// Behaviour:
//   - 401 Unauthorized → no role in the context (token never validated).
//   - 403 Forbidden    → authenticated but the role does not qualify.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "không tìm thấy vai trò trong token",
			})
		}
		if !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "vai trò không đủ quyền truy cập chức năng này",
			})
		}
		return c.Next()
	}
}
