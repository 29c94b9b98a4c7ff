package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/pkg/jwt"
)

// Locals keys for the authenticated identity in Fiber.
const (
	LocalUsername = "username"
	LocalRole     = "role"
	LocalUnit     = "unit"
)

// AuthMiddleware validates the Bearer token and puts username, role and unit
// into c.Locals. The claims carry everything scope evaluation needs, so no
// account lookup happens per request.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "thiếu header Authorization"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "định dạng: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token rỗng"})
		}
		username, role, unit, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token không hợp lệ hoặc đã hết hạn"})
		}
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		c.Locals(LocalUnit, unit)
		return c.Next()
	}
}

// GetUsername returns the username from the context (after AuthMiddleware).
func GetUsername(c *fiber.Ctx) string {
	return localString(c, LocalUsername)
}

// GetRole returns the role from the context (after AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetUnit returns the unit scope from the context (after AuthMiddleware).
func GetUnit(c *fiber.Ctx) string {
	return localString(c, LocalUnit)
}

// Actor rebuilds the acting account from the token claims. Nil when the
// request did not pass AuthMiddleware.
func Actor(c *fiber.Ctx) *entity.Account {
	username := GetUsername(c)
	if username == "" {
		return nil
	}
	return &entity.Account{
		Username: username,
		Role:     GetRole(c),
		Unit:     GetUnit(c),
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
