package middleware

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RoleLookup resolves the persisted role of an account.
type RoleLookup interface {
	Role(userID uuid.UUID) (string, error)
}

// AdminRequired lets the request through only when the caller's persisted
// role is admin. The role claim in the token is not trusted, so a demoted
// admin loses access before the token expires.
func AdminRequired(roles RoleLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := session.Get(c)
		if err != nil {
			return unauthorized(c)
		}

		role, err := roles.Role(s.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return unauthorized(c)
			}
			slog.Error("admin role lookup failed", "user_id", s.UserID.String(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}

		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: services.ErrAdminRequired.Message,
			})
		}
		return c.Next()
	}
}
