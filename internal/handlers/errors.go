package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a domain error kind to its HTTP status.
func StatusFor(kind services.Kind) int {
	switch kind {
	case services.KindValidation:
		return fiber.StatusBadRequest
	case services.KindConflict:
		return fiber.StatusConflict
	case services.KindAuth:
		return fiber.StatusUnauthorized
	case services.KindForbidden:
		return fiber.StatusForbidden
	case services.KindNotFound:
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// respondError writes domain errors with their own message and hides
// everything else behind fallback.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var e *services.Error
	if errors.As(err, &e) {
		return c.Status(StatusFor(e.Kind)).JSON(dto.ErrorResponse{
			Error: true, Message: e.Message,
		})
	}

	attrs := []any{
		"method", c.Method(),
		"path", c.Path(),
		"request_id", fmt.Sprint(c.Locals("requestid")),
		"error", err.Error(),
	}
	if s, serr := session.Get(c); serr == nil {
		attrs = append(attrs, "user_id", s.UserID.String())
	}
	slog.Error(fallback, attrs...)

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
