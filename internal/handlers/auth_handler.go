package handlers

import (
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		return respondError(c, err, "Failed to register")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return respondError(c, err, "Internal server error")
	}

	return c.JSON(resp)
}

func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	s, err := session.Get(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.authService.CurrentUser(s.UserID)
	if err != nil {
		return respondError(c, err, "Server error")
	}

	return c.JSON(dto.CurrentUserResponse{User: *user})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	s, err := session.Get(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.authService.UpdateProfile(s.UserID, &req)
	if err != nil {
		return respondError(c, err, "Failed to update profile")
	}

	return c.JSON(dto.UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    *user,
	})
}
