package handlers

import (
	"strconv"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	accountService  *services.AccountService
	analysisService *services.AnalysisService
}

func NewAdminHandler(accountService *services.AccountService, analysisService *services.AnalysisService) *AdminHandler {
	return &AdminHandler{
		accountService:  accountService,
		analysisService: analysisService,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.accountService.ListUsers()
	if err != nil {
		return respondError(c, err, "Failed to fetch users")
	}
	return c.JSON(users)
}

func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.accountService.CreateUser(&req)
	if err != nil {
		return respondError(c, err, "Failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.accountService.UpdateUser(userID, &req)
	if err != nil {
		return respondError(c, err, "Failed to update user")
	}
	return c.JSON(user)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	if err := h.accountService.DeleteUser(userID); err != nil {
		return respondError(c, err, "Failed to delete user")
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted"})
}

func (h *AdminHandler) ListAnalyses(c *fiber.Ctx) error {
	analyses, err := h.analysisService.ListAll()
	if err != nil {
		return respondError(c, err, "Failed to fetch analyses")
	}
	return c.JSON(analyses)
}

func (h *AdminHandler) UserFollowUps(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	followUps, err := h.analysisService.FollowUps(userID)
	if err != nil {
		return respondError(c, err, "Failed to fetch follow-ups")
	}
	return c.JSON(followUps)
}

func (h *AdminHandler) AddFollowUp(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("analysisId"))
	if err != nil {
		return badRequest(c, "Invalid analysis ID")
	}

	var req dto.FollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	analysis, err := h.analysisService.AppendFollowUp(analysisID, req.FollowUpText)
	if err != nil {
		return respondError(c, err, "Error adding follow-up")
	}
	return c.JSON(analysis)
}

func (h *AdminHandler) DeleteFollowUp(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("analysisId"))
	if err != nil {
		return badRequest(c, "Invalid analysis ID")
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return badRequest(c, "Invalid follow-up index")
	}

	analysis, err := h.analysisService.RemoveFollowUp(analysisID, index)
	if err != nil {
		return respondError(c, err, "Error deleting follow-up")
	}
	return c.JSON(analysis)
}
