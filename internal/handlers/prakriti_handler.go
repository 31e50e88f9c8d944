package handlers

import (
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/prakriti"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type PrakritiHandler struct {
	analysisService *services.AnalysisService
}

func NewPrakritiHandler(analysisService *services.AnalysisService) *PrakritiHandler {
	return &PrakritiHandler{analysisService: analysisService}
}

// Traits returns the questionnaire: every trait key and its options.
func (h *PrakritiHandler) Traits(c *fiber.Ctx) error {
	return c.JSON(dto.TraitCatalogResponse{
		Keys:    prakriti.TraitKeys,
		Options: prakriti.Catalog(),
	})
}

func (h *PrakritiHandler) Analyze(c *fiber.Ctx) error {
	s, err := session.Get(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	analysis, err := h.analysisService.Analyze(s.UserID, req.Traits)
	if err != nil {
		return respondError(c, err, "Failed to analyze traits")
	}

	return c.Status(fiber.StatusCreated).JSON(analysis)
}

func (h *PrakritiHandler) History(c *fiber.Ctx) error {
	s, err := session.Get(c)
	if err != nil {
		return unauthorized(c)
	}

	analyses, err := h.analysisService.History(s.UserID)
	if err != nil {
		return respondError(c, err, "Failed to fetch history")
	}

	return c.JSON(analyses)
}
