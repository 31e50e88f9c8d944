package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/prakriti"
	"github.com/google/uuid"
)

type AnalyzeRequest struct {
	Traits prakriti.Traits `json:"traits"`
}

type TraitCatalogResponse struct {
	Keys    []string            `json:"keys"`
	Options map[string][]string `json:"options"`
}

type FollowUpRequest struct {
	FollowUpText string `json:"followUpText"`
}

// AdminAnalysisResponse is an analysis enriched with its owner's email.
type AdminAnalysisResponse struct {
	models.Analysis
	OwnerEmail string `json:"owner_email"`
}

// FollowUpSummary lists the follow-ups of one analysis.
type FollowUpSummary struct {
	ID        uuid.UUID       `json:"id"`
	Prakriti  prakriti.Result `json:"prakriti"`
	FollowUp  []string        `json:"followUp"`
	CreatedAt time.Time       `json:"created_at"`
}
