package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/prakriti"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnalysisService stores classification results. Follow-up edits are
// read-modify-write on one row; concurrent edits are last writer wins.
type AnalysisService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewAnalysisService(db *gorm.DB, m *metrics.Metrics) *AnalysisService {
	return &AnalysisService{db: db, metrics: m, now: time.Now}
}

// Analyze classifies traits, composes the recommendations and stores the
// result for userID. Incomplete or out-of-catalog selections are rejected
// before anything is classified.
func (s *AnalysisService) Analyze(userID uuid.UUID, traits prakriti.Traits) (*models.Analysis, error) {
	if err := traits.Validate(); err != nil {
		return nil, ValidationError(err.Error())
	}

	var owners int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&owners).Error; err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if owners == 0 {
		return nil, ErrUserNotFound
	}

	c := prakriti.Classify(traits)
	now := s.now().UTC()
	analysis := models.Analysis{
		ID:              uuid.New(),
		UserID:          userID,
		Traits:          traits,
		Prakriti:        c.Result,
		Scores:          c.Scores,
		Recommendations: prakriti.Compose(c.Result),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.db.Omit(clause.Associations).Create(&analysis).Error; err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	s.metrics.AnalysisCreated(string(c.Result.Primary))
	slog.Info("analysis created",
		"user_id", userID.String(),
		"analysis_id", analysis.ID.String(),
		"primary", c.Result.Primary,
	)
	return &analysis, nil
}

// History returns the analyses of userID, newest first.
func (s *AnalysisService) History(userID uuid.UUID) ([]models.Analysis, error) {
	analyses := []models.Analysis{}
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return analyses, nil
}

// ListAll returns every analysis, newest first, with its owner's email.
func (s *AnalysisService) ListAll() ([]dto.AdminAnalysisResponse, error) {
	var analyses []models.Analysis
	if err := s.db.Preload("User").Order("created_at DESC").Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to load analyses: %w", err)
	}

	result := make([]dto.AdminAnalysisResponse, 0, len(analyses))
	for _, a := range analyses {
		result = append(result, dto.AdminAnalysisResponse{
			Analysis:   a,
			OwnerEmail: a.User.Email,
		})
	}
	return result, nil
}

// FollowUps lists the follow-up entries of every analysis owned by userID.
func (s *AnalysisService) FollowUps(userID uuid.UUID) ([]dto.FollowUpSummary, error) {
	analyses, err := s.History(userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.FollowUpSummary, 0, len(analyses))
	for _, a := range analyses {
		result = append(result, dto.FollowUpSummary{
			ID:        a.ID,
			Prakriti:  a.Prakriti,
			FollowUp:  a.Recommendations.FollowUp,
			CreatedAt: a.CreatedAt,
		})
	}
	return result, nil
}

func (s *AnalysisService) Get(analysisID uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := s.db.First(&analysis, "id = ?", analysisID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}
	return &analysis, nil
}

// AppendFollowUp adds text to the end of the follow-up list.
func (s *AnalysisService) AppendFollowUp(analysisID uuid.UUID, text string) (*models.Analysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrFollowUpRequired
	}

	analysis, err := s.Get(analysisID)
	if err != nil {
		return nil, err
	}

	followUps := make([]string, 0, len(analysis.Recommendations.FollowUp)+1)
	followUps = append(followUps, analysis.Recommendations.FollowUp...)
	analysis.Recommendations.FollowUp = append(followUps, text)

	if err := s.save(analysis); err != nil {
		return nil, err
	}

	s.metrics.FollowUpEdited("append")
	slog.Info("follow-up appended", "analysis_id", analysisID.String(), "count", len(analysis.Recommendations.FollowUp))
	return analysis, nil
}

// RemoveFollowUp deletes the entry at index. An index outside the list
// fails with ErrFollowUpIndex and leaves the record unchanged.
func (s *AnalysisService) RemoveFollowUp(analysisID uuid.UUID, index int) (*models.Analysis, error) {
	analysis, err := s.Get(analysisID)
	if err != nil {
		return nil, err
	}

	current := analysis.Recommendations.FollowUp
	if index < 0 || index >= len(current) {
		return nil, ErrFollowUpIndex
	}

	followUps := make([]string, 0, len(current)-1)
	followUps = append(followUps, current[:index]...)
	analysis.Recommendations.FollowUp = append(followUps, current[index+1:]...)

	if err := s.save(analysis); err != nil {
		return nil, err
	}

	s.metrics.FollowUpEdited("remove")
	slog.Info("follow-up removed", "analysis_id", analysisID.String(), "index", index)
	return analysis, nil
}

func (s *AnalysisService) save(analysis *models.Analysis) error {
	analysis.UpdatedAt = s.now().UTC()
	if err := s.db.Omit(clause.Associations).Save(analysis).Error; err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}
