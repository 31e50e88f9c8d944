package models

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/prakriti"
	"github.com/google/uuid"
)

// Analysis is one questionnaire submission with its classification and
// recommendations. Only Recommendations.FollowUp changes after creation.
type Analysis struct {
	ID              uuid.UUID                `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                `gorm:"type:uuid;not null;index" json:"user_id"`
	Traits          prakriti.Traits          `gorm:"type:jsonb;serializer:json;not null" json:"traits"`
	Prakriti        prakriti.Result          `gorm:"type:jsonb;serializer:json;not null" json:"prakriti"`
	Scores          []prakriti.Score         `gorm:"type:jsonb;serializer:json" json:"scores"`
	Recommendations prakriti.Recommendations `gorm:"type:jsonb;serializer:json" json:"recommendations"`
	CreatedAt       time.Time                `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
	User            User                     `gorm:"foreignKey:UserID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
