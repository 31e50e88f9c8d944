package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash is compared against when the email is unknown so both login
// failures cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.MinCost)

type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	accounts *AccountService
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewAuthService(db *gorm.DB, cfg *config.Config, accounts *AccountService, m *metrics.Metrics) *AuthService {
	return &AuthService{
		db:       db,
		cfg:      cfg,
		accounts: accounts,
		metrics:  m,
		now:      time.Now,
	}
}

// Register creates a regular account, or an admin one when the email is in
// the configured admin seed list.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.RoleUser
	if s.cfg.IsAdminEmail(req.Email) {
		role = models.RoleAdmin
	}

	user, err := s.accounts.create(newAccount{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
		Gender:   req.Gender,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}
	return s.authResponse(user)
}

// Login fails with ErrInvalidCredentials for unknown emails and wrong
// passwords alike.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	err := s.db.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		s.metrics.Login(false)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.metrics.Login(false)
		return nil, ErrInvalidCredentials
	}

	s.metrics.Login(true)
	return s.authResponse(&user)
}

func (s *AuthService) CurrentUser(userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.accounts.GetUser(userID)
	if err != nil {
		return nil, err
	}
	return s.accounts.UserResponse(user)
}

func (s *AuthService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.accounts.UpdateProfile(userID, req)
	if err != nil {
		return nil, err
	}
	return s.accounts.UserResponse(user)
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}
	resp, err := s.accounts.UserResponse(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *resp}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
