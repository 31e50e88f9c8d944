package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// AccountService owns the users table. Deleting an account also deletes
// its analyses.
type AccountService struct {
	db      *gorm.DB
	cfg     *config.Config
	metrics *metrics.Metrics
}

func NewAccountService(db *gorm.DB, cfg *config.Config, m *metrics.Metrics) *AccountService {
	return &AccountService{db: db, cfg: cfg, metrics: m}
}

type newAccount struct {
	Email    string
	Password string
	Name     string
	Age      int
	Gender   string
	Role     string
}

func (s *AccountService) create(in newAccount) (*models.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ValidationError("A valid email is required")
	}
	if len(in.Password) < minPasswordLength {
		return nil, ValidationError(fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}
	if in.Age < 0 || in.Age > 150 {
		return nil, ValidationError("Age must be between 0 and 150")
	}
	if !models.ValidRole(in.Role) {
		return nil, ErrInvalidRole
	}

	taken, err := s.emailTaken(email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
		Role:     in.Role,
		Name:     strings.TrimSpace(in.Name),
		Age:      in.Age,
		Gender:   strings.TrimSpace(in.Gender),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.AccountEvent("created")
	slog.Info("user created", "user_id", user.ID.String(), "role", user.Role)
	return &user, nil
}

// CreateUser is the admin path: the role is taken from the request.
func (s *AccountService) CreateUser(req *dto.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	return s.create(newAccount{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
		Gender:   req.Gender,
		Role:     role,
	})
}

func (s *AccountService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *AccountService) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// Role returns the persisted role of the account.
func (s *AccountService) Role(userID uuid.UUID) (string, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *AccountService) UpdateUser(userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email == "" || !strings.Contains(email, "@") {
			return nil, ValidationError("A valid email is required")
		}
		if email != user.Email {
			taken, err := s.emailTaken(email, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrEmailTaken
			}
			user.Email = email
		}
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}
	if err := applyProfile(user, req.Name, req.Age, req.Gender); err != nil {
		return nil, err
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// UpdateProfile changes name, age and gender only.
func (s *AccountService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if err := applyProfile(user, req.Name, req.Age, req.Gender); err != nil {
		return nil, err
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// DeleteUser removes the account and all of its analyses in one
// transaction.
func (s *AccountService) DeleteUser(userID uuid.UUID) error {
	var removed int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ?", userID).Delete(&models.Analysis{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		res = tx.Where("id = ?", userID).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.metrics.AccountEvent("deleted")
	slog.Info("user deleted", "user_id", userID.String(), "analyses_removed", removed)
	return nil
}

// PromoteAdmin sets the admin role on the account with email.
func (s *AccountService) PromoteAdmin(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Role == models.RoleAdmin {
		return &user, nil
	}
	if err := s.db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}
	user.Role = models.RoleAdmin
	slog.Info("user promoted to admin", "user_id", user.ID.String())
	return &user, nil
}

// UserResponse builds the public view of user with its latest result.
func (s *AccountService) UserResponse(user *models.User) (*dto.UserResponse, error) {
	var latest []models.Analysis
	err := s.db.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(1).
		Find(&latest).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load latest analysis: %w", err)
	}

	resp := &dto.UserResponse{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Age:    user.Age,
		Gender: user.Gender,
		Role:   user.Role,
	}
	if len(latest) > 0 {
		result := latest[0].Prakriti
		resp.Prakriti = &result
	}
	return resp, nil
}

func (s *AccountService) emailTaken(email string, except uuid.UUID) (bool, error) {
	var count int64
	q := s.db.Model(&models.User{}).Where("email = ?", email)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (s *AccountService) bcryptCost() int {
	if s.cfg == nil || s.cfg.BcryptCost < bcrypt.MinCost {
		return bcrypt.DefaultCost
	}
	return s.cfg.BcryptCost
}

func applyProfile(user *models.User, name *string, age *int, gender *string) error {
	if age != nil {
		if *age < 0 || *age > 150 {
			return ValidationError("Age must be between 0 and 150")
		}
		user.Age = *age
	}
	if name != nil {
		user.Name = strings.TrimSpace(*name)
	}
	if gender != nil {
		user.Gender = strings.TrimSpace(*gender)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
