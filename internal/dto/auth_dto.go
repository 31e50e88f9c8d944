package dto

import (
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/prakriti"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest only touches the fields that are present.
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public view of an account. Prakriti is the result of
// the latest analysis, or null.
type UserResponse struct {
	ID       uuid.UUID        `json:"id"`
	Email    string           `json:"email"`
	Name     string           `json:"name"`
	Age      int              `json:"age"`
	Gender   string           `json:"gender"`
	Role     string           `json:"role"`
	Prakriti *prakriti.Result `json:"prakriti"`
}

type CurrentUserResponse struct {
	User UserResponse `json:"user"`
}

type UpdateProfileResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
