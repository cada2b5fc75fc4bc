package dto

import "github.com/Mithil2603/machinery-backend/internal/models"

type SignupRequest struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumber  string `json:"phone_number" validate:"required"`
	CompanyName  string `json:"company_name"`
	UserPassword string `json:"user_password" validate:"required,min=6"`
	UserType     string `json:"user_type" validate:"omitempty,oneof=user owner"`
}

type LoginRequest struct {
	Email        string `json:"email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// SessionResult is what a successful login (or reset-password, which
// rotates the session) hands back to the HTTP layer.
type SessionResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
