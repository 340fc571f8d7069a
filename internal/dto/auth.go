package dto

import "github.com/SscSPs/ark_management_app/internal/core/domain"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token and the caller it was issued for.
type LoginResponse struct {
	Token string           `json:"token"`
	User  domain.Principal `json:"user"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=6,max=72"`
	RegistrationToken string `json:"registrationToken" binding:"required"`
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password/:token.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6,max=72"`
}
