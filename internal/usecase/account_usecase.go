// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"doorman/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
// All four fields are required; the service rejects empty values before
// touching the store.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required to authenticate a returning account.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// LoginOutput returns the authenticated identity projection.
// The password hash is never part of any output.
type LoginOutput struct {
	Account *entity.Account
}

// AccountUsecase defines the interface for credential lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) depends on.
type AccountUsecase interface {
	// Signup validates the payload, enforces email uniqueness, hashes the
	// password and persists a new account. Exactly one account is created
	// on success, zero on any failure.
	Signup(ctx context.Context, input *SignupInput) error

	// Login verifies the presented password against the stored digest and
	// returns the account on success. Unknown email and wrong password are
	// reported identically.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
