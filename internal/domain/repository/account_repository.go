// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"doorman/internal/domain/entity"
)

// Domain-specific errors for account persistence. The application layer
// handles these without depending on database-specific error types.
var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateEmail is returned when an insert violates the unique
	// index on email. The store's index is the authoritative uniqueness
	// signal; the service's pre-check is only an optimization.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicatePhone is returned when an insert violates the unique
	// index on phone. The service never pre-checks phone uniqueness.
	ErrDuplicatePhone = errors.New("phone already registered")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByEmail retrieves a single account by exact-match email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. The password hash must already be set.
	Create(ctx context.Context, account *entity.Account) error
}
