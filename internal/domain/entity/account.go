// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the sole entity in the system: one persisted identity record.
// Email and Phone are globally unique. Email is stored as an opaque string,
// exactly as the caller supplied it; no case normalization is performed.
type Account struct {
	ID           uuid.UUID // The unique identifier for this account.
	Name         string    // The account holder's display name.
	Email        string    // The primary lookup key. Opaque, exact-match only.
	Phone        string    // Secondary unique identifier.
	PasswordHash string    // Bcrypt digest of the password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when the account was registered.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
