// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is the currency assigned to accounts that do not pick one.
const DefaultCurrency = "USD"

// User represents a registered account that owns categories and transactions.
type User struct {
	ID                uuid.UUID
	Email             string
	Name              string
	PasswordHash      string
	PreferredCurrency string // ISO 4217 code, e.g. "USD"
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewUser creates a new User entity.
func NewUser(email, name, passwordHash, preferredCurrency string) *User {
	now := time.Now().UTC()

	if preferredCurrency == "" {
		preferredCurrency = DefaultCurrency
	}

	return &User{
		ID:                uuid.New(),
		Email:             email,
		Name:              name,
		PasswordHash:      passwordHash,
		PreferredCurrency: preferredCurrency,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
