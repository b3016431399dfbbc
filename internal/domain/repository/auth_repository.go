package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"
)

// ErrAuthNotFound is returned when no authentication record matches the lookup.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and provider-side user ID.
	// For the email provider the provider-side ID is the email address itself.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential record.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// UpdateAuthentication modifies an existing credential record, e.g. on password change.
	UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
