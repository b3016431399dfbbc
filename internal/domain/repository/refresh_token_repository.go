package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found or expired.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for session persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves an unexpired refresh token by its stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash removes the session identified by the token hash.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error
}
