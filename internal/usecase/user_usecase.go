// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterFarmerInput defines the data required to register a new farmer.
type RegisterFarmerInput struct {
	Name         string
	Email        string
	Password     string
	FarmName     string
	FarmLocation string
	Bio          string
}

// RegisterConsumerInput defines the data required to register a new consumer.
type RegisterConsumerInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	DefaultAddress string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented for renewal.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session being closed.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the renewed access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterFarmer(ctx context.Context, input *RegisterFarmerInput) (*RegisterOutput, error)
	RegisterConsumer(ctx context.Context, input *RegisterConsumerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
