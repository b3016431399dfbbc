package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// AskInput carries one chat question.
type AskInput struct {
	Question string
}

// ChatUsecase defines the domain-restricted chat assistant. Questions outside
// the agricultural vocabulary are refused locally without calling the provider.
type ChatUsecase interface {
	Ask(ctx context.Context, principal entity.Principal, input *AskInput) (*entity.ChatAnswer, error)
}
