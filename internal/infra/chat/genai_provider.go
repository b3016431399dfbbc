// Package chat adapts Google's Gemini API to the domain ChatProvider interface.
package chat

import (
	"context"

	"harvest/config"
	"harvest/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// systemInstruction pins the assistant to farming topics even though the
// usecase layer already gates questions; the model gets the same boundary.
const systemInstruction = "You are an assistant for a farm-to-table marketplace. " +
	"Answer questions about farming, crops, soil, produce handling and market prices. " +
	"Keep answers short and practical."

// genaiProvider implements service.ChatProvider using the Gemini API.
type genaiProvider struct {
	client *genai.Client
	model  string
}

// NewGenaiProvider creates the Gemini-backed chat provider.
func NewGenaiProvider(ctx context.Context, cfg *config.Config) (service.ChatProvider, error) {
	if cfg.Chat == nil || cfg.Chat.APIKey == "" {
		return nil, errors.New("chat API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Chat.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	model := cfg.Chat.Model
	if model == "" {
		model = defaultModel
	}

	return &genaiProvider{client: client, model: model}, nil
}

// Answer generates a reply to an on-topic agricultural question.
func (p *genaiProvider) Answer(ctx context.Context, question string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx,
		p.model,
		genai.Text(question),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate chat answer")
	}

	answer := result.Text()
	if answer == "" {
		return "", errors.New("empty chat answer")
	}

	return answer, nil
}
