package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offTopicAnswer is returned verbatim for questions outside the vocabulary.
const offTopicAnswer = "I can only help with questions about farming, crops, soil, produce and market prices. Please ask me something in that area."

// farmingVocabulary gates questions before any provider call. The match is a
// lowercase substring check, so plurals and compounds ("tomatoes",
// "soil-testing") hit their stems.
var farmingVocabulary = []string{
	"farm", "crop", "soil", "harvest", "plant", "seed", "grow",
	"fertilizer", "fertiliser", "compost", "irrigat", "pest", "weed",
	"organic", "produce", "vegetable", "fruit", "grain", "wheat", "corn",
	"rice", "tomato", "potato", "onion", "carrot", "apple", "spinach",
	"livestock", "dairy", "milk", "egg", "honey", "greenhouse", "orchard",
	"certification", "market price", "season", "yield", "agricultur",
}

// chatService implements the ChatUsecase interface.
type chatService struct {
	provider service.ChatProvider
	logger   *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Provider service.ChatProvider `optional:"true"`
	Logger   *slog.Logger
}

// NewChatService is the constructor for chatService. The provider is optional;
// without one every on-topic question fails with a service-unavailable error
// while off-topic refusals keep working.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Ask answers one question. Off-topic questions get a fixed refusal without
// touching the provider.
func (srv *chatService) Ask(ctx context.Context, principal entity.Principal, input *usecase.AskInput) (*entity.ChatAnswer, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("question is required")
	}

	if !isOnTopic(question) {
		srv.log(ctx).Debug("Chat question refused as off-topic", slog.Any("userID", principal.UserID))

		return &entity.ChatAnswer{
			Question: question,
			Answer:   offTopicAnswer,
			OnTopic:  false,
		}, nil
	}

	if srv.provider == nil {
		return nil, errors.Wrap(domainerrors.ErrChatUnavailable, "no chat provider configured")
	}

	answer, err := srv.provider.Answer(ctx, question)
	if err != nil {
		srv.log(ctx).Warn("Chat provider failed", slog.Any("userID", principal.UserID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrChatUnavailable, "chat provider failed")
	}

	return &entity.ChatAnswer{
		Question: question,
		Answer:   answer,
		OnTopic:  true,
	}, nil
}

func isOnTopic(question string) bool {
	lowered := strings.ToLower(question)
	for _, keyword := range farmingVocabulary {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}

	return false
}
