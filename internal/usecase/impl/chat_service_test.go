package impl

import (
	"context"
	"testing"

	domainerrors "harvest/internal/domain/errors"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_Ask_OnTopicQuestionReachesProvider(t *testing.T) {
	provider := mockSvc.NewMockChatProvider(t)
	service := NewChatService(ChatServiceParams{Provider: provider, Logger: newTestLogger()})

	ctx := context.Background()
	question := "When should I plant tomatoes in a greenhouse?"

	provider.EXPECT().
		Answer(ctx, question).
		Return("Start seedlings indoors six weeks before the last frost.", nil)

	answer, err := service.Ask(ctx, consumerPrincipal(), &usecase.AskInput{Question: question})

	require.NoError(t, err)
	assert.True(t, answer.OnTopic)
	assert.Contains(t, answer.Answer, "seedlings")
}

func TestChatService_Ask_OffTopicQuestionIsRefusedLocally(t *testing.T) {
	provider := mockSvc.NewMockChatProvider(t)
	service := NewChatService(ChatServiceParams{Provider: provider, Logger: newTestLogger()})

	// No provider expectation: an off-topic question must never reach it.
	answer, err := service.Ask(context.Background(), consumerPrincipal(),
		&usecase.AskInput{Question: "Who won the football match yesterday?"})

	require.NoError(t, err)
	assert.False(t, answer.OnTopic)
	assert.Equal(t, offTopicAnswer, answer.Answer)
}

func TestChatService_Ask_EmptyQuestionFailsValidation(t *testing.T) {
	service := NewChatService(ChatServiceParams{Logger: newTestLogger()})

	_, err := service.Ask(context.Background(), consumerPrincipal(), &usecase.AskInput{Question: "   "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChatService_Ask_ProviderFailureIsUnavailable(t *testing.T) {
	provider := mockSvc.NewMockChatProvider(t)
	service := NewChatService(ChatServiceParams{Provider: provider, Logger: newTestLogger()})

	ctx := context.Background()
	question := "How do I improve clay soil drainage?"

	provider.EXPECT().
		Answer(ctx, question).
		Return("", errors.New("upstream timeout"))

	_, err := service.Ask(ctx, consumerPrincipal(), &usecase.AskInput{Question: question})

	assert.ErrorIs(t, err, domainerrors.ErrChatUnavailable)
}

func TestChatService_Ask_NoProviderConfigured(t *testing.T) {
	service := NewChatService(ChatServiceParams{Logger: newTestLogger()})

	_, err := service.Ask(context.Background(), consumerPrincipal(),
		&usecase.AskInput{Question: "What crops grow well in sandy soil?"})

	assert.ErrorIs(t, err, domainerrors.ErrChatUnavailable)
}

func TestIsOnTopic_MatchesStemsAndCompounds(t *testing.T) {
	onTopic := []string{
		"Best irrigation schedule for tomatoes",
		"how does soil-testing work",
		"Is my harvest ready?",
		"current market price for wheat",
	}
	for _, q := range onTopic {
		assert.True(t, isOnTopic(q), "expected on-topic: %s", q)
	}

	offTopic := []string{
		"Tell me a joke",
		"What is the capital of France?",
	}
	for _, q := range offTopic {
		assert.False(t, isOnTopic(q), "expected off-topic: %s", q)
	}
}
