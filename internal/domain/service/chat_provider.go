package service

import "context"

// ChatProvider abstracts the third-party text-generation API behind the chat
// assistant. Only questions that pass the domain keyword gate reach it.
type ChatProvider interface {
	// Answer generates a reply to an on-topic agricultural question.
	Answer(ctx context.Context, question string) (string, error)
}
