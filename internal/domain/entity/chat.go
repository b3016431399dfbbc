package entity

// ChatAnswer is the assistant's reply to a single question. Exchanges are
// stateless and never persisted.
type ChatAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	// OnTopic is false when the keyword gate refused the question before it
	// ever reached the text-generation provider.
	OnTopic bool `json:"onTopic"`
}
