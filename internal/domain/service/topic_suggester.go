package service

import (
	"context"
)

// AlternativeHeadlineCount is the number of headlines a suggestion carries.
const AlternativeHeadlineCount = 3

// TopicSuggestion is the reworded form of a user's topic idea.
type TopicSuggestion struct {
	PolishedTopic        string   `json:"polished_topic"`
	AlternativeHeadlines []string `json:"alternative_headlines"`
}

// TopicSuggester defines the interface for the generative text service that
// rewords topic ideas. Each call is one request and one response, without retries.
type TopicSuggester interface {
	// SuggestTopic returns a polished topic and alternative headlines for userInput.
	SuggestTopic(ctx context.Context, userInput string) (*TopicSuggestion, error)
}
