package usecase

import (
	"context"

	"icebreaker/internal/domain/service"
)

// SuggestionUsecase defines the interface for AI topic suggestions.
type SuggestionUsecase interface {
	SuggestTopic(ctx context.Context, input *SuggestTopicInput) (*service.TopicSuggestion, error)
}

// SuggestTopicInput is the user's rough topic idea.
type SuggestTopicInput struct {
	UserInput string `json:"user_input" validate:"min=3" message:"Please enter at least 3 characters for your topic idea."`
}
