// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"icebreaker/internal/domain/entity"
)

// PromptOption selects whether a submission answers an existing icebreaker or starts a new one.
type PromptOption string

const (
	PromptExisting PromptOption = "existing"
	PromptNew      PromptOption = "new"
)

// IcebreakerUsecase defines the interface for posting and reading icebreakers.
type IcebreakerUsecase interface {
	// Submit posts the current user's entry, either to an existing icebreaker or as the
	// first entry of a new one.
	Submit(ctx context.Context, input *SubmitEntryInput) (*SubmitOutput, error)
	AddEntry(ctx context.Context, icebreakerID string, input *AddEntryInput) (*entity.Entry, error)
	GetIcebreaker(ctx context.Context, id string) (*entity.Icebreaker, error)
	ListIcebreakers(ctx context.Context) ([]*entity.Icebreaker, error)
}

// --- Input DTOs ---

// SubmitEntryInput mirrors the create form.
type SubmitEntryInput struct {
	PromptOption         PromptOption     `json:"prompt_option" validate:"oneof=existing new" message:"Please choose an existing prompt or create a new one."`
	ExistingIcebreakerID string           `json:"existing_icebreaker_id"`
	NewPromptTitle       string           `json:"new_prompt_title"`
	NewPromptDescription string           `json:"new_prompt_description"`
	TopicType            entity.TopicType `json:"topic_type" validate:"omitempty,oneof=photo text mixed"`
	EntryText            string           `json:"entry_text" validate:"required" message:"Your entry text cannot be empty."`
	ContentURL           string           `json:"content_url"` // Opaque image reference, e.g. a data URL.
}

// AddEntryInput defines the data required to answer an existing icebreaker.
type AddEntryInput struct {
	Text       string `json:"text" validate:"required" message:"Your entry text cannot be empty."`
	ContentURL string `json:"content_url"`
}

// --- Output DTOs ---

// SubmitOutput reports what a submission stored.
type SubmitOutput struct {
	Icebreaker *entity.Icebreaker `json:"icebreaker"`
	Entry      *entity.Entry      `json:"entry"`
	Created    bool               `json:"created"` // True when a new icebreaker was started.
}
