package usecase

import (
	"context"

	"icebreaker/internal/domain/entity"
)

// EngagementUsecase defines the interface for reacting to entries.
type EngagementUsecase interface {
	LikeEntry(ctx context.Context, entryID string) (*entity.Entry, error)
	UnlikeEntry(ctx context.Context, entryID string) (*entity.Entry, error)
	AddComment(ctx context.Context, entryID string, input *AddCommentInput) (*entity.Comment, error)
}

// AddCommentInput defines the data required to comment on an entry.
type AddCommentInput struct {
	Text string `json:"text" validate:"required" message:"Your comment cannot be empty."`
}
