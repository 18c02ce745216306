package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "icebreaker/internal/delivery/context"
	"icebreaker/internal/domain/entity"
	"icebreaker/internal/domain/repository"
	"icebreaker/internal/usecase"
	"icebreaker/internal/validation"

	"go.uber.org/fx"
)

// engagementService implements the EngagementUsecase interface.
type engagementService struct {
	repo      repository.ActivityRepository
	validator *validation.Validator
	logger    *slog.Logger
}

// EngagementServiceParams holds dependencies for EngagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	Repo      repository.ActivityRepository
	Validator *validation.Validator
	Logger    *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		repo:      params.Repo,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// LikeEntry adds one like to the entry.
func (srv *engagementService) LikeEntry(ctx context.Context, entryID string) (*entity.Entry, error) {
	entry, err := srv.repo.LikeEntry(ctx, entryID)
	if err != nil {
		return nil, translateRepoError(err, "failed to like entry")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Entry liked",
		slog.String("entry_id", entryID),
		slog.Int("like_count", entry.LikeCount),
	)

	return entry, nil
}

// UnlikeEntry takes one like back from the entry.
func (srv *engagementService) UnlikeEntry(ctx context.Context, entryID string) (*entity.Entry, error) {
	entry, err := srv.repo.UnlikeEntry(ctx, entryID)
	if err != nil {
		return nil, translateRepoError(err, "failed to unlike entry")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Entry unliked",
		slog.String("entry_id", entryID),
		slog.Int("like_count", entry.LikeCount),
	)

	return entry, nil
}

// AddComment posts the current user's comment on the entry. The text is trimmed first.
func (srv *engagementService) AddComment(ctx context.Context, entryID string, input *usecase.AddCommentInput) (*entity.Comment, error) {
	trimmed := &usecase.AddCommentInput{Text: strings.TrimSpace(input.Text)}
	if err := srv.validator.Validate(trimmed); err != nil {
		return nil, err
	}

	author, err := currentUser(ctx, srv.repo)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ID:        newID(entryID + "-comment"),
		AuthorID:  author.ID,
		Text:      trimmed.Text,
		CreatedAt: time.Now(),
	}
	if err := srv.repo.AddComment(ctx, entryID, comment); err != nil {
		return nil, translateRepoError(err, "failed to add comment")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Comment added",
		slog.String("entry_id", entryID),
		slog.String("comment_id", comment.ID),
	)

	return comment, nil
}
