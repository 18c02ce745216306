package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "icebreaker/internal/delivery/context"
	"icebreaker/internal/domain/entity"
	domainerrors "icebreaker/internal/domain/errors"
	"icebreaker/internal/domain/repository"
	"icebreaker/internal/usecase"
	"icebreaker/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type newPromptRules struct {
	Title       string `json:"new_prompt_title" validate:"min=3" message:"New prompt title must be at least 3 characters."`
	Description string `json:"new_prompt_description" validate:"min=10" message:"New prompt description must be at least 10 characters."`
}

type existingPromptRules struct {
	IcebreakerID string `json:"existing_icebreaker_id" validate:"required" message:"Please select an existing prompt."`
}

// icebreakerService implements the IcebreakerUsecase interface.
type icebreakerService struct {
	repo      repository.ActivityRepository
	validator *validation.Validator
	logger    *slog.Logger
}

// IcebreakerServiceParams holds dependencies for IcebreakerService, injected by Fx.
type IcebreakerServiceParams struct {
	fx.In

	Repo      repository.ActivityRepository
	Validator *validation.Validator
	Logger    *slog.Logger
}

// NewIcebreakerService is the constructor for icebreakerService.
func NewIcebreakerService(params IcebreakerServiceParams) usecase.IcebreakerUsecase {
	return &icebreakerService{
		repo:      params.Repo,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *icebreakerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates the create form and stores the entry.
func (srv *icebreakerService) Submit(ctx context.Context, input *usecase.SubmitEntryInput) (*usecase.SubmitOutput, error) {
	if err := srv.validateSubmission(input); err != nil {
		return nil, err
	}

	author, err := currentUser(ctx, srv.repo)
	if err != nil {
		return nil, err
	}

	if input.PromptOption == usecase.PromptExisting {
		icebreakerID := strings.TrimSpace(input.ExistingIcebreakerID)
		entry, err := srv.addEntry(ctx, icebreakerID, author, input.EntryText, input.ContentURL)
		if err != nil {
			return nil, err
		}

		icebreaker, err := srv.repo.FindIcebreakerByID(ctx, icebreakerID)
		if err != nil {
			return nil, translateRepoError(err, "failed to reload icebreaker")
		}

		return &usecase.SubmitOutput{Icebreaker: icebreaker, Entry: entry}, nil
	}

	topicType := input.TopicType
	if topicType == "" {
		topicType = entity.TopicMixed
	}

	now := time.Now()
	icebreaker := &entity.Icebreaker{
		ID:          newID("icebreaker"),
		Title:       input.NewPromptTitle,
		Description: input.NewPromptDescription,
		TopicType:   topicType,
		AuthorID:    author.ID,
		CreatedAt:   now,
	}
	entry := &entity.Entry{
		ID:         newID(icebreaker.ID + "-entry"),
		AuthorID:   author.ID,
		Text:       input.EntryText,
		ContentURL: input.ContentURL,
		CreatedAt:  now,
		Comments:   []*entity.Comment{},
	}

	if err := srv.repo.CreateIcebreakerWithFirstEntry(ctx, icebreaker, entry); err != nil {
		return nil, translateRepoError(err, "failed to create icebreaker")
	}

	srv.log(ctx).Info("Icebreaker created",
		slog.String("icebreaker_id", icebreaker.ID),
		slog.String("author_id", author.ID),
		slog.String("topic_type", topicType.String()),
	)

	return &usecase.SubmitOutput{Icebreaker: icebreaker, Entry: entry, Created: true}, nil
}

// AddEntry posts the current user's entry to an existing icebreaker.
func (srv *icebreakerService) AddEntry(ctx context.Context, icebreakerID string, input *usecase.AddEntryInput) (*entity.Entry, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	author, err := currentUser(ctx, srv.repo)
	if err != nil {
		return nil, err
	}

	return srv.addEntry(ctx, icebreakerID, author, input.Text, input.ContentURL)
}

func (srv *icebreakerService) addEntry(ctx context.Context, icebreakerID string, author *entity.User, text, contentURL string) (*entity.Entry, error) {
	entry := &entity.Entry{
		ID:         newID(icebreakerID + "-entry"),
		AuthorID:   author.ID,
		Text:       text,
		ContentURL: contentURL,
		CreatedAt:  time.Now(),
		Comments:   []*entity.Comment{},
	}

	if err := srv.repo.AddEntryToIcebreaker(ctx, icebreakerID, entry); err != nil {
		return nil, translateRepoError(err, "failed to add entry")
	}

	srv.log(ctx).Info("Entry added",
		slog.String("icebreaker_id", icebreakerID),
		slog.String("entry_id", entry.ID),
		slog.String("author_id", author.ID),
	)

	return entry, nil
}

// GetIcebreaker retrieves one icebreaker with its entries.
func (srv *icebreakerService) GetIcebreaker(ctx context.Context, id string) (*entity.Icebreaker, error) {
	icebreaker, err := srv.repo.FindIcebreakerByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find icebreaker")
	}

	return icebreaker, nil
}

// ListIcebreakers returns every icebreaker in collection order.
func (srv *icebreakerService) ListIcebreakers(ctx context.Context) ([]*entity.Icebreaker, error) {
	icebreakers, err := srv.repo.ListIcebreakers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list icebreakers")
	}

	return icebreakers, nil
}

// validateSubmission reports the form issues first, then the issues of the chosen prompt option.
func (srv *icebreakerService) validateSubmission(input *usecase.SubmitEntryInput) error {
	issues, err := srv.validator.Issues(input)
	if err != nil {
		return errors.Wrap(err, "failed to validate submission")
	}

	var rules any
	switch input.PromptOption {
	case usecase.PromptExisting:
		rules = &existingPromptRules{IcebreakerID: strings.TrimSpace(input.ExistingIcebreakerID)}
	case usecase.PromptNew:
		rules = &newPromptRules{Title: input.NewPromptTitle, Description: input.NewPromptDescription}
	}

	if rules != nil {
		optionIssues, err := srv.validator.Issues(rules)
		if err != nil {
			return errors.Wrap(err, "failed to validate prompt option")
		}
		issues = append(issues, optionIssues...)
	}

	if len(issues) > 0 {
		return domainerrors.NewValidationError(issues...)
	}

	return nil
}
