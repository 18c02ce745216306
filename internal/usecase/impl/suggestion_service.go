package impl

import (
	"context"
	"log/slog"

	deliverycontext "icebreaker/internal/delivery/context"
	domainerrors "icebreaker/internal/domain/errors"
	"icebreaker/internal/domain/service"
	"icebreaker/internal/usecase"
	"icebreaker/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// suggestionService implements the SuggestionUsecase interface.
type suggestionService struct {
	suggester service.TopicSuggester
	validator *validation.Validator
	logger    *slog.Logger
}

// SuggestionServiceParams holds dependencies for SuggestionService, injected by Fx.
type SuggestionServiceParams struct {
	fx.In

	Suggester service.TopicSuggester
	Validator *validation.Validator
	Logger    *slog.Logger
}

// NewSuggestionService is the constructor for suggestionService.
func NewSuggestionService(params SuggestionServiceParams) usecase.SuggestionUsecase {
	return &suggestionService{
		suggester: params.Suggester,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// SuggestTopic validates the idea and forwards it to the text-transform service.
// Application errors from the service pass through; anything else becomes
// ErrTextTransformFailed carrying the provider's message.
func (srv *suggestionService) SuggestTopic(ctx context.Context, input *usecase.SuggestTopicInput) (*service.TopicSuggestion, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	suggestion, err := srv.suggester.SuggestTopic(ctx, input.UserInput)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Error calling AI for topic suggestion", slog.Any("error", err))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrTextTransformFailed.WithMessage(err.Error())
	}
	if suggestion == nil {
		return nil, domainerrors.ErrTextTransformEmpty
	}

	return suggestion, nil
}
