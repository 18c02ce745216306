package impl

import (
	"context"
	"log/slog"

	deliverycontext "icebreaker/internal/delivery/context"
	"icebreaker/internal/domain/entity"
	domainerrors "icebreaker/internal/domain/errors"
	"icebreaker/internal/domain/repository"
	"icebreaker/internal/domain/service"
	"icebreaker/internal/usecase"
	"icebreaker/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type inviteService struct {
	repo      repository.ActivityRepository
	codes     service.InviteCodeService
	validator *validation.Validator
	logger    *slog.Logger
}

// InviteServiceParams holds dependencies for InviteService, injected by Fx.
type InviteServiceParams struct {
	fx.In

	Repo      repository.ActivityRepository
	Codes     service.InviteCodeService
	Validator *validation.Validator
	Logger    *slog.Logger
}

// NewInviteService is the constructor for inviteService.
func NewInviteService(params InviteServiceParams) usecase.InviteUsecase {
	return &inviteService{
		repo:      params.Repo,
		codes:     params.Codes,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// GetInviteQR renders the invite code of an existing icebreaker.
func (srv *inviteService) GetInviteQR(ctx context.Context, icebreakerID string) ([]byte, error) {
	icebreaker, err := srv.repo.FindIcebreakerByID(ctx, icebreakerID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find icebreaker")
	}

	png, err := srv.codes.GenerateInviteQR(icebreaker.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite code")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Generated invite code",
		slog.String("icebreaker_id", icebreaker.ID),
		slog.Int("bytes", len(png)),
	)

	return png, nil
}

// ResolveInvite decodes the payload and loads the icebreaker it names.
func (srv *inviteService) ResolveInvite(ctx context.Context, input *usecase.ResolveInviteInput) (*entity.Icebreaker, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	icebreakerID, err := srv.codes.ParseInviteQR(input.Payload)
	if err != nil {
		return nil, domainerrors.NewValidationError("Invite code is not recognized.")
	}

	icebreaker, err := srv.repo.FindIcebreakerByID(ctx, icebreakerID)
	if err != nil {
		return nil, translateRepoError(err, "failed to resolve invite")
	}

	return icebreaker, nil
}
