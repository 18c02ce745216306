package impl

import (
	"context"
	"log/slog"

	deliverycontext "icebreaker/internal/delivery/context"
	"icebreaker/internal/domain/aggregate"
	"icebreaker/internal/domain/entity"
	"icebreaker/internal/domain/repository"
	"icebreaker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	repo   repository.ActivityRepository
	logger *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Repo   repository.ActivityRepository
	Logger *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		repo:   params.Repo,
		logger: params.Logger,
	}
}

// GetProfile retrieves the user with their stats and ice gauge.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*usecase.Profile, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Getting user profile", slog.String("user_id", userID))

	user, err := srv.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	return srv.buildProfile(ctx, user)
}

// CurrentUser returns the first admin, else the first user.
func (srv *profileService) CurrentUser(ctx context.Context) (*entity.User, error) {
	return currentUser(ctx, srv.repo)
}

// GetCurrentProfile is GetProfile for the current user.
func (srv *profileService) GetCurrentProfile(ctx context.Context) (*usecase.Profile, error) {
	user, err := currentUser(ctx, srv.repo)
	if err != nil {
		return nil, err
	}

	return srv.buildProfile(ctx, user)
}

func (srv *profileService) buildProfile(ctx context.Context, user *entity.User) (*usecase.Profile, error) {
	entries, err := srv.repo.ListEntries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entries")
	}

	return &usecase.Profile{
		User:          user,
		Stats:         aggregate.StatsForUser(entries, user.ID),
		IceGauge:      aggregate.IceGaugeFor(user.IceLevel),
		RecentEntries: aggregate.RecentEntriesForUser(entries, user.ID, aggregate.DefaultRecentEntries),
	}, nil
}
