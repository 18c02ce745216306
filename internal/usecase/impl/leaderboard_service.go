package impl

import (
	"context"

	"icebreaker/config"
	"icebreaker/internal/domain/aggregate"
	"icebreaker/internal/domain/repository"
	"icebreaker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// leaderboardService implements the LeaderboardUsecase interface.
type leaderboardService struct {
	repo         repository.ActivityRepository
	defaultLimit int
}

// LeaderboardServiceParams holds dependencies for LeaderboardService, injected by Fx.
type LeaderboardServiceParams struct {
	fx.In

	Repo   repository.ActivityRepository
	Config *config.Config
}

// NewLeaderboardService is the constructor for leaderboardService.
func NewLeaderboardService(params LeaderboardServiceParams) usecase.LeaderboardUsecase {
	limit := aggregate.DefaultLeaderboardSize
	if params.Config.Leaderboard != nil && params.Config.Leaderboard.Limit > 0 {
		limit = params.Config.Leaderboard.Limit
	}

	return &leaderboardService{
		repo:         params.Repo,
		defaultLimit: limit,
	}
}

// GetLeaderboard ranks users by activity score and icebreakers by interaction count.
func (srv *leaderboardService) GetLeaderboard(ctx context.Context, limit int) (*usecase.Leaderboard, error) {
	if limit <= 0 {
		limit = srv.defaultLimit
	}

	snapshot, err := srv.repo.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read activity snapshot")
	}

	return &usecase.Leaderboard{
		TopUsers:       aggregate.TopUsers(snapshot.Users, limit),
		TopIcebreakers: aggregate.TopIcebreakers(snapshot.Icebreakers, limit),
	}, nil
}
