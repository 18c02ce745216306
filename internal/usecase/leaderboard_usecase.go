package usecase

import (
	"context"

	"icebreaker/internal/domain/entity"
)

// LeaderboardUsecase defines the interface for ranking users and icebreakers.
type LeaderboardUsecase interface {
	// GetLeaderboard ranks both collections. limit <= 0 uses the configured size.
	GetLeaderboard(ctx context.Context, limit int) (*Leaderboard, error)
}

// Leaderboard holds the two rankings, highest first.
type Leaderboard struct {
	TopUsers       []*entity.User       `json:"top_users"`
	TopIcebreakers []*entity.Icebreaker `json:"top_icebreakers"`
}
