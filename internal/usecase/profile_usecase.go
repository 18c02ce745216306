package usecase

import (
	"context"

	"icebreaker/internal/domain/aggregate"
	"icebreaker/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related read operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	// CurrentUser returns the acting user: the first admin, else the first user.
	CurrentUser(ctx context.Context) (*entity.User, error)
	GetCurrentProfile(ctx context.Context) (*Profile, error)
}

// Profile is a user together with their contribution counts, ice gauge and recent entries.
type Profile struct {
	User          *entity.User            `json:"user"`
	Stats         aggregate.UserStats     `json:"stats"`
	IceGauge      aggregate.IceGauge      `json:"ice_gauge"`
	RecentEntries []aggregate.RecentEntry `json:"recent_entries"`
}
