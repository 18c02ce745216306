package usecase

import (
	"context"
	"time"

	"icebreaker/internal/domain/aggregate"
	"icebreaker/internal/domain/entity"
)

// FeedUsecase defines the interface for the month-grouped home feed.
type FeedUsecase interface {
	// GetFeed groups every icebreaker by the month of its creation in loc.
	// A nil loc uses the configured default timezone.
	GetFeed(ctx context.Context, loc *time.Location) (*Feed, error)
}

// Feed is the home feed, newest month first.
type Feed struct {
	Months []FeedMonth `json:"months"`
}

// FeedMonth is one calendar month of icebreaker cards.
type FeedMonth struct {
	Label string           `json:"label"`
	Month time.Time        `json:"month"`
	Cards []IcebreakerCard `json:"cards"`
}

// IcebreakerCard is an icebreaker decorated for display.
type IcebreakerCard struct {
	Icebreaker *entity.Icebreaker `json:"icebreaker"`
	Author     *entity.User       `json:"author,omitempty"`
	CreatedAgo string             `json:"created_ago"`
	Entries    []EntryCard        `json:"entries"`
}

// EntryCard is an entry decorated for display.
type EntryCard struct {
	Entry       *entity.Entry         `json:"entry"`
	Author      *entity.User          `json:"author,omitempty"`
	CreatedAgo  string                `json:"created_ago"`
	Temperature aggregate.Temperature `json:"temperature"`
}
