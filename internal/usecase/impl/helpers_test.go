package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"icebreaker/config"
	"icebreaker/internal/domain/entity"
	"icebreaker/internal/domain/repository"
	"icebreaker/internal/infra/persistence/memory"
	"icebreaker/internal/validation"

	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Leaderboard: &config.LeaderboardConfig{Limit: 2},
		Feed:        &config.FeedConfig{DefaultTimezone: "UTC"},
	}
}

func intPtr(v int) *int {
	return &v
}

// fixtureDataset holds three users (the admin is second in collection order) and two
// icebreakers: I1 (March, one entry with 5 likes and 2 comments) and I2 (February, empty).
func fixtureDataset() *entity.Dataset {
	c1 := &entity.Comment{ID: "c1", EntryID: "E1", AuthorID: "user-1", Text: "first", CreatedAt: fixtureTime}
	c2 := &entity.Comment{ID: "c2", EntryID: "E1", AuthorID: "user-3", Text: "second", CreatedAt: fixtureTime}
	e1 := &entity.Entry{
		ID:           "E1",
		IcebreakerID: "I1",
		AuthorID:     "user-1",
		Text:         "hello",
		CreatedAt:    fixtureTime,
		LikeCount:    5,
		Comments:     []*entity.Comment{c1, c2},
	}

	return &entity.Dataset{
		Users: []*entity.User{
			{ID: "user-3", DisplayName: "User C", Role: entity.RoleEmployee, IceLevel: 0, ActivityScore: intPtr(150)},
			{ID: "user-1", DisplayName: "User A", Role: entity.RoleAdmin, IceLevel: 40, ActivityScore: intPtr(90)},
			{ID: "user-2", DisplayName: "User B", Role: entity.RoleEmployee, IceLevel: 100, ActivityScore: intPtr(120)},
		},
		Icebreakers: []*entity.Icebreaker{
			{
				ID:          "I1",
				Title:       "Weekend plans",
				Description: "What are you doing this weekend?",
				TopicType:   entity.TopicMixed,
				AuthorID:    "user-1",
				CreatedAt:   fixtureTime,
				Entries:     []*entity.Entry{e1},
			},
			{
				ID:          "I2",
				Title:       "Desk Snapshot",
				Description: "Share a photo of your workspace",
				TopicType:   entity.TopicPhoto,
				AuthorID:    "user-2",
				CreatedAt:   fixtureTime.AddDate(0, -1, 0),
				Entries:     []*entity.Entry{},
			},
		},
		Entries:  []*entity.Entry{e1},
		Comments: []*entity.Comment{c1, c2},
	}
}

func newTestRepo(t *testing.T, ds *entity.Dataset) repository.ActivityRepository {
	t.Helper()

	repo, err := memory.NewActivityStore(memory.ActivityStoreParams{Logger: newDiscardLogger(), Dataset: ds})
	require.NoError(t, err)

	return repo
}

func newTestValidator() *validation.Validator {
	return validation.New()
}
