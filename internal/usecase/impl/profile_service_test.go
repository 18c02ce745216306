package impl

import (
	"context"
	"testing"

	"icebreaker/internal/domain/aggregate"
	"icebreaker/internal/domain/entity"
	domainerrors "icebreaker/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile(t *testing.T) {
	service := NewProfileService(ProfileServiceParams{Repo: newTestRepo(t, fixtureDataset()), Logger: newDiscardLogger()})
	ctx := context.Background()

	tests := []struct {
		userID    string
		wantStats aggregate.UserStats
		wantState string
	}{
		{userID: "user-1", wantStats: aggregate.UserStats{Entries: 1, Comments: 1}, wantState: aggregate.IceStatusMelting},
		{userID: "user-3", wantStats: aggregate.UserStats{Entries: 0, Comments: 1}, wantState: aggregate.IceStatusMelted},
		{userID: "user-2", wantStats: aggregate.UserStats{}, wantState: aggregate.IceStatusFrozen},
	}

	for _, tt := range tests {
		t.Run(tt.userID, func(t *testing.T) {
			profile, err := service.GetProfile(ctx, tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, profile.User.ID)
			assert.Equal(t, tt.wantStats, profile.Stats)
			assert.Equal(t, tt.wantState, profile.IceGauge.Status)
		})
	}

	_, err := service.GetProfile(ctx, "nobody")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_GetProfile_RecentEntries(t *testing.T) {
	ds := fixtureDataset()
	image := &entity.Entry{ID: "E2", IcebreakerID: "I1", AuthorID: "user-1", ContentURL: "data:image/png;base64,AAAA", Comments: []*entity.Comment{}}
	ds.Icebreakers[0].Entries = append(ds.Icebreakers[0].Entries, image)
	ds.Entries = append(ds.Entries, image)

	service := NewProfileService(ProfileServiceParams{Repo: newTestRepo(t, ds), Logger: newDiscardLogger()})

	profile, err := service.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []aggregate.RecentEntry{
		{EntryID: "E1", IcebreakerID: "I1", Summary: "hello"},
		{EntryID: "E2", IcebreakerID: "I1", Summary: aggregate.ImageEntrySummary},
	}, profile.RecentEntries)

	profile, err = service.GetProfile(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, profile.RecentEntries)
}

func TestProfileService_CurrentUser(t *testing.T) {
	service := NewProfileService(ProfileServiceParams{Repo: newTestRepo(t, fixtureDataset()), Logger: newDiscardLogger()})
	ctx := context.Background()

	user, err := service.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID, "first admin wins over collection order")

	profile, err := service.GetCurrentProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.User.ID)
	assert.Equal(t, 60, profile.IceGauge.MeltedPercent)
}

func TestPickCurrentUser_NoAdmin(t *testing.T) {
	ds := fixtureDataset()
	for _, u := range ds.Users {
		u.Role = "employee"
	}

	user, ok := pickCurrentUser(ds.Users)
	require.True(t, ok)
	assert.Equal(t, "user-3", user.ID)

	_, ok = pickCurrentUser(nil)
	assert.False(t, ok)
}
