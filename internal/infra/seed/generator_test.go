package seed

import (
	"strings"
	"testing"
	"time"

	"icebreaker/config"
	"icebreaker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)

func testConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Start = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	cfg.Now = func() time.Time { return fixedNow }

	return cfg
}

func TestGenerate_ReproducibleForFixedSeed(t *testing.T) {
	first := New(testConfig(42)).Generate()
	second := New(testConfig(42)).Generate()

	assert.Equal(t, first, second)

	other := New(testConfig(43)).Generate()
	assert.NotEqual(t, first, other)
}

func TestGenerate_Users(t *testing.T) {
	gen := New(testConfig(7))
	ds := gen.Generate()

	require.Len(t, ds.Users, 20)

	admins := 0
	for i, u := range ds.Users {
		assert.True(t, strings.HasPrefix(u.ID, "user-"))
		assert.True(t, strings.HasPrefix(u.DisplayName, "User "))
		assert.True(t, strings.HasSuffix(u.Email, "@example.com"))
		assert.True(t, strings.HasPrefix(u.AvatarURL, "https://placehold.co/100x100.png?text="))
		assert.True(t, u.Role.IsValid())
		assert.GreaterOrEqual(t, u.IceLevel, 0)
		assert.LessOrEqual(t, u.IceLevel, 100)
		require.NotNil(t, u.ActivityScore)
		assert.GreaterOrEqual(t, u.Score(), 10)
		assert.LessOrEqual(t, u.Score(), 200)

		if u.Role == entity.RoleAdmin {
			admins++
			assert.Equal(t, "user-1", u.ID)
		}
		if i > 0 {
			assert.GreaterOrEqual(t, ds.Users[i-1].Score(), u.Score(), "users are ranked by activity score")
		}
	}
	assert.Equal(t, 1, admins)
}

func TestGenerate_IcebreakersEntriesComments(t *testing.T) {
	ds := New(testConfig(99)).Generate()

	require.Len(t, ds.Icebreakers, 5)

	users := make(map[string]struct{}, len(ds.Users))
	for _, u := range ds.Users {
		users[u.ID] = struct{}{}
	}

	titles := make(map[string]struct{})
	nested := 0
	nestedComments := 0
	for i, ib := range ds.Icebreakers {
		assert.True(t, ib.TopicType.IsValid())
		assert.Contains(t, users, ib.AuthorID)
		assert.False(t, ib.CreatedAt.Before(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)))
		assert.False(t, ib.CreatedAt.After(fixedNow))
		assert.Equal(t, ib.Interactions(), ib.InteractionCount)

		assert.NotContains(t, titles, ib.Title, "prompts must not repeat while the pool has unused ones")
		titles[ib.Title] = struct{}{}

		if i > 0 {
			assert.False(t, ib.CreatedAt.After(ds.Icebreakers[i-1].CreatedAt), "icebreakers are newest first")
		}

		require.GreaterOrEqual(t, len(ib.Entries), 1)
		require.LessOrEqual(t, len(ib.Entries), 3)
		for j, e := range ib.Entries {
			nested++
			assert.Equal(t, ib.ID, e.IcebreakerID)
			assert.True(t, strings.HasPrefix(e.ID, ib.ID+"-entry-"))
			assert.Contains(t, users, e.AuthorID)
			assert.GreaterOrEqual(t, e.LikeCount, 0)
			assert.LessOrEqual(t, e.LikeCount, 50)
			assert.False(t, e.CreatedAt.Before(ib.CreatedAt))
			assert.Contains(t, e.Text, `for "`+ib.Title+`"`)

			if e.ContentURL != "" {
				assert.NotEqual(t, entity.TopicText, ib.TopicType)
				assert.Equal(t, "https://placehold.co/600x400.png", e.ContentURL)
				assert.True(t, strings.HasPrefix(e.Text, "Check out this image! "))
			}
			if j > 0 {
				assert.False(t, e.CreatedAt.After(ib.Entries[j-1].CreatedAt), "entries are newest first")
			}

			assert.LessOrEqual(t, len(e.Comments), 3)
			for _, c := range e.Comments {
				nestedComments++
				assert.Equal(t, e.ID, c.EntryID)
				assert.True(t, strings.HasPrefix(c.ID, e.ID+"-comment-"))
				assert.Contains(t, users, c.AuthorID)
				assert.False(t, c.CreatedAt.Before(e.CreatedAt))
			}
		}
	}

	assert.Len(t, ds.Entries, nested)
	assert.Len(t, ds.Comments, nestedComments)
}

func TestGenerate_ExhaustedPromptPoolAllowsRepeats(t *testing.T) {
	cfg := testConfig(5)
	cfg.Icebreakers = 4
	cfg.Prompts = []Prompt{
		{Title: "Only One", Description: "A single prompt shared by all icebreakers"},
		{Title: "Second", Description: "Another prompt in the pool"},
	}

	ds := New(cfg).Generate()
	require.Len(t, ds.Icebreakers, 4)

	titles := make(map[string]int)
	for _, ib := range ds.Icebreakers {
		titles[ib.Title]++
	}
	assert.Len(t, titles, 2)
}

func TestGenerate_StartAfterNowClampsToNow(t *testing.T) {
	cfg := testConfig(3)
	cfg.Start = fixedNow.Add(24 * time.Hour)

	ds := New(cfg).Generate()
	for _, ib := range ds.Icebreakers {
		assert.True(t, ib.CreatedAt.Equal(fixedNow))
	}
}

func TestGenerate_StartCenturiesAgo(t *testing.T) {
	cfg, err := ConfigFrom(&config.SeedConfig{Start: "1700-01-01", RandomSeed: 7})
	require.NoError(t, err)
	cfg.Now = func() time.Time { return fixedNow }

	var ds *entity.Dataset
	require.NotPanics(t, func() { ds = New(cfg).Generate() })
	require.Len(t, ds.Icebreakers, 5)

	for _, ib := range ds.Icebreakers {
		assert.False(t, ib.CreatedAt.Before(cfg.Start))
		assert.False(t, ib.CreatedAt.After(fixedNow))
		for _, e := range ib.Entries {
			assert.False(t, e.CreatedAt.Before(ib.CreatedAt))
			assert.False(t, e.CreatedAt.After(fixedNow))
		}
	}
}

func TestTimeBetween_SaturatedSpan(t *testing.T) {
	rng, _ := NewSeededRNG(1)
	start := time.Date(1600, time.January, 1, 0, 0, 0, 0, time.UTC)

	for range 100 {
		got := timeBetween(rng, start, fixedNow)
		assert.False(t, got.Before(start))
		assert.False(t, got.After(fixedNow))
	}
}

func TestGenerate_NoUsers(t *testing.T) {
	cfg := testConfig(1)
	cfg.Users = 0

	ds := New(cfg).Generate()
	assert.Empty(t, ds.Users)
	assert.Empty(t, ds.Icebreakers)
}

func TestNewSeededRNG_TimeBasedWhenZero(t *testing.T) {
	_, seed := NewSeededRNG(0)
	assert.NotZero(t, seed)

	_, fixed := NewSeededRNG(11)
	assert.Equal(t, int64(11), fixed)
}

func TestUserLabel(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{index: 0, want: "A"},
		{index: 25, want: "Z"},
		{index: 26, want: "A2"},
		{index: 53, want: "B3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, userLabel(tt.index))
		})
	}
}

func TestConfigFrom(t *testing.T) {
	t.Run("nil uses defaults", func(t *testing.T) {
		cfg, err := ConfigFrom(nil)
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.Users)
		assert.Equal(t, 5, cfg.Icebreakers)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := ConfigFrom(&config.SeedConfig{Users: 3, Icebreakers: 2, EntriesMax: 5, RandomSeed: 9, Start: "2024-02-01"})
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Users)
		assert.Equal(t, 2, cfg.Icebreakers)
		assert.Equal(t, 5, cfg.EntriesMax)
		assert.Equal(t, int64(9), cfg.Seed)
		assert.Equal(t, 2024, cfg.Start.Year())
		assert.Equal(t, time.February, cfg.Start.Month())
	})

	t.Run("invalid start", func(t *testing.T) {
		_, err := ConfigFrom(&config.SeedConfig{Start: "01/02/2024"})
		require.Error(t, err)
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := ConfigFrom(&config.SeedConfig{EntriesMin: 4, EntriesMax: 2})
		require.Error(t, err)
	})
}
