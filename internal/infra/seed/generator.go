// Package seed generates the randomized starting data the activity store is loaded with.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"strings"
	"time"

	"icebreaker/config"
	"icebreaker/internal/domain/entity"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	startLayout = "2006-01-02"

	maxIceLevel      = 100
	minActivityScore = 10
	maxActivityScore = 200
	maxEntryLikes    = 50
	imageProbability = 0.7
	mixedProbability = 0.5

	avatarURLFormat = "https://placehold.co/100x100.png?text=%s"
	imageURL        = "https://placehold.co/600x400.png"
	imageTextPrefix = "Check out this image! "
	tokenLength     = 6
)

// Config holds configuration for the generator.
type Config struct {
	Users       int
	Icebreakers int
	EntriesMin  int
	EntriesMax  int
	CommentsMin int
	CommentsMax int

	// Seed makes generation reproducible. Zero picks a time based seed.
	Seed int64

	// Start is the earliest creation instant.
	Start time.Time

	Prompts []Prompt

	// Now is the clock used as the upper bound of every creation instant.
	Now func() time.Time
}

// DefaultConfig returns a Config sized for a small demo workspace.
func DefaultConfig() Config {
	return Config{
		Users:       20,
		Icebreakers: 5,
		EntriesMin:  1,
		EntriesMax:  3,
		CommentsMin: 0,
		CommentsMax: 3,
		Start:       time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local),
		Prompts:     DefaultPrompts,
		Now:         time.Now,
	}
}

// ConfigFrom overlays the non-zero values of cfg onto DefaultConfig.
func ConfigFrom(cfg *config.SeedConfig) (Config, error) {
	out := DefaultConfig()
	if cfg == nil {
		return out, nil
	}

	if cfg.Users > 0 {
		out.Users = cfg.Users
	}
	if cfg.Icebreakers > 0 {
		out.Icebreakers = cfg.Icebreakers
	}
	if cfg.EntriesMin > 0 {
		out.EntriesMin = cfg.EntriesMin
	}
	if cfg.EntriesMax > 0 {
		out.EntriesMax = cfg.EntriesMax
	}
	if cfg.CommentsMin > 0 {
		out.CommentsMin = cfg.CommentsMin
	}
	if cfg.CommentsMax > 0 {
		out.CommentsMax = cfg.CommentsMax
	}
	out.Seed = cfg.RandomSeed

	if start := strings.TrimSpace(cfg.Start); start != "" {
		parsed, err := time.ParseInLocation(startLayout, start, time.Local)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid seed start %q", start)
		}
		out.Start = parsed
	}

	if out.EntriesMin > out.EntriesMax {
		return Config{}, errors.Errorf("seed entriesMin %d exceeds entriesMax %d", out.EntriesMin, out.EntriesMax)
	}
	if out.CommentsMin > out.CommentsMax {
		return Config{}, errors.Errorf("seed commentsMin %d exceeds commentsMax %d", out.CommentsMin, out.CommentsMax)
	}

	return out, nil
}

// Generator produces a schema-valid random dataset.
type Generator struct {
	config Config
	rng    *rand.Rand
	seed   int64

	distinctPrompts int
}

// New creates a new Generator with the given configuration.
func New(cfg Config) *Generator {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if len(cfg.Prompts) == 0 {
		cfg.Prompts = DefaultPrompts
	}

	titles := make(map[string]struct{}, len(cfg.Prompts))
	for _, p := range cfg.Prompts {
		titles[p.Title] = struct{}{}
	}

	rng, seed := NewSeededRNG(cfg.Seed)

	return &Generator{config: cfg, rng: rng, seed: seed, distinctPrompts: len(titles)}
}

// Seed returns the seed in use, which reproduces the same dataset for the same clock.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate builds users, icebreakers, entries and comments.
//
// Entries of an icebreaker are ordered newest first, icebreakers are ordered
// newest first and users by activity score, highest first. The flat entry and
// comment collections keep generation order.
func (g *Generator) Generate() *entity.Dataset {
	now := g.config.Now()
	start := g.config.Start
	if start.After(now) {
		start = now
	}

	ds := &entity.Dataset{
		Users: g.generateUsers(),
	}

	if len(ds.Users) == 0 {
		return ds
	}

	used := make(map[string]struct{}, len(g.config.Prompts))
	for i := range g.config.Icebreakers {
		prompt := g.pickPrompt(used)
		ib := &entity.Icebreaker{
			ID:          fmt.Sprintf("icebreaker-%d", i+1),
			Title:       prompt.Title,
			Description: prompt.Description,
			TopicType:   g.pickTopicType(),
			AuthorID:    g.pickUser(ds.Users).ID,
			CreatedAt:   timeBetween(g.rng, start, now),
			Entries:     []*entity.Entry{},
		}

		numEntries := intBetween(g.rng, g.config.EntriesMin, g.config.EntriesMax)
		for j := range numEntries {
			entry := g.generateEntry(ib, j+1, ds.Users, now)
			ds.Comments = append(ds.Comments, entry.Comments...)

			ib.Entries = append(ib.Entries, entry)
			ib.InteractionCount += entry.Interactions()
			ds.Entries = append(ds.Entries, entry)
		}

		slices.SortStableFunc(ib.Entries, func(a, b *entity.Entry) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
		ds.Icebreakers = append(ds.Icebreakers, ib)
	}

	slices.SortStableFunc(ds.Icebreakers, func(a, b *entity.Icebreaker) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	slices.SortStableFunc(ds.Users, func(a, b *entity.User) int {
		return b.Score() - a.Score()
	})

	return ds
}

func (g *Generator) generateUsers() []*entity.User {
	users := make([]*entity.User, 0, g.config.Users)
	for i := range g.config.Users {
		label := userLabel(i)
		score := intBetween(g.rng, minActivityScore, maxActivityScore)
		role := entity.RoleEmployee
		if i == 0 {
			role = entity.RoleAdmin
		}

		users = append(users, &entity.User{
			ID:            fmt.Sprintf("user-%d", i+1),
			DisplayName:   "User " + label,
			Email:         fmt.Sprintf("user%d@example.com", i+1),
			AvatarURL:     fmt.Sprintf(avatarURLFormat, label),
			Role:          role,
			IceLevel:      intBetween(g.rng, 0, maxIceLevel),
			ActivityScore: &score,
		})
	}

	return users
}

func (g *Generator) generateEntry(ib *entity.Icebreaker, n int, users []*entity.User, now time.Time) *entity.Entry {
	entry := &entity.Entry{
		ID:           fmt.Sprintf("%s-entry-%d", ib.ID, n),
		IcebreakerID: ib.ID,
		AuthorID:     g.pickUser(users).ID,
		Text:         fmt.Sprintf("This is entry %d for \"%s\". My thoughts are... %s.", n, ib.Title, token(g.rng, tokenLength)),
		CreatedAt:    timeBetween(g.rng, ib.CreatedAt, now),
		LikeCount:    intBetween(g.rng, 0, maxEntryLikes),
		Comments:     []*entity.Comment{},
	}

	if ib.TopicType != entity.TopicText && g.rng.Float64() < imageProbability {
		entry.ContentURL = imageURL
		entry.Text = imageTextPrefix + entry.Text
	}

	numComments := intBetween(g.rng, g.config.CommentsMin, g.config.CommentsMax)
	for k := range numComments {
		entry.Comments = append(entry.Comments, &entity.Comment{
			ID:        fmt.Sprintf("%s-comment-%d", entry.ID, k+1),
			EntryID:   entry.ID,
			AuthorID:  g.pickUser(users).ID,
			Text:      fmt.Sprintf("This is comment %d. I agree! %s.", k+1, token(g.rng, tokenLength)),
			CreatedAt: timeBetween(g.rng, entry.CreatedAt, now),
		})
	}

	return entry
}

// pickPrompt draws prompts until an unused one comes up. Once the pool is exhausted repeats are allowed.
func (g *Generator) pickPrompt(used map[string]struct{}) Prompt {
	prompts := g.config.Prompts
	prompt := prompts[g.rng.Intn(len(prompts))]
	for {
		if _, ok := used[prompt.Title]; !ok || len(used) >= g.distinctPrompts {
			break
		}
		prompt = prompts[g.rng.Intn(len(prompts))]
	}
	used[prompt.Title] = struct{}{}

	return prompt
}

func (g *Generator) pickTopicType() entity.TopicType {
	if g.rng.Float64() < mixedProbability {
		return entity.TopicMixed
	}
	if g.rng.Float64() < 0.5 {
		return entity.TopicPhoto
	}

	return entity.TopicText
}

func (g *Generator) pickUser(users []*entity.User) *entity.User {
	return users[g.rng.Intn(len(users))]
}

// userLabel returns A..Z for the first 26 users and A2, B2... after that.
func userLabel(i int) string {
	letter := string(rune('A' + i%26))
	if round := i / 26; round > 0 {
		return fmt.Sprintf("%s%d", letter, round+1)
	}

	return letter
}

// DatasetParams holds dependencies for NewDataset, injected by Fx.
type DatasetParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewDataset generates the startup dataset from configuration.
func NewDataset(params DatasetParams) (*entity.Dataset, error) {
	cfg, err := ConfigFrom(params.Config.Seed)
	if err != nil {
		return nil, err
	}

	gen := New(cfg)
	ds := gen.Generate()

	params.Logger.Info("Generated seed dataset",
		slog.Int64("seed", gen.Seed()),
		slog.Int("users", len(ds.Users)),
		slog.Int("icebreakers", len(ds.Icebreakers)),
		slog.Int("entries", len(ds.Entries)),
		slog.Int("comments", len(ds.Comments)),
	)

	return ds, nil
}
