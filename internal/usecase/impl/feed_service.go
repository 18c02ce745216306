package impl

import (
	"context"
	"log/slog"
	"time"

	"icebreaker/config"
	deliverycontext "icebreaker/internal/delivery/context"
	"icebreaker/internal/domain/aggregate"
	"icebreaker/internal/domain/entity"
	"icebreaker/internal/domain/repository"
	"icebreaker/internal/usecase"
	"icebreaker/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedService implements the FeedUsecase interface.
type feedService struct {
	repo       repository.ActivityRepository
	defaultLoc *time.Location
	now        func() time.Time
	logger     *slog.Logger
}

// FeedServiceParams holds dependencies for FeedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	Repo   repository.ActivityRepository
	Config *config.Config
	Logger *slog.Logger
}

// NewFeedService is the constructor for feedService.
// An unknown default timezone is an error so misconfiguration fails at startup.
func NewFeedService(params FeedServiceParams) (usecase.FeedUsecase, error) {
	loc := time.Local
	if params.Config.Feed != nil && params.Config.Feed.DefaultTimezone != "" {
		var err error
		loc, err = time.LoadLocation(params.Config.Feed.DefaultTimezone)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid feed default timezone %q", params.Config.Feed.DefaultTimezone)
		}
	}

	return &feedService{
		repo:       params.Repo,
		defaultLoc: loc,
		now:        time.Now,
		logger:     params.Logger,
	}, nil
}

// GetFeed builds the month buckets from one consistent snapshot.
func (srv *feedService) GetFeed(ctx context.Context, loc *time.Location) (*usecase.Feed, error) {
	if loc == nil {
		loc = srv.defaultLoc
	}

	snapshot, err := srv.repo.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read activity snapshot")
	}

	users := make(map[string]*entity.User, len(snapshot.Users))
	for _, u := range snapshot.Users {
		users[u.ID] = u
	}

	now := srv.now()
	buckets := aggregate.GroupByMonth(snapshot.Icebreakers, loc)
	feed := &usecase.Feed{Months: make([]usecase.FeedMonth, 0, len(buckets))}
	for _, bucket := range buckets {
		month := usecase.FeedMonth{
			Label: bucket.Label,
			Month: bucket.Month,
			Cards: make([]usecase.IcebreakerCard, 0, len(bucket.Icebreakers)),
		}
		for _, ib := range bucket.Icebreakers {
			month.Cards = append(month.Cards, icebreakerCard(ib, users, now))
		}
		feed.Months = append(feed.Months, month)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Feed built",
		slog.String("timezone", loc.String()),
		slog.Int("months", len(feed.Months)),
	)

	return feed, nil
}

func icebreakerCard(ib *entity.Icebreaker, users map[string]*entity.User, now time.Time) usecase.IcebreakerCard {
	card := usecase.IcebreakerCard{
		Icebreaker: ib,
		Author:     users[ib.AuthorID],
		CreatedAgo: util.FormatDistance(ib.CreatedAt, now),
		Entries:    make([]usecase.EntryCard, 0, len(ib.Entries)),
	}
	for _, e := range ib.Entries {
		card.Entries = append(card.Entries, usecase.EntryCard{
			Entry:       e,
			Author:      users[e.AuthorID],
			CreatedAgo:  util.FormatDistance(e.CreatedAt, now),
			Temperature: aggregate.TemperatureFor(e.LikeCount),
		})
	}

	return card
}
