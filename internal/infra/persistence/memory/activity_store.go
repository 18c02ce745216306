// Package memory contains the process-local implementation of the persistence layer.
//
// Entries and comments are stored exactly once, indexed by id. An icebreaker
// record only keeps the ordered ids of its entries and an entry record only
// keeps the ordered ids of its comments; nested views are materialized on read.
package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"icebreaker/internal/domain/entity"
	"icebreaker/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type icebreakerRecord struct {
	icebreaker entity.Icebreaker // Entries is always nil here.
	entryIDs   []string          // Newest first.
}

type entryRecord struct {
	entry      entity.Entry // Comments is always nil here.
	commentIDs []string     // Newest first.
}

// activityStore implements the repository.ActivityRepository interface.
type activityStore struct {
	logger *slog.Logger

	mu sync.RWMutex

	users       map[string]*entity.User
	icebreakers map[string]*icebreakerRecord
	entries     map[string]*entryRecord
	comments    map[string]*entity.Comment

	userOrder       []string
	icebreakerOrder []string // Front insertion.
	entryOrder      []string // Append order.
	commentOrder    []string // Append order.
}

// ActivityStoreParams holds dependencies for the activity store, injected by Fx.
type ActivityStoreParams struct {
	fx.In

	Logger  *slog.Logger
	Dataset *entity.Dataset
}

// NewActivityStore builds a store holding the given starting snapshot.
// Interaction counts are recomputed from the snapshot's entries while loading.
func NewActivityStore(params ActivityStoreParams) (repository.ActivityRepository, error) {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := &activityStore{
		logger:      logger,
		users:       make(map[string]*entity.User),
		icebreakers: make(map[string]*icebreakerRecord),
		entries:     make(map[string]*entryRecord),
		comments:    make(map[string]*entity.Comment),
	}

	if params.Dataset != nil {
		if err := store.load(params.Dataset); err != nil {
			return nil, err
		}
	}

	logger.Info("Activity store initialized",
		slog.Int("users", len(store.userOrder)),
		slog.Int("icebreakers", len(store.icebreakerOrder)),
		slog.Int("entries", len(store.entryOrder)),
		slog.Int("comments", len(store.commentOrder)),
	)

	return store, nil
}

func (s *activityStore) load(ds *entity.Dataset) error {
	for _, u := range ds.Users {
		if _, ok := s.users[u.ID]; ok {
			return errors.Wrapf(repository.ErrDuplicateID, "user %s", u.ID)
		}
		s.users[u.ID] = u.Clone()
		s.userOrder = append(s.userOrder, u.ID)
	}

	for _, c := range ds.Comments {
		if err := s.loadComment(c); err != nil {
			return err
		}
	}
	for _, e := range ds.Entries {
		if err := s.loadEntry(e); err != nil {
			return err
		}
	}

	for _, ib := range ds.Icebreakers {
		if _, ok := s.icebreakers[ib.ID]; ok {
			return errors.Wrapf(repository.ErrDuplicateID, "icebreaker %s", ib.ID)
		}

		rec := &icebreakerRecord{icebreaker: *ib}
		rec.icebreaker.Entries = nil
		rec.icebreaker.InteractionCount = ib.Interactions()

		for _, e := range ib.Entries {
			if _, ok := s.entries[e.ID]; !ok {
				if err := s.loadEntry(e); err != nil {
					return err
				}
			}
			s.entries[e.ID].entry.IcebreakerID = ib.ID
			rec.entryIDs = append(rec.entryIDs, e.ID)
		}

		s.icebreakers[ib.ID] = rec
		s.icebreakerOrder = append(s.icebreakerOrder, ib.ID)
	}

	return nil
}

// loadEntry indexes e and any of its comments not indexed yet. Reloading an id is a conflict.
func (s *activityStore) loadEntry(e *entity.Entry) error {
	if _, ok := s.entries[e.ID]; ok {
		return errors.Wrapf(repository.ErrDuplicateID, "entry %s", e.ID)
	}

	rec := &entryRecord{entry: *e}
	rec.entry.Comments = nil
	s.entries[e.ID] = rec
	s.entryOrder = append(s.entryOrder, e.ID)

	for _, c := range e.Comments {
		if _, ok := s.comments[c.ID]; !ok {
			if err := s.loadComment(c); err != nil {
				return err
			}
		}
		rec.commentIDs = append(rec.commentIDs, c.ID)
	}

	return nil
}

func (s *activityStore) loadComment(c *entity.Comment) error {
	if _, ok := s.comments[c.ID]; ok {
		return errors.Wrapf(repository.ErrDuplicateID, "comment %s", c.ID)
	}

	cp := *c
	s.comments[c.ID] = &cp
	s.commentOrder = append(s.commentOrder, c.ID)

	return nil
}

// FindUserByID retrieves a single user by id.
func (s *activityStore) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return u.Clone(), nil
}

// FindIcebreakerByID retrieves an icebreaker with its entries and their comments.
func (s *activityStore) FindIcebreakerByID(ctx context.Context, id string) (*entity.Icebreaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.icebreakers[id]
	if !ok {
		return nil, repository.ErrIcebreakerNotFound
	}

	return s.materializeIcebreaker(rec), nil
}

// FindEntryByID retrieves a single entry with its comments.
func (s *activityStore) FindEntryByID(ctx context.Context, id string) (*entity.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.entries[id]
	if !ok {
		return nil, repository.ErrEntryNotFound
	}

	return s.materializeEntry(rec), nil
}

// ListUsers returns users in collection order.
func (s *activityStore) ListUsers(ctx context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listUsers(), nil
}

// ListIcebreakers returns icebreakers, most recently inserted first.
func (s *activityStore) ListIcebreakers(ctx context.Context) ([]*entity.Icebreaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listIcebreakers(), nil
}

// ListEntries returns the flat entry collection in insertion order.
func (s *activityStore) ListEntries(ctx context.Context) ([]*entity.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listEntries(), nil
}

// ListComments returns the flat comment collection in insertion order.
func (s *activityStore) ListComments(ctx context.Context) ([]*entity.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listComments(), nil
}

// Snapshot returns all four collections read under one lock.
func (s *activityStore) Snapshot(ctx context.Context) (*entity.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &entity.Dataset{
		Users:       s.listUsers(),
		Icebreakers: s.listIcebreakers(),
		Entries:     s.listEntries(),
		Comments:    s.listComments(),
	}, nil
}

// CreateIcebreakerWithFirstEntry inserts icebreaker at the front with entry as its only entry.
func (s *activityStore) CreateIcebreakerWithFirstEntry(ctx context.Context, icebreaker *entity.Icebreaker, entry *entity.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.icebreakers[icebreaker.ID]; ok {
		return errors.Wrapf(repository.ErrDuplicateID, "icebreaker %s", icebreaker.ID)
	}
	if err := s.checkNewEntry(entry); err != nil {
		return err
	}

	entry.IcebreakerID = icebreaker.ID
	icebreaker.Entries = []*entity.Entry{entry}
	icebreaker.InteractionCount = entry.Interactions()

	rec := &icebreakerRecord{icebreaker: *icebreaker}
	rec.icebreaker.Entries = nil
	rec.entryIDs = []string{entry.ID}

	s.icebreakers[icebreaker.ID] = rec
	s.icebreakerOrder = slices.Insert(s.icebreakerOrder, 0, icebreaker.ID)
	s.insertEntry(entry)

	return nil
}

// AddEntryToIcebreaker prepends entry to an existing icebreaker's entries.
func (s *activityStore) AddEntryToIcebreaker(ctx context.Context, icebreakerID string, entry *entity.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.icebreakers[icebreakerID]
	if !ok {
		s.logger.Warn("Dropped entry for non-existent icebreaker",
			slog.String("icebreaker_id", icebreakerID),
			slog.String("entry_id", entry.ID),
		)

		return repository.ErrIcebreakerNotFound
	}
	if err := s.checkNewEntry(entry); err != nil {
		return err
	}

	entry.IcebreakerID = icebreakerID
	rec.entryIDs = slices.Insert(rec.entryIDs, 0, entry.ID)
	rec.icebreaker.InteractionCount += entry.Interactions()
	s.insertEntry(entry)

	return nil
}

// LikeEntry increments an entry's like count and its icebreaker's interaction count.
func (s *activityStore) LikeEntry(ctx context.Context, entryID string) (*entity.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[entryID]
	if !ok {
		return nil, repository.ErrEntryNotFound
	}

	rec.entry.LikeCount++
	s.bumpInteractions(rec.entry.IcebreakerID, 1)

	return s.materializeEntry(rec), nil
}

// UnlikeEntry decrements an entry's like count and its icebreaker's interaction count, never below zero.
func (s *activityStore) UnlikeEntry(ctx context.Context, entryID string) (*entity.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[entryID]
	if !ok {
		return nil, repository.ErrEntryNotFound
	}

	if rec.entry.LikeCount > 0 {
		rec.entry.LikeCount--
		s.bumpInteractions(rec.entry.IcebreakerID, -1)
	}

	return s.materializeEntry(rec), nil
}

// AddComment prepends comment to an entry and bumps the owning icebreaker's interaction count.
func (s *activityStore) AddComment(ctx context.Context, entryID string, comment *entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[entryID]
	if !ok {
		return repository.ErrEntryNotFound
	}
	if _, ok := s.comments[comment.ID]; ok {
		return errors.Wrapf(repository.ErrDuplicateID, "comment %s", comment.ID)
	}

	comment.EntryID = entryID
	cp := *comment
	s.comments[comment.ID] = &cp
	s.commentOrder = append(s.commentOrder, comment.ID)
	rec.commentIDs = slices.Insert(rec.commentIDs, 0, comment.ID)
	s.bumpInteractions(rec.entry.IcebreakerID, 1)

	return nil
}

// checkNewEntry rejects an entry whose id, or any of its comments' ids, is already stored.
func (s *activityStore) checkNewEntry(entry *entity.Entry) error {
	if _, ok := s.entries[entry.ID]; ok {
		return errors.Wrapf(repository.ErrDuplicateID, "entry %s", entry.ID)
	}

	seen := make(map[string]struct{}, len(entry.Comments))
	for _, c := range entry.Comments {
		if _, ok := s.comments[c.ID]; ok {
			return errors.Wrapf(repository.ErrDuplicateID, "comment %s", c.ID)
		}
		if _, ok := seen[c.ID]; ok {
			return errors.Wrapf(repository.ErrDuplicateID, "comment %s", c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	return nil
}

// insertEntry appends a checked entry and its comments to the flat collections.
func (s *activityStore) insertEntry(entry *entity.Entry) {
	rec := &entryRecord{entry: *entry}
	rec.entry.Comments = nil

	for _, c := range entry.Comments {
		c.EntryID = entry.ID
		cp := *c
		s.comments[c.ID] = &cp
		s.commentOrder = append(s.commentOrder, c.ID)
		rec.commentIDs = append(rec.commentIDs, c.ID)
	}

	s.entries[entry.ID] = rec
	s.entryOrder = append(s.entryOrder, entry.ID)
}

func (s *activityStore) bumpInteractions(icebreakerID string, delta int) {
	if ib, ok := s.icebreakers[icebreakerID]; ok {
		ib.icebreaker.InteractionCount += delta
	}
}

func (s *activityStore) materializeIcebreaker(rec *icebreakerRecord) *entity.Icebreaker {
	ib := rec.icebreaker
	ib.Entries = make([]*entity.Entry, 0, len(rec.entryIDs))
	for _, id := range rec.entryIDs {
		ib.Entries = append(ib.Entries, s.materializeEntry(s.entries[id]))
	}

	return &ib
}

func (s *activityStore) materializeEntry(rec *entryRecord) *entity.Entry {
	e := rec.entry
	e.Comments = make([]*entity.Comment, 0, len(rec.commentIDs))
	for _, id := range rec.commentIDs {
		c := *s.comments[id]
		e.Comments = append(e.Comments, &c)
	}

	return &e
}

func (s *activityStore) listUsers() []*entity.User {
	out := make([]*entity.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id].Clone())
	}

	return out
}

func (s *activityStore) listIcebreakers() []*entity.Icebreaker {
	out := make([]*entity.Icebreaker, 0, len(s.icebreakerOrder))
	for _, id := range s.icebreakerOrder {
		out = append(out, s.materializeIcebreaker(s.icebreakers[id]))
	}

	return out
}

func (s *activityStore) listEntries() []*entity.Entry {
	out := make([]*entity.Entry, 0, len(s.entryOrder))
	for _, id := range s.entryOrder {
		out = append(out, s.materializeEntry(s.entries[id]))
	}

	return out
}

func (s *activityStore) listComments() []*entity.Comment {
	out := make([]*entity.Comment, 0, len(s.commentOrder))
	for _, id := range s.commentOrder {
		c := *s.comments[id]
		out = append(out, &c)
	}

	return out
}
