// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"icebreaker/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("user not found")

	// ErrIcebreakerNotFound is returned when no icebreaker has the requested id.
	ErrIcebreakerNotFound = errors.New("icebreaker not found")

	// ErrEntryNotFound is returned when no entry has the requested id.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrDuplicateID is returned when an inserted record reuses an existing id.
	ErrDuplicateID = errors.New("duplicate id")
)

// ActivityRepository owns users, icebreakers, entries and comments and keeps
// every icebreaker's interaction count consistent with its entries.
//
// Returned records are copies; mutating them does not affect the store.
type ActivityRepository interface {
	// FindUserByID retrieves a single user by id.
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// FindIcebreakerByID retrieves an icebreaker with its entries and their comments.
	FindIcebreakerByID(ctx context.Context, id string) (*entity.Icebreaker, error)

	// FindEntryByID retrieves a single entry with its comments.
	FindEntryByID(ctx context.Context, id string) (*entity.Entry, error)

	// ListUsers returns users in collection order.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// ListIcebreakers returns icebreakers in collection order, most recently inserted first.
	ListIcebreakers(ctx context.Context) ([]*entity.Icebreaker, error)

	// ListEntries returns the flat entry collection in insertion order.
	ListEntries(ctx context.Context) ([]*entity.Entry, error)

	// ListComments returns the flat comment collection in insertion order.
	ListComments(ctx context.Context) ([]*entity.Comment, error)

	// Snapshot returns all four collections read under one consistent view.
	Snapshot(ctx context.Context) (*entity.Dataset, error)

	// CreateIcebreakerWithFirstEntry inserts icebreaker at the front of the collection
	// with entry as its only entry. entry.IcebreakerID is overwritten with icebreaker.ID.
	// The interaction count is reset to the entry's likes plus comments.
	CreateIcebreakerWithFirstEntry(ctx context.Context, icebreaker *entity.Icebreaker, entry *entity.Entry) error

	// AddEntryToIcebreaker prepends entry to an existing icebreaker. When the icebreaker
	// does not exist nothing is stored and ErrIcebreakerNotFound is returned.
	AddEntryToIcebreaker(ctx context.Context, icebreakerID string, entry *entity.Entry) error

	// LikeEntry increments the entry's like count and returns the updated entry.
	LikeEntry(ctx context.Context, entryID string) (*entity.Entry, error)

	// UnlikeEntry takes one like back. An entry without likes is returned unchanged.
	UnlikeEntry(ctx context.Context, entryID string) (*entity.Entry, error)

	// AddComment prepends comment to an existing entry. comment.EntryID is overwritten with entryID.
	AddComment(ctx context.Context, entryID string, comment *entity.Comment) error
}
