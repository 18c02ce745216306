// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"icebreaker/internal/domain/entity"
	domainerrors "icebreaker/internal/domain/errors"
	"icebreaker/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pickCurrentUser returns the first admin in collection order, else the first user.
func pickCurrentUser(users []*entity.User) (*entity.User, bool) {
	for _, u := range users {
		if u.Role == entity.RoleAdmin {
			return u, true
		}
	}
	if len(users) > 0 {
		return users[0], true
	}

	return nil, false
}

func currentUser(ctx context.Context, repo repository.ActivityRepository) (*entity.User, error) {
	users, err := repo.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	user, ok := pickCurrentUser(users)
	if !ok {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("no users available to act as current user")
	}

	return user, nil
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// translateRepoError turns store sentinels into application errors.
func translateRepoError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrIcebreakerNotFound):
		return domainerrors.ErrIcebreakerNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrEntryNotFound):
		return domainerrors.ErrEntryNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrDuplicateID):
		return domainerrors.ErrDuplicateID.WrapMessage(message)
	default:
		return errors.Wrap(err, message)
	}
}
