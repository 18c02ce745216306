package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "icebreaker/internal/domain/errors"
	"icebreaker/internal/domain/repository"
	"icebreaker/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEngagementService(t *testing.T) (usecase.EngagementUsecase, repository.ActivityRepository) {
	repo := newTestRepo(t, fixtureDataset())

	return NewEngagementService(EngagementServiceParams{
		Repo:      repo,
		Validator: newTestValidator(),
		Logger:    newDiscardLogger(),
	}), repo
}

func TestEngagementService_LikeEntry(t *testing.T) {
	service, repo := createTestEngagementService(t)
	ctx := context.Background()

	entry, err := service.LikeEntry(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, 6, entry.LikeCount)

	ib, err := repo.FindIcebreakerByID(ctx, "I1")
	require.NoError(t, err)
	assert.Equal(t, 8, ib.InteractionCount)

	_, err = service.LikeEntry(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}

func TestEngagementService_LikeThenUnlike(t *testing.T) {
	service, repo := createTestEngagementService(t)
	ctx := context.Background()

	_, err := service.LikeEntry(ctx, "E1")
	require.NoError(t, err)
	entry, err := service.UnlikeEntry(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, 5, entry.LikeCount)

	ib, err := repo.FindIcebreakerByID(ctx, "I1")
	require.NoError(t, err)
	assert.Equal(t, 7, ib.InteractionCount)

	_, err = service.UnlikeEntry(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}

func TestEngagementService_AddComment(t *testing.T) {
	service, repo := createTestEngagementService(t)
	ctx := context.Background()

	comment, err := service.AddComment(ctx, "E1", &usecase.AddCommentInput{Text: "  Great idea  "})
	require.NoError(t, err)
	assert.Equal(t, "Great idea", comment.Text)
	assert.Equal(t, "E1", comment.EntryID)
	assert.Equal(t, "user-1", comment.AuthorID)
	assert.True(t, strings.HasPrefix(comment.ID, "E1-comment-"))

	entry, err := repo.FindEntryByID(ctx, "E1")
	require.NoError(t, err)
	require.Len(t, entry.Comments, 3)
	assert.Equal(t, comment.ID, entry.Comments[0].ID)

	ib, err := repo.FindIcebreakerByID(ctx, "I1")
	require.NoError(t, err)
	assert.Equal(t, ib.Interactions(), ib.InteractionCount)
}

func TestEngagementService_AddComment_Errors(t *testing.T) {
	service, _ := createTestEngagementService(t)
	ctx := context.Background()

	_, err := service.AddComment(ctx, "E1", &usecase.AddCommentInput{Text: "   "})
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"Your comment cannot be empty."}, validationErr.Issues())

	_, err = service.AddComment(ctx, "missing", &usecase.AddCommentInput{Text: "hi"})
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}
