package impl

import (
	"context"
	"encoding/json"
	"testing"

	"icebreaker/config"
	domainerrors "icebreaker/internal/domain/errors"
	"icebreaker/internal/infra/qrcode"
	"icebreaker/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestInviteService(t *testing.T) usecase.InviteUsecase {
	return NewInviteService(InviteServiceParams{
		Repo:      newTestRepo(t, fixtureDataset()),
		Codes:     qrcode.NewQRCodeService(&config.Config{}),
		Validator: newTestValidator(),
		Logger:    newDiscardLogger(),
	})
}

func TestInviteService_GetInviteQR(t *testing.T) {
	svc := createTestInviteService(t)

	png, err := svc.GetInviteQR(context.Background(), "I1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = svc.GetInviteQR(context.Background(), "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrIcebreakerNotFound))
}

func TestInviteService_ResolveInvite(t *testing.T) {
	svc := createTestInviteService(t)
	ctx := context.Background()

	payload, err := json.Marshal(qrcode.InvitePayload{Type: qrcode.InviteType, IcebreakerID: "I2"})
	require.NoError(t, err)

	ib, err := svc.ResolveInvite(ctx, &usecase.ResolveInviteInput{Payload: string(payload)})
	require.NoError(t, err)
	assert.Equal(t, "Desk Snapshot", ib.Title)

	_, err = svc.ResolveInvite(ctx, &usecase.ResolveInviteInput{})
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"Invite code payload cannot be empty."}, validationErr.Issues())

	_, err = svc.ResolveInvite(ctx, &usecase.ResolveInviteInput{Payload: "garbage"})
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"Invite code is not recognized."}, validationErr.Issues())

	gone, err := json.Marshal(qrcode.InvitePayload{Type: qrcode.InviteType, IcebreakerID: "I9"})
	require.NoError(t, err)
	_, err = svc.ResolveInvite(ctx, &usecase.ResolveInviteInput{Payload: string(gone)})
	assert.True(t, errors.Is(err, domainerrors.ErrIcebreakerNotFound))
}
