package usecase

import (
	"context"

	"icebreaker/internal/domain/entity"
)

// InviteUsecase defines the interface for sharing icebreakers through QR invite codes.
type InviteUsecase interface {
	GetInviteQR(ctx context.Context, icebreakerID string) ([]byte, error)
	// ResolveInvite returns the icebreaker a scanned invite code points at.
	ResolveInvite(ctx context.Context, input *ResolveInviteInput) (*entity.Icebreaker, error)
}

// ResolveInviteInput carries the text decoded from a scanned invite code.
type ResolveInviteInput struct {
	Payload string `json:"payload" validate:"required" message:"Invite code payload cannot be empty."`
}
