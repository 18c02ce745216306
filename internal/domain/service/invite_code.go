package service

// InviteCodeService defines the interface for encoding and decoding icebreaker invite codes.
type InviteCodeService interface {
	// GenerateInviteQR returns a PNG QR code that points at the icebreaker.
	GenerateInviteQR(icebreakerID string) ([]byte, error)
	// ParseInviteQR decodes the scanned payload of an invite code into the icebreaker id.
	ParseInviteQR(payload string) (string, error)
}
