// Package qrcode renders icebreaker invite codes as PNG QR codes.
package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"icebreaker/config"
	"icebreaker/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// InviteType tags payloads produced by this service.
const InviteType = "icebreaker_invite"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// InvitePayload is the JSON document encoded in an invite QR code.
type InvitePayload struct {
	Type         string `json:"type"`
	IcebreakerID string `json:"icebreaker_id"`
	URL          string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance from configuration
func NewQRCodeService(cfg *config.Config) service.InviteCodeService {
	qr := cfg.QRCode
	if qr == nil {
		qr = &config.QRCodeConfig{}
	}

	return newQRCodeService(qr.Size, qr.ErrorCorrectionLevel, qr.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateInviteQR encodes an invite payload for icebreakerID as a PNG.
func (s *qrcodeService) GenerateInviteQR(icebreakerID string) ([]byte, error) {
	if strings.TrimSpace(icebreakerID) == "" {
		return nil, errors.New("icebreaker id is required")
	}

	data := InvitePayload{
		Type:         InviteType,
		IcebreakerID: icebreakerID,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/icebreakers/" + url.PathEscape(icebreakerID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal invite payload")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseInviteQR returns the icebreaker id of a scanned invite payload.
func (s *qrcodeService) ParseInviteQR(payload string) (string, error) {
	var data InvitePayload
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal invite payload")
	}

	if data.Type != InviteType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.IcebreakerID == "" {
		return "", errors.New("invite payload has no icebreaker id")
	}

	return data.IcebreakerID, nil
}
