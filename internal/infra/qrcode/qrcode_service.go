// Package qrcode renders save-to-wallet links as QR code images.
package qrcode

import (
	"strings"

	"stampcard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// MinSize keeps codes scannable from a printed counter card.
const MinSize = 128

// ErrEmptyContent is returned when there is nothing to encode.
var ErrEmptyContent = errors.New("empty QR code content")

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service. Sizes below MinSize are raised
// to it and unknown levels fall back to "M".
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:  max(size, MinSize),
		level: ParseRecoveryLevel(errorCorrectionLevel),
	}
}

// ParseRecoveryLevel maps the L/M/Q/H error correction letters to levels.
func ParseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePNG encodes content, typically a signed save URL, as a PNG. A
// save URL too long for the configured level is retried at level L, which
// holds the most data.
func (s *qrcodeService) GeneratePNG(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	code, err := qrcode.New(content, s.level)
	if err != nil && s.level != qrcode.Low {
		code, err = qrcode.New(content, qrcode.Low)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create QR code for %d bytes", len(content))
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code PNG")
	}

	return png, nil
}
