package service

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/allisson/qrbadge/internal/badge/domain"
	appvalidation "github.com/allisson/qrbadge/internal/validation"
)

// QRImageEncoder implements the QREncoder interface using skip2/go-qrcode.
//
// Symbols always use the highest error-correction level: the payload is opaque
// ciphertext with no application-level redundancy, so the symbol itself must
// tolerate damage (~30%). The symbol version is auto-selected to fit the
// envelope text, which is base64 plus a separator and therefore always
// representable as byte-mode data.
type QRImageEncoder struct{}

// NewQRImageEncoder creates a new QR image encoder.
func NewQRImageEncoder() *QRImageEncoder {
	return &QRImageEncoder{}
}

// Encode builds the QR symbol for envelopeText and renders it as a PNG.
//
// Color strings are validated against the same hex pattern the settings gate
// uses; a malformed pair fails rather than silently defaulting, covering
// callers that bypass the validated-settings path. The quality label selects
// the PNG encoder's compression effort (PNG stays lossless at any label).
func (e *QRImageEncoder) Encode(
	envelopeText string,
	size int,
	fgColor, bgColor string,
	quality domain.ImageQuality,
) ([]byte, error) {
	fg, err := parseHexColor(fgColor)
	if err != nil {
		return nil, fmt.Errorf("%w: foreground %q", domain.ErrInvalidColor, fgColor)
	}
	bg, err := parseHexColor(bgColor)
	if err != nil {
		return nil, fmt.Errorf("%w: background %q", domain.ErrInvalidColor, bgColor)
	}

	qr, err := qrcode.New(envelopeText, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("failed to build qr symbol: %w", err)
	}
	qr.ForegroundColor = fg
	qr.BackgroundColor = bg

	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: compressionLevel(quality)}
	if err := encoder.Encode(&buf, qr.Image(size)); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	return buf.Bytes(), nil
}

// compressionLevel maps the quality label to PNG encoder effort.
func compressionLevel(quality domain.ImageQuality) png.CompressionLevel {
	switch {
	case quality.Level() >= 90:
		return png.BestCompression
	case quality.Level() >= 75:
		return png.DefaultCompression
	default:
		return png.BestSpeed
	}
}

// parseHexColor converts "#RGB" or "#RRGGBB" to an opaque RGBA color.
func parseHexColor(s string) (color.RGBA, error) {
	if err := appvalidation.HexColor.Validate(s); err != nil {
		return color.RGBA{}, err
	}

	hex := s[1:]
	if len(hex) == 3 {
		// Expand shorthand: #abc -> #aabbcc
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}

	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xFF,
	}, nil
}
