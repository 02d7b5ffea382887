package domain

import (
	"fmt"
	"os"
	"path/filepath"

	appvalidation "github.com/allisson/qrbadge/internal/validation"
)

// QRSize is the enumerated pixel size label for generated QR images.
type QRSize string

// Enumerated QR size labels.
const (
	QRSizeSmall  QRSize = "small"
	QRSizeMedium QRSize = "medium"
	QRSizeLarge  QRSize = "large"
	QRSizeXLarge QRSize = "xlarge"
)

// qrSizePixels is the exhaustive label-to-pixels mapping.
var qrSizePixels = map[QRSize]int{
	QRSizeSmall:  200,
	QRSizeMedium: 300,
	QRSizeLarge:  400,
	QRSizeXLarge: 500,
}

// Pixels returns the pixel dimensions for the size label. Unknown labels fall
// back to the medium size; this permissive load-time behavior is deliberate
// policy, while Save rejects unknown labels up front.
func (s QRSize) Pixels() int {
	if px, ok := qrSizePixels[s]; ok {
		return px
	}
	return qrSizePixels[QRSizeMedium]
}

// Valid reports whether the label is part of the enumerated set.
func (s QRSize) Valid() bool {
	_, ok := qrSizePixels[s]
	return ok
}

// ImageQuality is the enumerated PNG encoding quality label.
type ImageQuality string

// Enumerated image quality labels.
const (
	ImageQualityLow     ImageQuality = "low"
	ImageQualityMedium  ImageQuality = "medium"
	ImageQualityHigh    ImageQuality = "high"
	ImageQualityHighest ImageQuality = "highest"
)

// imageQualityLevels maps labels to an abstract 0-100 quality value. PNG is
// lossless, so the value only drives encoder effort, never fidelity.
var imageQualityLevels = map[ImageQuality]int{
	ImageQualityLow:     50,
	ImageQualityMedium:  75,
	ImageQualityHigh:    90,
	ImageQualityHighest: 100,
}

// Level returns the numeric quality for the label. Unknown labels fall back
// to high, mirroring the QRSize fallback policy.
func (q ImageQuality) Level() int {
	if lvl, ok := imageQualityLevels[q]; ok {
		return lvl
	}
	return imageQualityLevels[ImageQualityHigh]
}

// Valid reports whether the label is part of the enumerated set.
func (q ImageQuality) Valid() bool {
	_, ok := imageQualityLevels[q]
	return ok
}

// AppSettings holds the persisted application configuration.
//
// The JSON field names are the settings-file surface; unknown keys in the file
// are ignored and missing keys fall back to defaults.
type AppSettings struct {
	// SavePath is the absolute directory artifacts are written to.
	SavePath string `json:"save_path"`
	// AutoSave persists each generated artifact without an explicit save call.
	AutoSave bool `json:"auto_save"`
	// ImageQuality selects the PNG encoder effort.
	ImageQuality ImageQuality `json:"image_quality"`
	// QRSize selects the output pixel dimensions.
	QRSize QRSize `json:"qr_size"`
	// QRColor is the foreground (module) color as a hex string.
	QRColor string `json:"qr_color"`
	// QRBgColor is the background color as a hex string.
	QRBgColor string `json:"qr_bg_color"`
	// Language is the UI locale tag (e.g., "ar", "en").
	Language string `json:"language"`
}

// DefaultSettings returns the hard-coded defaults: artifacts under the user's
// QR-pass directory, medium size, high quality, black on white, Arabic locale.
func DefaultSettings() AppSettings {
	base, err := os.UserHomeDir()
	if err != nil {
		base = os.TempDir()
	}

	return AppSettings{
		SavePath:     filepath.Join(base, "QR-pass"),
		AutoSave:     false,
		ImageQuality: ImageQualityHigh,
		QRSize:       QRSizeMedium,
		QRColor:      "#000000",
		QRBgColor:    "#FFFFFF",
		Language:     "ar",
	}
}

// Validate checks every settings field and names the first violated rule.
// It is the pre-write gate: a settings object that fails here must never be
// persisted or made observable.
func (s AppSettings) Validate() error {
	if err := appvalidation.ProbeWritableDir(s.SavePath); err != nil {
		return fmt.Errorf("%w: %v", ErrUnwritableSavePath, err)
	}
	if err := appvalidation.HexColor.Validate(s.QRColor); err != nil {
		return fmt.Errorf("%w: qr_color %q", ErrInvalidColor, s.QRColor)
	}
	if err := appvalidation.HexColor.Validate(s.QRBgColor); err != nil {
		return fmt.Errorf("%w: qr_bg_color %q", ErrInvalidColor, s.QRBgColor)
	}
	if !s.QRSize.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSizeLabel, s.QRSize)
	}
	if !s.ImageQuality.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidQualityLabel, s.ImageQuality)
	}
	if err := appvalidation.NotBlank.Validate(s.Language); err != nil {
		return ErrInvalidLanguage
	}
	return nil
}
