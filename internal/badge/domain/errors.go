// Package domain defines the core domain models for encrypted badge generation:
// employee records, ciphertext envelopes, QR artifacts, and application settings.
package domain

import (
	"fmt"

	"github.com/allisson/qrbadge/internal/errors"
)

// Badge generation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for validation and generation failures.
var (
	// ErrInvalidName indicates the employee name is missing or too short.
	ErrInvalidName = errors.Wrap(errors.ErrInvalidInput, "invalid employee name")

	// ErrInvalidID indicates the employee id is not a digits-only string.
	ErrInvalidID = errors.Wrap(errors.ErrInvalidInput, "invalid employee id")

	// ErrInvalidDepartment indicates the department is missing or too short.
	ErrInvalidDepartment = errors.Wrap(errors.ErrInvalidInput, "invalid department")

	// ErrInvalidPayloadFormat indicates canonical payload text missing the fixed labeled lines.
	ErrInvalidPayloadFormat = errors.Wrap(errors.ErrInvalidInput, "invalid payload format")

	// ErrInvalidEnvelopeFormat indicates the envelope text is not two colon-separated fields.
	ErrInvalidEnvelopeFormat = errors.Wrap(errors.ErrInvalidInput, "invalid envelope format")

	// ErrInvalidEnvelopeBase64 indicates an envelope field is not valid base64.
	ErrInvalidEnvelopeBase64 = errors.Wrap(errors.ErrInvalidInput, "invalid envelope base64")

	// ErrInvalidIVSize indicates the initialization vector is not 16 bytes.
	ErrInvalidIVSize = errors.Wrap(errors.ErrInvalidInput, "invalid initialization vector size")

	// ErrInvalidColor indicates a color is not in "#RGB" or "#RRGGBB" hex format.
	ErrInvalidColor = errors.Wrap(errors.ErrInvalidInput, "invalid hex color")

	// ErrUnwritableSavePath indicates the save path is relative or failed the write probe.
	ErrUnwritableSavePath = errors.Wrap(errors.ErrInvalidInput, "unwritable save path")

	// ErrInvalidSizeLabel indicates the qr_size label is outside the enumerated set.
	ErrInvalidSizeLabel = errors.Wrap(errors.ErrInvalidInput, "invalid qr size label")

	// ErrInvalidQualityLabel indicates the image_quality label is outside the enumerated set.
	ErrInvalidQualityLabel = errors.Wrap(errors.ErrInvalidInput, "invalid image quality label")

	// ErrInvalidLanguage indicates the language tag is blank.
	ErrInvalidLanguage = errors.Wrap(errors.ErrInvalidInput, "invalid language")

	// ErrInvalidKeySize indicates key material is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "key must be exactly 32 bytes")
)

// Pipeline stage names used in GenerationError.
const (
	StageEncrypt = "encrypt"
	StageEncode  = "encode"
	StagePersist = "persist"
)

// GenerationError reports a failure in a specific stage of the generation
// pipeline so the caller can tell encryption, encoding, and persistence
// failures apart.
type GenerationError struct {
	Stage string
	Err   error
}

// Error returns the stage-qualified error message.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed at %s stage: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError wraps err with the pipeline stage in which it occurred.
func NewGenerationError(stage string, err error) *GenerationError {
	return &GenerationError{Stage: stage, Err: err}
}
