// Package usecase implements business logic orchestration for the badge
// pipeline: validate, serialize, encrypt, encode, and optionally persist, in
// strict sequence on the calling goroutine.
package usecase

import (
	"context"

	"github.com/allisson/qrbadge/internal/badge/domain"
)

// BadgeUseCase defines the collaborator-facing badge generation operations.
type BadgeUseCase interface {
	// ValidateInput validates the raw field values and builds an EmployeeRecord.
	ValidateInput(name, id, department, notes string) (domain.EmployeeRecord, error)

	// GenerateArtifact runs serialize, encrypt, and encode for the record and
	// returns the in-memory artifact. When settings.AutoSave is set the
	// artifact is also persisted, with persistence failures logged but not
	// failing the generation; artifact.SavedPath reports the file actually
	// written, and stays empty when auto-save was off or failed.
	GenerateArtifact(
		ctx context.Context,
		record domain.EmployeeRecord,
		settings domain.AppSettings,
	) (*domain.QRArtifact, error)

	// PersistArtifact writes the artifact under the settings save path and
	// returns the resolved file path.
	PersistArtifact(
		ctx context.Context,
		artifact *domain.QRArtifact,
		settings domain.AppSettings,
	) (string, error)
}

// SettingsUseCase defines the settings lifecycle operations.
type SettingsUseCase interface {
	// LoadSettings returns persisted settings merged over defaults; IO or
	// parse failures fall back to defaults and are logged, never fatal.
	LoadSettings(ctx context.Context) domain.AppSettings

	// SaveSettings validates and persists the settings; on failure nothing
	// is written and the previous state remains observable.
	SaveSettings(ctx context.Context, settings domain.AppSettings) error

	// ResetSettings restores hard-coded defaults and persists them.
	ResetSettings(ctx context.Context) (domain.AppSettings, error)
}

// KeyStore defines the symmetric key lifecycle used by the pipeline.
type KeyStore interface {
	// GetOrCreateKey loads the key file or generates and persists a fresh key.
	GetOrCreateKey() (domain.KeyResult, error)

	// Rotate generates a fresh key and overwrites the key file.
	Rotate() (domain.KeyResult, error)
}

// SettingsStore defines persisted settings access.
type SettingsStore interface {
	// Load merges file-persisted values over defaults.
	Load() (domain.AppSettings, error)

	// Save validates then writes; validation failure performs no write.
	Save(settings domain.AppSettings) error

	// Reset restores defaults and persists them unconditionally.
	Reset() (domain.AppSettings, error)
}

// ArtifactWriter defines artifact persistence.
type ArtifactWriter interface {
	// Write persists the artifact under directory and returns the file path.
	Write(artifact domain.QRArtifact, directory string) (string, error)
}
