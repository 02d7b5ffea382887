package repository

import (
	"encoding/json"
	"os"

	"github.com/allisson/qrbadge/internal/badge/domain"
	apperrors "github.com/allisson/qrbadge/internal/errors"
	appvalidation "github.com/allisson/qrbadge/internal/validation"
)

// FileSettingsStore persists AppSettings as a UTF-8 JSON file.
//
// Load is forgiving (missing file, bad JSON, or a stale save path all fall
// back to defaults), Save is strict (full validation before any byte is
// written). Unknown JSON keys are ignored; missing keys keep their defaults.
type FileSettingsStore struct {
	path string
}

// NewFileSettingsStore creates a settings store backed by the file at path.
func NewFileSettingsStore(path string) *FileSettingsStore {
	return &FileSettingsStore{path: path}
}

// Load merges file-persisted values over hard-coded defaults.
//
// The returned settings are always usable. A read or parse failure is
// reported in the error while the settings fall back to defaults, so callers
// can log the condition and continue. A persisted save_path that no longer
// passes the writability probe is discarded in favor of the default.
func (s *FileSettingsStore) Load() (domain.AppSettings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, apperrors.Wrap(apperrors.ErrIO, err.Error())
	}

	loaded := settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return settings, apperrors.Wrap(apperrors.ErrIO, err.Error())
	}

	if loaded.SavePath != settings.SavePath {
		if probeErr := appvalidation.ProbeWritableDir(loaded.SavePath); probeErr != nil {
			loaded.SavePath = settings.SavePath
		}
	}

	return loaded, nil
}

// Save validates the settings and writes them to the file.
//
// Validation failures return the specific violated rule and perform no write:
// the file and any in-memory copy the caller holds stay unchanged.
func (s *FileSettingsStore) Save(settings domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.write(settings)
}

// Reset restores hard-coded defaults and persists them unconditionally.
func (s *FileSettingsStore) Reset() (domain.AppSettings, error) {
	settings := domain.DefaultSettings()
	if err := s.write(settings); err != nil {
		return settings, err
	}
	return settings, nil
}

func (s *FileSettingsStore) write(settings domain.AppSettings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrIO, err.Error())
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return apperrors.Wrap(apperrors.ErrIO, err.Error())
	}
	return nil
}
