package repository

import (
	"os"
	"path/filepath"

	"github.com/allisson/qrbadge/internal/badge/domain"
	apperrors "github.com/allisson/qrbadge/internal/errors"
)

// FileArtifactWriter persists rendered QR artifacts as PNG files.
type FileArtifactWriter struct{}

// NewFileArtifactWriter creates a new artifact writer.
func NewFileArtifactWriter() *FileArtifactWriter {
	return &FileArtifactWriter{}
}

// Write persists the artifact under directory and returns the resolved path.
//
// The directory is created recursively if absent. The filename derives
// deterministically from the employee id (qr_code_<id>.png) and an existing
// file is overwritten without versioning. The PNG is written to a temporary
// file and renamed into place, so a partially written file is never observable
// under the final name.
func (w *FileArtifactWriter) Write(artifact domain.QRArtifact, directory string) (string, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.ErrIO, err.Error())
	}

	target := filepath.Join(directory, artifact.Filename())

	tmp, err := os.CreateTemp(directory, ".qr_code_*.tmp")
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrIO, err.Error())
	}

	_, writeErr := tmp.Write(artifact.PNG)
	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(tmp.Name())
		return "", apperrors.Wrap(apperrors.ErrIO, writeErr.Error())
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())
		return "", apperrors.Wrap(apperrors.ErrIO, err.Error())
	}

	return target, nil
}
