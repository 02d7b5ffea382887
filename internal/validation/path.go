package validation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
)

// ProbeWritableDir checks that path is absolute and that the process can
// create and delete a file under it. The probe file gets a random name so an
// existing file is never clobbered, and it is removed before returning.
func ProbeWritableDir(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("path %q is not absolute", path)
	}

	probe := filepath.Join(path, fmt.Sprintf(".qrbadge-probe-%s", uuid.NewString()))
	f, err := os.OpenFile(probe, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("path %q is not writable: %w", path, err)
	}
	closeErr := f.Close()
	removeErr := os.Remove(probe)
	if closeErr != nil {
		return fmt.Errorf("path %q is not writable: %w", path, closeErr)
	}
	if removeErr != nil {
		return fmt.Errorf("path %q is not writable: %w", path, removeErr)
	}

	return nil
}

// WritableDir validates that a string is an absolute path to a directory the
// process can write to, using a create-and-delete probe file.
var WritableDir = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_writable_dir_type", "must be a string")
	}
	if err := ProbeWritableDir(s); err != nil {
		return validation.NewError("validation_writable_dir", err.Error())
	}
	return nil
})
