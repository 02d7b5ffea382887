package commands

import (
	"fmt"
	"log/slog"

	"github.com/allisson/qrbadge/internal/app"
	"github.com/allisson/qrbadge/internal/badge/usecase"
	"github.com/allisson/qrbadge/internal/config"
)

// RunRotateKey generates a fresh 32-byte key and overwrites the key file.
// Badges encrypted with the previous key become undecryptable, so the
// operation refuses to run without the force flag.
func RunRotateKey(force bool, ioTuple IOTuple) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	return runRotateKey(container.KeyStore(), logger, force, ioTuple)
}

func runRotateKey(keyStore usecase.KeyStore, logger *slog.Logger, force bool, ioTuple IOTuple) error {
	if !force {
		return fmt.Errorf("key rotation makes previously generated badges undecryptable; re-run with --force to proceed")
	}

	if _, err := keyStore.Rotate(); err != nil {
		return fmt.Errorf("failed to rotate key: %w", err)
	}

	logger.Info("encryption key rotated")
	fmt.Fprintln(ioTuple.Writer, "Encryption key rotated")
	return nil
}
