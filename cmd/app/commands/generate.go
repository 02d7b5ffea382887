package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/qrbadge/internal/app"
	"github.com/allisson/qrbadge/internal/badge/usecase"
	"github.com/allisson/qrbadge/internal/config"
)

// generateOutput is the JSON shape for the generate command result.
type generateOutput struct {
	EmployeeID string `json:"employee_id"`
	Envelope   string `json:"envelope"`
	Size       int    `json:"size"`
	Path       string `json:"path,omitempty"`
}

// RunGenerate validates the employee fields, runs the badge pipeline, and
// optionally persists the PNG under the configured save path.
func RunGenerate(
	ctx context.Context,
	name, id, department, notes string,
	save bool,
	format string,
	ioTuple IOTuple,
) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	badgeUseCase, err := container.BadgeUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize badge use case: %w", err)
	}
	settingsUseCase, err := container.SettingsUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize settings use case: %w", err)
	}

	return runGenerate(ctx, badgeUseCase, settingsUseCase, logger, name, id, department, notes, save, format, ioTuple)
}

// runGenerate is the container-free core of RunGenerate.
func runGenerate(
	ctx context.Context,
	badgeUseCase usecase.BadgeUseCase,
	settingsUseCase usecase.SettingsUseCase,
	logger *slog.Logger,
	name, id, department, notes string,
	save bool,
	format string,
	ioTuple IOTuple,
) error {
	record, err := badgeUseCase.ValidateInput(name, id, department, notes)
	if err != nil {
		return fmt.Errorf("invalid employee fields: %w", err)
	}

	settings := settingsUseCase.LoadSettings(ctx)

	artifact, err := badgeUseCase.GenerateArtifact(ctx, record, settings)
	if err != nil {
		return fmt.Errorf("failed to generate badge: %w", err)
	}

	output := generateOutput{
		EmployeeID: artifact.EmployeeID,
		Envelope:   artifact.Envelope,
		Size:       artifact.Size,
	}

	switch {
	case artifact.SavedPath != "":
		// Auto-save already persisted the file.
		output.Path = artifact.SavedPath
	case save:
		path, err := badgeUseCase.PersistArtifact(ctx, artifact, settings)
		if err != nil {
			return fmt.Errorf("failed to save badge: %w", err)
		}
		output.Path = path
	}

	logger.Info("badge generated",
		slog.String("employee_id", artifact.EmployeeID),
		slog.Int("size", artifact.Size),
	)

	if format == "json" {
		return outputJSON(output, ioTuple.Writer)
	}

	fmt.Fprintf(ioTuple.Writer, "Badge generated for employee %s\n", output.EmployeeID)
	fmt.Fprintf(ioTuple.Writer, "QR size: %dpx\n", output.Size)
	if output.Path != "" {
		fmt.Fprintf(ioTuple.Writer, "Saved to: %s\n", output.Path)
	}
	return nil
}
