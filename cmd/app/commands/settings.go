package commands

import (
	"context"
	"fmt"

	"github.com/allisson/qrbadge/internal/app"
	"github.com/allisson/qrbadge/internal/badge/domain"
	"github.com/allisson/qrbadge/internal/badge/usecase"
	"github.com/allisson/qrbadge/internal/config"
)

// SettingsOverrides holds the optional flag values for the settings save
// command. Empty strings and nil booleans leave the current value untouched.
type SettingsOverrides struct {
	SavePath     string
	AutoSave     *bool
	ImageQuality string
	QRSize       string
	QRColor      string
	QRBgColor    string
	Language     string
}

// apply merges the overrides over the current settings.
func (o SettingsOverrides) apply(settings domain.AppSettings) domain.AppSettings {
	if o.SavePath != "" {
		settings.SavePath = o.SavePath
	}
	if o.AutoSave != nil {
		settings.AutoSave = *o.AutoSave
	}
	if o.ImageQuality != "" {
		settings.ImageQuality = domain.ImageQuality(o.ImageQuality)
	}
	if o.QRSize != "" {
		settings.QRSize = domain.QRSize(o.QRSize)
	}
	if o.QRColor != "" {
		settings.QRColor = o.QRColor
	}
	if o.QRBgColor != "" {
		settings.QRBgColor = o.QRBgColor
	}
	if o.Language != "" {
		settings.Language = o.Language
	}
	return settings
}

// RunSettingsShow prints the effective settings.
func RunSettingsShow(ctx context.Context, format string, ioTuple IOTuple) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	settingsUseCase, err := container.SettingsUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize settings use case: %w", err)
	}

	return runSettingsShow(ctx, settingsUseCase, format, ioTuple)
}

func runSettingsShow(
	ctx context.Context,
	settingsUseCase usecase.SettingsUseCase,
	format string,
	ioTuple IOTuple,
) error {
	settings := settingsUseCase.LoadSettings(ctx)

	if format == "json" {
		return outputJSON(settings, ioTuple.Writer)
	}

	writeSettingsText(settings, ioTuple)
	return nil
}

// RunSettingsSave merges the overrides over the current settings, validates
// the result, and persists it. Validation failure leaves the stored file
// untouched.
func RunSettingsSave(ctx context.Context, overrides SettingsOverrides, format string, ioTuple IOTuple) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	settingsUseCase, err := container.SettingsUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize settings use case: %w", err)
	}

	return runSettingsSave(ctx, settingsUseCase, overrides, format, ioTuple)
}

func runSettingsSave(
	ctx context.Context,
	settingsUseCase usecase.SettingsUseCase,
	overrides SettingsOverrides,
	format string,
	ioTuple IOTuple,
) error {
	settings := overrides.apply(settingsUseCase.LoadSettings(ctx))

	if err := settingsUseCase.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if format == "json" {
		return outputJSON(settings, ioTuple.Writer)
	}

	fmt.Fprintln(ioTuple.Writer, "Settings saved")
	writeSettingsText(settings, ioTuple)
	return nil
}

// RunSettingsReset restores the hard-coded defaults and persists them.
func RunSettingsReset(ctx context.Context, format string, ioTuple IOTuple) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	settingsUseCase, err := container.SettingsUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize settings use case: %w", err)
	}

	return runSettingsReset(ctx, settingsUseCase, format, ioTuple)
}

func runSettingsReset(
	ctx context.Context,
	settingsUseCase usecase.SettingsUseCase,
	format string,
	ioTuple IOTuple,
) error {
	settings, err := settingsUseCase.ResetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	if format == "json" {
		return outputJSON(settings, ioTuple.Writer)
	}

	fmt.Fprintln(ioTuple.Writer, "Settings reset to defaults")
	writeSettingsText(settings, ioTuple)
	return nil
}

// writeSettingsText prints the settings as aligned key/value lines.
func writeSettingsText(settings domain.AppSettings, ioTuple IOTuple) {
	fmt.Fprintf(ioTuple.Writer, "save_path:     %s\n", settings.SavePath)
	fmt.Fprintf(ioTuple.Writer, "auto_save:     %t\n", settings.AutoSave)
	fmt.Fprintf(ioTuple.Writer, "image_quality: %s\n", settings.ImageQuality)
	fmt.Fprintf(ioTuple.Writer, "qr_size:       %s (%dpx)\n", settings.QRSize, settings.QRSize.Pixels())
	fmt.Fprintf(ioTuple.Writer, "qr_color:      %s\n", settings.QRColor)
	fmt.Fprintf(ioTuple.Writer, "qr_bg_color:   %s\n", settings.QRBgColor)
	fmt.Fprintf(ioTuple.Writer, "language:      %s\n", settings.Language)
}
