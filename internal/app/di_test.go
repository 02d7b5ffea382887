package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/qrbadge/internal/config"
	"github.com/allisson/qrbadge/internal/metrics"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		KeyFile:          filepath.Join(dir, "encryption_key.bin"),
		SettingsFile:     filepath.Join(dir, "settings.json"),
		LogLevel:         "info",
		MetricsEnabled:   false,
		MetricsNamespace: "qrbadge",
	}
}

func TestNewContainer(t *testing.T) {
	cfg := testConfig(t)
	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Equal(t, cfg, container.Config())
}

func TestContainer_Logger(t *testing.T) {
	container := NewContainer(testConfig(t))

	logger := container.Logger()
	require.NotNil(t, logger)

	// Same instance on subsequent calls.
	assert.Same(t, logger, container.Logger())
}

func TestContainer_BusinessMetrics(t *testing.T) {
	t.Run("Disabled_ReturnsNoOp", func(t *testing.T) {
		container := NewContainer(testConfig(t))

		bm, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.IsType(t, &metrics.NoOpBusinessMetrics{}, bm)
	})

	t.Run("Enabled_ReturnsRealRecorder", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.MetricsEnabled = true
		container := NewContainer(cfg)

		bm, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, bm)
		assert.NotSame(t, metrics.NewNoOpBusinessMetrics(), bm)

		assert.NoError(t, container.Shutdown(context.Background()))
	})
}

func TestContainer_UseCases(t *testing.T) {
	container := NewContainer(testConfig(t))

	badgeUC, err := container.BadgeUseCase()
	require.NoError(t, err)
	require.NotNil(t, badgeUC)

	settingsUC, err := container.SettingsUseCase()
	require.NoError(t, err)
	require.NotNil(t, settingsUC)

	// Lazy singletons: repeated access returns the same instances.
	badgeUC2, err := container.BadgeUseCase()
	require.NoError(t, err)
	assert.Same(t, badgeUC, badgeUC2)
}

func TestContainer_Pipeline(t *testing.T) {
	cfg := testConfig(t)
	container := NewContainer(cfg)

	badgeUC, err := container.BadgeUseCase()
	require.NoError(t, err)
	settingsUC, err := container.SettingsUseCase()
	require.NoError(t, err)

	ctx := context.Background()
	settings := settingsUC.LoadSettings(ctx)
	settings.SavePath = t.TempDir()

	record, err := badgeUC.ValidateInput("أحمد محمد", "12345", "تقنية المعلومات", "")
	require.NoError(t, err)

	artifact, err := badgeUC.GenerateArtifact(ctx, record, settings)
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.PNG)

	path, err := badgeUC.PersistArtifact(ctx, artifact, settings)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(settings.SavePath, "qr_code_12345.png"), path)
}

func TestContainer_Shutdown(t *testing.T) {
	container := NewContainer(testConfig(t))
	assert.NoError(t, container.Shutdown(context.Background()))
}
