package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/qrbadge/internal/badge/domain"
	"github.com/allisson/qrbadge/internal/badge/repository"
	"github.com/allisson/qrbadge/internal/badge/service"
	"github.com/allisson/qrbadge/internal/badge/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUseCases(t *testing.T) (usecase.BadgeUseCase, usecase.SettingsUseCase, string) {
	t.Helper()
	dir := t.TempDir()

	badgeUC := usecase.NewBadgeUseCase(
		repository.NewFileKeyStore(filepath.Join(dir, "encryption_key.bin")),
		service.NewLabeledPayloadCodec(),
		service.NewAESCBCEngineFactory(),
		service.NewQRImageEncoder(),
		repository.NewFileArtifactWriter(),
		testLogger(),
	)
	settingsUC := usecase.NewSettingsUseCase(
		repository.NewFileSettingsStore(filepath.Join(dir, "settings.json")),
		testLogger(),
	)
	return badgeUC, settingsUC, dir
}

func saveTestSettings(t *testing.T, settingsUC usecase.SettingsUseCase, mutate func(*domain.AppSettings)) domain.AppSettings {
	t.Helper()
	settings := domain.DefaultSettings()
	settings.SavePath = t.TempDir()
	if mutate != nil {
		mutate(&settings)
	}
	require.NoError(t, settingsUC.SaveSettings(context.Background(), settings))
	return settings
}

func TestRunGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_TextOutput", func(t *testing.T) {
		badgeUC, settingsUC, _ := newTestUseCases(t)
		saveTestSettings(t, settingsUC, nil)

		var out bytes.Buffer
		err := runGenerate(
			ctx, badgeUC, settingsUC, testLogger(),
			"أحمد محمد", "12345", "تقنية المعلومات", "",
			false, "text", IOTuple{Writer: &out},
		)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Badge generated for employee 12345")
		assert.Contains(t, out.String(), "300px")
		assert.NotContains(t, out.String(), "Saved to")
	})

	t.Run("Success_SaveWritesFile", func(t *testing.T) {
		badgeUC, settingsUC, _ := newTestUseCases(t)
		settings := saveTestSettings(t, settingsUC, nil)

		var out bytes.Buffer
		err := runGenerate(
			ctx, badgeUC, settingsUC, testLogger(),
			"أحمد محمد", "12345", "تقنية المعلومات", "",
			true, "text", IOTuple{Writer: &out},
		)
		require.NoError(t, err)

		path := filepath.Join(settings.SavePath, "qr_code_12345.png")
		assert.Contains(t, out.String(), path)
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("Success_JSONOutputDecryptable", func(t *testing.T) {
		badgeUC, settingsUC, dir := newTestUseCases(t)
		saveTestSettings(t, settingsUC, nil)

		var out bytes.Buffer
		err := runGenerate(
			ctx, badgeUC, settingsUC, testLogger(),
			"سارة علي", "777", "المالية", "ملاحظة",
			false, "json", IOTuple{Writer: &out},
		)
		require.NoError(t, err)

		var output generateOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &output))
		assert.Equal(t, "777", output.EmployeeID)
		assert.Equal(t, 300, output.Size)

		// The printed envelope decrypts with the key the command persisted.
		key, readErr := os.ReadFile(filepath.Join(dir, "encryption_key.bin"))
		require.NoError(t, readErr)
		engine, engineErr := service.NewAESCBCEngine(key)
		require.NoError(t, engineErr)

		envelope, envErr := domain.NewCiphertextEnvelope(output.Envelope)
		require.NoError(t, envErr)
		plaintext, decErr := engine.Decrypt(envelope)
		require.NoError(t, decErr)
		assert.True(t, strings.Contains(plaintext, "سارة علي"))
	})

	t.Run("Success_AutoSavePrintsWrittenPath", func(t *testing.T) {
		badgeUC, settingsUC, _ := newTestUseCases(t)
		settings := saveTestSettings(t, settingsUC, func(s *domain.AppSettings) {
			s.AutoSave = true
		})

		var out bytes.Buffer
		err := runGenerate(
			ctx, badgeUC, settingsUC, testLogger(),
			"أحمد محمد", "12345", "تقنية المعلومات", "",
			false, "text", IOTuple{Writer: &out},
		)
		require.NoError(t, err)

		path := filepath.Join(settings.SavePath, "qr_code_12345.png")
		assert.Contains(t, out.String(), "Saved to: "+path)
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("Success_AutoSaveFailureDoesNotClaimSave", func(t *testing.T) {
		badgeUC, settingsUC, _ := newTestUseCases(t)
		settings := saveTestSettings(t, settingsUC, func(s *domain.AppSettings) {
			s.AutoSave = true
		})
		// Occupy the output filename with a directory so the write fails
		// after settings validation has already accepted the save path.
		require.NoError(t, os.Mkdir(filepath.Join(settings.SavePath, "qr_code_12345.png"), 0o755))

		var out bytes.Buffer
		err := runGenerate(
			ctx, badgeUC, settingsUC, testLogger(),
			"أحمد محمد", "12345", "تقنية المعلومات", "",
			false, "text", IOTuple{Writer: &out},
		)
		require.NoError(t, err)
		assert.NotContains(t, out.String(), "Saved to")
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		badgeUC, settingsUC, _ := newTestUseCases(t)
		saveTestSettings(t, settingsUC, nil)

		var out bytes.Buffer
		err := runGenerate(
			ctx, badgeUC, settingsUC, testLogger(),
			"أحمد محمد", "12a45", "تقنية المعلومات", "",
			false, "text", IOTuple{Writer: &out},
		)
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})
}
