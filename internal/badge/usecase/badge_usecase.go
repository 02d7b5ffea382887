package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/allisson/qrbadge/internal/badge/domain"
	"github.com/allisson/qrbadge/internal/badge/service"
)

// badgeUseCase implements the BadgeUseCase interface.
type badgeUseCase struct {
	keyStore      KeyStore
	codec         service.PayloadCodec
	engineFactory service.EngineFactory
	encoder       service.QREncoder
	writer        ArtifactWriter
	logger        *slog.Logger
}

// NewBadgeUseCase creates the badge generation use case.
func NewBadgeUseCase(
	keyStore KeyStore,
	codec service.PayloadCodec,
	engineFactory service.EngineFactory,
	encoder service.QREncoder,
	writer ArtifactWriter,
	logger *slog.Logger,
) BadgeUseCase {
	return &badgeUseCase{
		keyStore:      keyStore,
		codec:         codec,
		engineFactory: engineFactory,
		encoder:       encoder,
		writer:        writer,
		logger:        logger,
	}
}

// ValidateInput validates the raw field values and builds an EmployeeRecord.
func (b *badgeUseCase) ValidateInput(name, id, department, notes string) (domain.EmployeeRecord, error) {
	return domain.NewEmployeeRecord(name, id, department, notes)
}

// GenerateArtifact runs the pipeline strictly in sequence: serialize the
// record, encrypt the canonical payload, and encode the envelope into a QR
// PNG at the configured size and colors. Failures carry the stage they
// occurred in.
func (b *badgeUseCase) GenerateArtifact(
	ctx context.Context,
	record domain.EmployeeRecord,
	settings domain.AppSettings,
) (*domain.QRArtifact, error) {
	keyResult, err := b.keyStore.GetOrCreateKey()
	if err != nil {
		return nil, domain.NewGenerationError(domain.StageEncrypt, err)
	}
	if keyResult.PersistErr != nil {
		// Accepted risk: the session keeps an in-memory key that a future
		// run cannot reload, orphaning this artifact's decryptability.
		b.logger.Warn(
			"key file could not be persisted, continuing with in-memory key",
			slog.Any("error", keyResult.PersistErr),
		)
	}

	payload := b.codec.Serialize(record)

	engine, err := b.engineFactory.CreateEngine(keyResult.Key)
	if err != nil {
		return nil, domain.NewGenerationError(domain.StageEncrypt, err)
	}
	envelope, err := engine.Encrypt(payload)
	if err != nil {
		return nil, domain.NewGenerationError(domain.StageEncrypt, err)
	}

	envelopeText := envelope.String()
	png, err := b.encoder.Encode(
		envelopeText,
		settings.QRSize.Pixels(),
		settings.QRColor,
		settings.QRBgColor,
		settings.ImageQuality,
	)
	if err != nil {
		return nil, domain.NewGenerationError(domain.StageEncode, err)
	}

	artifact := &domain.QRArtifact{
		EmployeeID: record.ID,
		Envelope:   envelopeText,
		PNG:        png,
		Size:       settings.QRSize.Pixels(),
		Foreground: settings.QRColor,
		Background: settings.QRBgColor,
		CreatedAt:  time.Now().UTC(),
	}

	if settings.AutoSave {
		if path, err := b.PersistArtifact(ctx, artifact, settings); err != nil {
			b.logger.Warn("auto-save failed", slog.Any("error", err))
		} else {
			artifact.SavedPath = path
			b.logger.Info("artifact auto-saved", slog.String("path", path))
		}
	}

	return artifact, nil
}

// PersistArtifact writes the artifact under the settings save path.
func (b *badgeUseCase) PersistArtifact(
	ctx context.Context,
	artifact *domain.QRArtifact,
	settings domain.AppSettings,
) (string, error) {
	path, err := b.writer.Write(*artifact, settings.SavePath)
	if err != nil {
		return "", domain.NewGenerationError(domain.StagePersist, err)
	}
	return path, nil
}

// settingsUseCase implements the SettingsUseCase interface.
type settingsUseCase struct {
	store  SettingsStore
	logger *slog.Logger
}

// NewSettingsUseCase creates the settings lifecycle use case.
func NewSettingsUseCase(store SettingsStore, logger *slog.Logger) SettingsUseCase {
	return &settingsUseCase{
		store:  store,
		logger: logger,
	}
}

// LoadSettings returns persisted settings merged over defaults. A read or
// parse failure is logged and the defaults are returned; it never fails.
func (s *settingsUseCase) LoadSettings(ctx context.Context) domain.AppSettings {
	settings, err := s.store.Load()
	if err != nil {
		s.logger.Warn("failed to load settings, using defaults", slog.Any("error", err))
	}
	return settings
}

// SaveSettings validates and persists the settings.
func (s *settingsUseCase) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	return s.store.Save(settings)
}

// ResetSettings restores hard-coded defaults and persists them.
func (s *settingsUseCase) ResetSettings(ctx context.Context) (domain.AppSettings, error) {
	return s.store.Reset()
}
