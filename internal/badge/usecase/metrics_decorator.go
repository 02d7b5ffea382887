package usecase

import (
	"context"
	"time"

	"github.com/allisson/qrbadge/internal/badge/domain"
	"github.com/allisson/qrbadge/internal/metrics"
)

// badgeUseCaseWithMetrics decorates BadgeUseCase with metrics instrumentation.
type badgeUseCaseWithMetrics struct {
	next    BadgeUseCase
	metrics metrics.BusinessMetrics
}

// NewBadgeUseCaseWithMetrics wraps a BadgeUseCase with metrics recording.
func NewBadgeUseCaseWithMetrics(useCase BadgeUseCase, m metrics.BusinessMetrics) BadgeUseCase {
	return &badgeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// ValidateInput records metrics for input validation operations.
func (b *badgeUseCaseWithMetrics) ValidateInput(
	name, id, department, notes string,
) (domain.EmployeeRecord, error) {
	start := time.Now()
	record, err := b.next.ValidateInput(name, id, department, notes)

	status := "success"
	if err != nil {
		status = "error"
	}

	ctx := context.Background()
	b.metrics.RecordOperation(ctx, "badge", "badge_validate", status)
	b.metrics.RecordDuration(ctx, "badge", "badge_validate", time.Since(start), status)

	return record, err
}

// GenerateArtifact records metrics for badge generation operations.
func (b *badgeUseCaseWithMetrics) GenerateArtifact(
	ctx context.Context,
	record domain.EmployeeRecord,
	settings domain.AppSettings,
) (*domain.QRArtifact, error) {
	start := time.Now()
	artifact, err := b.next.GenerateArtifact(ctx, record, settings)

	status := "success"
	if err != nil {
		status = "error"
	}

	b.metrics.RecordOperation(ctx, "badge", "badge_generate", status)
	b.metrics.RecordDuration(ctx, "badge", "badge_generate", time.Since(start), status)

	return artifact, err
}

// PersistArtifact records metrics for artifact persistence operations.
func (b *badgeUseCaseWithMetrics) PersistArtifact(
	ctx context.Context,
	artifact *domain.QRArtifact,
	settings domain.AppSettings,
) (string, error) {
	start := time.Now()
	path, err := b.next.PersistArtifact(ctx, artifact, settings)

	status := "success"
	if err != nil {
		status = "error"
	}

	b.metrics.RecordOperation(ctx, "badge", "badge_persist", status)
	b.metrics.RecordDuration(ctx, "badge", "badge_persist", time.Since(start), status)

	return path, err
}

// settingsUseCaseWithMetrics decorates SettingsUseCase with metrics instrumentation.
type settingsUseCaseWithMetrics struct {
	next    SettingsUseCase
	metrics metrics.BusinessMetrics
}

// NewSettingsUseCaseWithMetrics wraps a SettingsUseCase with metrics recording.
func NewSettingsUseCaseWithMetrics(useCase SettingsUseCase, m metrics.BusinessMetrics) SettingsUseCase {
	return &settingsUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// LoadSettings records metrics for settings load operations.
func (s *settingsUseCaseWithMetrics) LoadSettings(ctx context.Context) domain.AppSettings {
	start := time.Now()
	settings := s.next.LoadSettings(ctx)

	s.metrics.RecordOperation(ctx, "settings", "settings_load", "success")
	s.metrics.RecordDuration(ctx, "settings", "settings_load", time.Since(start), "success")

	return settings
}

// SaveSettings records metrics for settings save operations.
func (s *settingsUseCaseWithMetrics) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	start := time.Now()
	err := s.next.SaveSettings(ctx, settings)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "settings", "settings_save", status)
	s.metrics.RecordDuration(ctx, "settings", "settings_save", time.Since(start), status)

	return err
}

// ResetSettings records metrics for settings reset operations.
func (s *settingsUseCaseWithMetrics) ResetSettings(ctx context.Context) (domain.AppSettings, error) {
	start := time.Now()
	settings, err := s.next.ResetSettings(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "settings", "settings_reset", status)
	s.metrics.RecordDuration(ctx, "settings", "settings_reset", time.Since(start), status)

	return settings, err
}
