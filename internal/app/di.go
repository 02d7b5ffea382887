// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/qrbadge/internal/badge/repository"
	"github.com/allisson/qrbadge/internal/badge/service"
	badgeUsecase "github.com/allisson/qrbadge/internal/badge/usecase"
	"github.com/allisson/qrbadge/internal/config"
	"github.com/allisson/qrbadge/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Repositories
	keyStore       badgeUsecase.KeyStore
	settingsStore  badgeUsecase.SettingsStore
	artifactWriter badgeUsecase.ArtifactWriter

	// Use Cases
	badgeUseCase    badgeUsecase.BadgeUseCase
	settingsUseCase badgeUsecase.SettingsUseCase

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsInit         sync.Once
	keyStoreInit        sync.Once
	settingsStoreInit   sync.Once
	artifactWriterInit  sync.Once
	badgeUseCaseInit    sync.Once
	settingsUseCaseInit sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// BusinessMetrics returns the business metrics recorder. When metrics are
// disabled in configuration it returns a no-op implementation.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.metricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["metrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// KeyStore returns the encryption key store instance.
func (c *Container) KeyStore() badgeUsecase.KeyStore {
	c.keyStoreInit.Do(func() {
		c.keyStore = repository.NewFileKeyStore(c.config.KeyFile)
	})
	return c.keyStore
}

// SettingsStore returns the settings store instance.
func (c *Container) SettingsStore() badgeUsecase.SettingsStore {
	c.settingsStoreInit.Do(func() {
		c.settingsStore = repository.NewFileSettingsStore(c.config.SettingsFile)
	})
	return c.settingsStore
}

// ArtifactWriter returns the artifact writer instance.
func (c *Container) ArtifactWriter() badgeUsecase.ArtifactWriter {
	c.artifactWriterInit.Do(func() {
		c.artifactWriter = repository.NewFileArtifactWriter()
	})
	return c.artifactWriter
}

// BadgeUseCase returns the badge generation use case instance.
func (c *Container) BadgeUseCase() (badgeUsecase.BadgeUseCase, error) {
	var err error
	c.badgeUseCaseInit.Do(func() {
		c.badgeUseCase, err = c.initBadgeUseCase()
		if err != nil {
			c.initErrors["badgeUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["badgeUseCase"]; exists {
		return nil, storedErr
	}
	return c.badgeUseCase, nil
}

// SettingsUseCase returns the settings use case instance.
func (c *Container) SettingsUseCase() (badgeUsecase.SettingsUseCase, error) {
	var err error
	c.settingsUseCaseInit.Do(func() {
		c.settingsUseCase, err = c.initSettingsUseCase()
		if err != nil {
			c.initErrors["settingsUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingsUseCase"]; exists {
		return nil, storedErr
	}
	return c.settingsUseCase, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("metrics provider shutdown: %w", err)
		}
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initBusinessMetrics creates the metrics provider and business metrics when
// enabled, or a no-op recorder otherwise.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	c.metricsProvider = provider

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}

	return businessMetrics, nil
}

// initBadgeUseCase creates the badge use case with all its dependencies.
func (c *Container) initBadgeUseCase() (badgeUsecase.BadgeUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for badge use case: %w", err)
	}

	useCase := badgeUsecase.NewBadgeUseCase(
		c.KeyStore(),
		service.NewLabeledPayloadCodec(),
		service.NewAESCBCEngineFactory(),
		service.NewQRImageEncoder(),
		c.ArtifactWriter(),
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		useCase = badgeUsecase.NewBadgeUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initSettingsUseCase creates the settings use case with all its dependencies.
func (c *Container) initSettingsUseCase() (badgeUsecase.SettingsUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for settings use case: %w", err)
	}

	useCase := badgeUsecase.NewSettingsUseCase(c.SettingsStore(), c.Logger())

	if c.config.MetricsEnabled {
		useCase = badgeUsecase.NewSettingsUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}
