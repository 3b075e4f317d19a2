package driving

import "github.com/custodia-labs/newsroom/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: file values over defaults, with
	// environment overrides applied.
	Get() (*domain.AppSettings, error)

	// Set stores a single configuration key.
	Set(key, value string) error

	// Keys returns the keys the settings service understands.
	Keys() []string

	// Path returns the configuration file path.
	Path() string
}
