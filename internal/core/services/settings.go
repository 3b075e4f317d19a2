package services

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driven"
	"github.com/custodia-labs/newsroom/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keySourceStrategy   = "source.strategy"
	keySourceDataset    = "source.dataset_path"
	keyContentfulSpace  = "contentful.space_id"
	keyContentfulEnv    = "contentful.environment"
	keyContentfulToken  = "contentful.access_token"
	keyContentfulType   = "contentful.content_type"
	keyContentfulHost   = "contentful.host"
	keyContentfulLocale = "contentful.locale"
	keyUISiteName       = "ui.site_name"
	keyUICategories     = "ui.categories"
)

// Environment variables that override the config file.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvSource          = "NEWSROOM_SOURCE"
	EnvDataset         = "NEWSROOM_DATASET"
	EnvContentfulSpace = "CONTENTFUL_SPACE_ID"
	EnvContentfulToken = "CONTENTFUL_ACCESS_TOKEN"
	EnvContentfulEnv   = "CONTENTFUL_ENVIRONMENT"
	EnvContentfulType  = "CONTENTFUL_CONTENT_TYPE"
)

var envOverrides = map[string]string{
	keySourceStrategy:  EnvSource,
	keySourceDataset:   EnvDataset,
	keyContentfulSpace: EnvContentfulSpace,
	keyContentfulToken: EnvContentfulToken,
	keyContentfulEnv:   EnvContentfulEnv,
	keyContentfulType:  EnvContentfulType,
}

// SettingsService resolves application settings from the config store,
// the environment and built-in defaults, in that order of precedence
// (environment first).
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// WithEnv replaces the environment lookup (for testing).
func (s *SettingsService) WithEnv(lookup func(string) (string, bool)) *SettingsService {
	s.lookupEnv = lookup
	return s
}

// Get returns the effective settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Source: domain.SourceSettings{
			Strategy:    domain.SourceStrategy(s.getString(keySourceStrategy, defaults.Source.Strategy.String())),
			DatasetPath: s.getString(keySourceDataset, defaults.Source.DatasetPath),
		},
		Contentful: domain.ContentfulSettings{
			SpaceID:     s.getString(keyContentfulSpace, ""),
			Environment: s.getString(keyContentfulEnv, defaults.Contentful.Environment),
			AccessToken: s.getString(keyContentfulToken, ""),
			ContentType: s.getString(keyContentfulType, defaults.Contentful.ContentType),
			Host:        s.getString(keyContentfulHost, defaults.Contentful.Host),
			Locale:      s.getString(keyContentfulLocale, ""),
		},
		UI: domain.UISettings{
			SiteName:   s.getString(keyUISiteName, defaults.UI.SiteName),
			Categories: s.configStore.GetStringSlice(keyUICategories),
		},
	}

	return settings, nil
}

// Set stores a single key. Comma-separated values are split for list keys.
func (s *SettingsService) Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if key == keySourceStrategy && !domain.SourceStrategy(value).IsValid() {
		return fmt.Errorf("%w: source strategy %q", domain.ErrUnsupportedType, value)
	}

	var stored any = value
	if key == keyUICategories {
		stored = splitList(value)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the keys the settings service understands, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(knownKeys))
	copy(keys, knownKeys)
	sort.Strings(keys)
	return keys
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

var knownKeys = []string{
	keySourceStrategy,
	keySourceDataset,
	keyContentfulSpace,
	keyContentfulEnv,
	keyContentfulToken,
	keyContentfulType,
	keyContentfulHost,
	keyContentfulLocale,
	keyUISiteName,
	keyUICategories,
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (s *SettingsService) getString(key, fallback string) string {
	if envName, ok := envOverrides[key]; ok && s.lookupEnv != nil {
		if v, ok := s.lookupEnv(envName); ok && v != "" {
			return v
		}
	}
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
