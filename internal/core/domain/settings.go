package domain

import (
	"fmt"
	"strings"
)

const unknownDescription = "Unknown"

// SourceStrategy selects where the article collection comes from.
type SourceStrategy string

// Available source strategies.
const (
	// SourceStatic serves a fixed dataset loaded synchronously at startup.
	SourceStatic SourceStrategy = "static"

	// SourceContentful fetches the collection from the Contentful Delivery API.
	SourceContentful SourceStrategy = "contentful"
)

// IsValid returns true if the strategy is recognised.
func (s SourceStrategy) IsValid() bool {
	switch s {
	case SourceStatic, SourceContentful:
		return true
	default:
		return false
	}
}

// IsRemote returns true if the strategy loads asynchronously over the network.
func (s SourceStrategy) IsRemote() bool {
	return s == SourceContentful
}

// String returns the string representation.
func (s SourceStrategy) String() string {
	return string(s)
}

// Description returns a human-readable description of the strategy.
func (s SourceStrategy) Description() string {
	switch s {
	case SourceStatic:
		return "Static dataset (bundled or local file)"
	case SourceContentful:
		return "Contentful Delivery API"
	default:
		return unknownDescription
	}
}

// SourceSettings holds data source configuration.
type SourceSettings struct {
	// Strategy is the data source strategy.
	Strategy SourceStrategy

	// DatasetPath optionally points the static strategy at a JSON file.
	// Empty means the bundled dataset.
	DatasetPath string
}

// ContentfulSettings holds Contentful Delivery API configuration.
type ContentfulSettings struct {
	// SpaceID is the Contentful space.
	SpaceID string

	// Environment is the space environment.
	Environment string

	// AccessToken is the Content Delivery API token.
	AccessToken string

	// ContentType is the content type ID of article entries.
	ContentType string

	// Host is the API host.
	Host string

	// Locale requests a specific locale. Empty means the space default.
	Locale string
}

// IsConfigured returns true if the credentials needed to fetch are present.
func (c ContentfulSettings) IsConfigured() bool {
	return c.SpaceID != "" && c.AccessToken != ""
}

// UISettings holds presentation configuration.
type UISettings struct {
	// SiteName is shown in the header.
	SiteName string

	// Categories pins the order of header shortcuts.
	// Categories present in the collection but not listed follow in order of appearance.
	Categories []string
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Source     SourceSettings
	Contentful ContentfulSettings
	UI         UISettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Source: SourceSettings{
			Strategy: SourceStatic,
		},
		Contentful: ContentfulSettings{
			Environment: "master",
			ContentType: "article",
			Host:        "cdn.contentful.com",
		},
		UI: UISettings{
			SiteName: "The Daily Newsroom",
		},
	}
}

// Validate checks that the settings can drive the selected strategy.
func (s *AppSettings) Validate() error {
	if !s.Source.Strategy.IsValid() {
		return fmt.Errorf("%w: source strategy %q", ErrUnsupportedType, s.Source.Strategy)
	}
	if s.Source.Strategy == SourceContentful && !s.Contentful.IsConfigured() {
		var missing []string
		if s.Contentful.SpaceID == "" {
			missing = append(missing, "space_id")
		}
		if s.Contentful.AccessToken == "" {
			missing = append(missing, "access_token")
		}
		return fmt.Errorf("%w: contentful requires %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
