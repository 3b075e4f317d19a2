package driven

// ConfigStore persists flat, dot-separated settings keys such as
// "contentful.space_id".
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" if unset or not a string.
	GetString(key string) string

	// GetStringSlice returns a list value, or nil if unset or not a list.
	GetStringSlice(key string) []string

	// Set stores a value and persists it before returning.
	Set(key string, value any) error

	// Keys returns the set keys, sorted.
	Keys() []string

	// Load re-reads the backing storage.
	Load() error

	// Path identifies the backing storage.
	Path() string
}
