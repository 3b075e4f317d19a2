package driving

import "github.com/custodia-labs/newsroom/internal/core/domain"

// Navigator holds the view state that decides which page is shown.
type Navigator interface {
	// Navigate replaces the current view.
	Navigate(v domain.ViewState)

	// Current returns the current view.
	Current() domain.ViewState

	// OnChange registers an observer called after every change,
	// including the initial Mount.
	OnChange(fn func(domain.ViewState))

	// Mount notifies observers of the initial view. Later calls do nothing.
	Mount()

	// Changes returns the number of changes so far, counting the mount.
	Changes() int
}
