package services

import (
	"sync"

	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driving"
)

// Ensure Navigator implements the interface.
var _ driving.Navigator = (*Navigator)(nil)

// Navigator holds the single live ViewState and is its only mutator.
// It is owned by the composition root and passed to whatever needs it.
//
// Observers registered with OnChange run synchronously, in registration
// order, once per replacement and once on Mount.
type Navigator struct {
	mu        sync.Mutex
	current   domain.ViewState
	changes   int
	mounted   bool
	observers []func(domain.ViewState)
}

// NewNavigator creates a navigator holding the given view.
// A nil view starts at home.
func NewNavigator(initial domain.ViewState) *Navigator {
	if initial == nil {
		initial = domain.DefaultView()
	}
	return &Navigator{current: initial}
}

// OnChange registers an observer of view changes.
func (n *Navigator) OnChange(fn func(domain.ViewState)) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers = append(n.observers, fn)
}

// Mount notifies observers of the initial view. Only the first call has effect.
func (n *Navigator) Mount() {
	n.mu.Lock()
	if n.mounted {
		n.mu.Unlock()
		return
	}
	n.mounted = true
	n.changes++
	v, observers := n.current, n.snapshotObservers()
	n.mu.Unlock()

	notify(observers, v)
}

// Navigate replaces the held view wholesale. The payload is not checked
// against the tag; a nil view is treated as home.
func (n *Navigator) Navigate(v domain.ViewState) {
	if v == nil {
		v = domain.HomeView{}
	}

	n.mu.Lock()
	n.current = v
	n.changes++
	observers := n.snapshotObservers()
	n.mu.Unlock()

	notify(observers, v)
}

// Current returns the live view.
func (n *Navigator) Current() domain.ViewState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Changes returns how many times the view has been set, counting the mount.
func (n *Navigator) Changes() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.changes
}

func (n *Navigator) snapshotObservers() []func(domain.ViewState) {
	observers := make([]func(domain.ViewState), len(n.observers))
	copy(observers, n.observers)
	return observers
}

func notify(observers []func(domain.ViewState), v domain.ViewState) {
	for _, fn := range observers {
		fn(v)
	}
}
