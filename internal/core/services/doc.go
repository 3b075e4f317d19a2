// Package services implements the driving port interfaces.
// Services contain the core logic: the one-shot article loader, the
// view-state navigator and settings resolution. They orchestrate calls
// to driven ports (adapters).
//
// Services are pure Go with no external dependencies.
package services
