// Package file provides filesystem-backed implementations of driven ports.
//
// Adapters:
//   - ConfigStore: TOML settings file, ~/.newsroom/config.toml by default
package file
