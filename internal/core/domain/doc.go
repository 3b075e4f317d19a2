// Package domain defines the core business entities for newsroom.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Article: A single news item with its metadata and body
//   - Content: An article body, either plain text or a rich-text document
//   - ViewState: The page currently on screen and the key it needs
//   - LoadState: Progress of the one-shot article collection fetch
//   - AppSettings: Source strategy, CMS and UI configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
