// Package domain defines the core entities of the incremental slide builder.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: Source text split into a preamble and ordered frames
//   - Frame: One slide's markup, byte-exact as it appears in the source
//   - CompileUnit: The standalone document built for a single frame
//   - Fingerprint: Content hash used as the cache key
//   - BuildResult: Per-unit outcome of one build
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
