// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FrameExtractor: Splits source text into frames (structural or textual)
//   - Compiler: Renders a standalone document or dumps a precompiled preamble
//   - ArtifactCache: Content-addressed store of rendered frames
//   - OutputLinker: Points the user-visible output at an artifact
//   - CommandRunner: Runs external binaries without a shell
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Parser: Grammar-aware syntax tree. Without it only textual extraction runs.
//   - Concatenator: Page concatenation. Without it the pdfunite mode fails.
//   - FileWatcher: Change notifications. Only needed by the watch loop.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, extractor, or CLI package
package driven
