// Package extractors provides implementations of the FrameExtractor
// interface. The set is closed:
//
//   - structural: walks a syntax tree from a grammar-aware parser
//   - textual: scans the raw text with a multiline regular expression
//
// The frame service tries structural extraction first when it is enabled
// and falls back to textual extraction when that yields nothing.
package extractors
