// Package filesystem provides the on-disk artifact cache and output linking.
//
// # Data Location
//
// By default the cache root is <user cache dir>/faster-beamer. Each input
// directory gets its own subfolder whose name is the escaped absolute path
// of that directory:
//
//	<root>/<escaped-input-dir>/<fingerprint>.tex   intermediate source
//	<root>/<escaped-input-dir>/<fingerprint>.pdf   rendered artifact
//
// # Thread Safety
//
// Writes go to a temporary file in the cache directory and are renamed
// into place, so a reader never sees a partial artifact. Concurrent writers
// of the same fingerprint produce identical bytes; the last rename wins.
package filesystem
