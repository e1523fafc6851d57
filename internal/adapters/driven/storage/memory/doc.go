// Package memory provides in-memory implementations of driven port
// interfaces. They hold no files and are intended for tests and dry runs.
package memory
