// Package services implements the driving port interfaces.
// Services contain the incremental build logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. Beyond the standard library they only
// use small utility modules (golang.org/x/sync, github.com/google/uuid).
package services
