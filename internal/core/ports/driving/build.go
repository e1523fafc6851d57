package driving

import (
	"context"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
)

// Builder runs the incremental build pipeline.
type Builder interface {
	// Build runs one invocation. The report is returned whenever the
	// pipeline got far enough to produce one, including on failure.
	Build(ctx context.Context, req domain.BuildRequest) (*domain.BuildReport, error)

	// Status returns the progress of the build currently running.
	Status() domain.Progress
}

// Watcher rebuilds a document every time it changes.
type Watcher interface {
	// Watch builds once, then again after every change, until ctx is done.
	// onBuild is called after every build with its report and error.
	Watch(ctx context.Context, req domain.BuildRequest, onBuild func(*domain.BuildReport, error)) error
}
