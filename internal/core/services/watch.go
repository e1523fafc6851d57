package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driving"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.Watcher = (*WatchService)(nil)

// WatchService rebuilds whenever the input file changes.
type WatchService struct {
	builder driving.Builder
	watcher driven.FileWatcher
}

// NewWatchService creates a watch service.
func NewWatchService(builder driving.Builder, watcher driven.FileWatcher) *WatchService {
	return &WatchService{builder: builder, watcher: watcher}
}

// Watch builds once, then again after every change until ctx is done.
// Build failures are reported through onBuild and never stop the loop.
func (s *WatchService) Watch(ctx context.Context, req domain.BuildRequest, onBuild func(*domain.BuildReport, error)) error {
	if err := req.Validate(); err != nil {
		return err
	}

	events, err := s.watcher.Watch(ctx, req.Input)
	if err != nil {
		return err
	}

	s.build(ctx, req, onBuild)
	logger.Info("Watching %s", req.Input)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Err != nil {
				logger.Warn("Watch error: %v", ev.Err)
				continue
			}
			logger.Debug("Change detected: %s", ev.Path)
			s.build(ctx, req, onBuild)
		}
	}
}

func (s *WatchService) build(ctx context.Context, req domain.BuildRequest, onBuild func(*domain.BuildReport, error)) {
	report, err := s.builder.Build(ctx, req)
	if errors.Is(err, context.Canceled) {
		return
	}
	if onBuild != nil {
		onBuild(report, err)
	}
}
