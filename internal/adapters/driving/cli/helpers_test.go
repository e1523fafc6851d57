package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/spf13/pflag"

	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

// mockBuilder implements driving.Builder and driving.Watcher.
type mockBuilder struct {
	mu       sync.Mutex
	requests []domain.BuildRequest
	report   *domain.BuildReport
	err      error
}

func (m *mockBuilder) Build(_ context.Context, req domain.BuildRequest) (*domain.BuildReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	return m.report, m.err
}

func (m *mockBuilder) Status() domain.Progress {
	return domain.Progress{}
}

func (m *mockBuilder) Watch(ctx context.Context, req domain.BuildRequest, onBuild func(*domain.BuildReport, error)) error {
	report, err := m.Build(ctx, req)
	onBuild(report, err)
	return nil
}

// testEnv swaps the wiring for mocks and restores it when the test ends.
type testEnv struct {
	builder  *mockBuilder
	store    *memory.ConfigStore
	settings domain.Settings
	out      *bytes.Buffer
}

func setupTestEnv(t *testing.T, config domain.Settings) *testEnv {
	t.Helper()

	env := &testEnv{
		builder: &mockBuilder{report: &domain.BuildReport{Mode: domain.ModePreview}},
		store:   memory.NewConfigStoreWith(config),
		out:     new(bytes.Buffer),
	}

	origApp, origStore := newApp, openConfigStore
	newApp = func(settings domain.Settings) (*app, error) {
		env.settings = settings
		return &app{builder: env.builder, watcher: env.builder}, nil
	}
	openConfigStore = func(string) (driven.ConfigStore, error) {
		return env.store, nil
	}

	rootCmd.SetOut(env.out)
	rootCmd.SetErr(env.out)
	t.Cleanup(func() {
		newApp, openConfigStore = origApp, origStore
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	})
	return env
}

func (e *testEnv) run(args ...string) error {
	rootCmd.SetArgs(append([]string{}, args...))
	return rootCmd.Execute()
}

// resetFlags restores every flag to its default so tests stay independent.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
		for _, sub := range c.Commands() {
			sub.Flags().VisitAll(reset)
		}
	}
	rootCmd.Flags().VisitAll(reset)
}
