package services

import "sync"

// RunHistory remembers the frame texts of the most recent build.
// It starts empty; a single-shot invocation always diffs against nothing.
type RunHistory struct {
	mu     sync.Mutex
	frames []string
}

// NewRunHistory creates an empty history.
func NewRunHistory() *RunHistory {
	return &RunHistory{}
}

// Snapshot returns a copy of the previous run's frames.
func (h *RunHistory) Snapshot() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.frames...)
}

// Replace records frames as the most recent run.
func (h *RunHistory) Replace(frames []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames = append([]string(nil), frames...)
}

// Diff returns the length of the common prefix of current and previous.
func Diff(current, previous []string) int {
	n := min(len(current), len(previous))
	for i := 0; i < n; i++ {
		if current[i] != previous[i] {
			return i
		}
	}
	return n
}

// PreviewIndex maps a diff index onto the frame to preview. When nothing
// changed the first frame is shown.
func PreviewIndex(diff, frameCount int) int {
	if diff >= frameCount || diff < 0 {
		return 0
	}
	return diff
}
