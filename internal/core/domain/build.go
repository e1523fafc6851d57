package domain

import "time"

// BuildStatus is the outcome of one compile unit.
type BuildStatus string

// Build outcomes.
const (
	// BuildCacheHit means the artifact already existed.
	BuildCacheHit BuildStatus = "cache_hit"

	// BuildCompiled means the unit was compiled during this run.
	BuildCompiled BuildStatus = "compiled"

	// BuildFailed means the compiler did not produce an artifact.
	BuildFailed BuildStatus = "failed"
)

// BuildResult is the per-unit outcome. Not persisted beyond the run.
type BuildResult struct {
	// FrameIndex is the frame the unit was built from.
	FrameIndex int

	// Fingerprint is the unit's cache key.
	Fingerprint Fingerprint

	// Status is what happened.
	Status BuildStatus

	// ArtifactPath is where the rendered artifact lives (or would live).
	ArtifactPath string

	// Err is the failure reason when Status is BuildFailed.
	Err error
}

// OK reports whether an artifact is available for this unit.
func (r BuildResult) OK() bool {
	return r.Status != BuildFailed
}

// BuildReport summarises one invocation of the pipeline.
type BuildReport struct {
	// RunID identifies the invocation in logs.
	RunID string

	// Input is the source file path.
	Input string

	// Output is the user-visible output path.
	Output string

	// Mode is the assembly mode used.
	Mode OutputMode

	// Format is the precompiled preamble used.
	Format FormatID

	// FrameCount is the number of frames extracted.
	FrameCount int

	// DiffIndex is the first frame that differs from the previous run.
	DiffIndex int

	// Results holds one entry per frame, in frame order.
	Results []BuildResult

	// Artifact is the file the output is linked to, empty when none.
	Artifact string

	// ErrorSlide is true when the output shows the error slide.
	ErrorSlide bool

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Count returns how many results have the given status.
func (r *BuildReport) Count(status BuildStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Progress is a point-in-time view of the build engine's counter.
type Progress struct {
	// Running is true while a build is in progress.
	Running bool

	// Total is the number of units that needed compiling.
	Total int

	// Done is the number of units finished, successfully or not.
	Done int

	// Failed is the number of units that failed.
	Failed int
}
