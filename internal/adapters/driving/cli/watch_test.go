package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch <input.tex>", watchCmd.Use)
}

func TestWatchCmd_UsesBuildFlags(t *testing.T) {
	env := setupTestEnv(t, domain.DefaultSettings())

	err := env.run("watch", "talk.tex", "--mode", "pdfunite", "-o", "live.pdf")

	require.NoError(t, err)
	require.Len(t, env.builder.requests, 1)
	assert.Equal(t, domain.ModeConcat, env.builder.requests[0].Mode)
	assert.Equal(t, "live.pdf", env.builder.requests[0].Output)
	assert.Contains(t, env.out.String(), "Watching talk.tex")
	assert.Contains(t, env.out.String(), "Built")
}

func TestWatchCmd_RequiresInput(t *testing.T) {
	env := setupTestEnv(t, domain.DefaultSettings())

	assert.Error(t, env.run("watch"))
}
