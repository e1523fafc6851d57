package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/faster-beamer/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driving"
)

// progressInterval is how often the progress line is redrawn.
const progressInterval = 200 * time.Millisecond

var theme = styles.NewSummary(10)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// showProgress redraws a progress line on w until the returned function
// is called. It does nothing unless w is a terminal.
func showProgress(w io.Writer, builder driving.Builder) func() {
	if !isTerminal(w) {
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				fmt.Fprint(w, "\r\033[K")
				return
			case <-ticker.C:
				if line := progressLine(builder.Status()); line != "" {
					fmt.Fprintf(w, "\r\033[K%s", line)
				}
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

func progressLine(p domain.Progress) string {
	if !p.Running || p.Total == 0 {
		return ""
	}
	line := fmt.Sprintf("Compiling %d/%d", p.Done, p.Total)
	if p.Failed > 0 {
		line += fmt.Sprintf(" (%d failed)", p.Failed)
	}
	return theme.Muted.Render(line)
}

// printReport writes the build summary to w.
func printReport(w io.Writer, report *domain.BuildReport, err error) {
	if report == nil {
		if err != nil {
			fmt.Fprintln(w, theme.Error.Render("Build failed"))
		}
		return
	}

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, theme.Label.Render(label), value)
	}

	rows := []string{
		theme.Title.Render("faster-beamer " + report.Mode.String()),
		row("Frames", fmt.Sprintf("%d (first change at %d)", report.FrameCount, report.DiffIndex)),
		row("Units", fmt.Sprintf("%d compiled, %d cached, %d failed",
			report.Count(domain.BuildCompiled), report.Count(domain.BuildCacheHit), report.Count(domain.BuildFailed))),
	}
	if report.Artifact != "" {
		rows = append(rows, row("Output", report.Output+" -> "+report.Artifact))
	}
	rows = append(rows, row("Time", report.Duration.Round(time.Millisecond).String()))

	switch {
	case err == nil:
		rows = append(rows, theme.Success.Render("Built"))
	case report.ErrorSlide:
		rows = append(rows, theme.Warning.Render("Build failed, showing error slide"))
	default:
		rows = append(rows, theme.Error.Render("Build failed"))
	}

	fmt.Fprintln(w, theme.Box.Render(strings.Join(rows, "\n")))
}
