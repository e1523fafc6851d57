package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch <input.tex>",
	Short: "Rebuild whenever the input file changes",
	Long: `Build once, then rebuild every time the input file is saved.

Build failures are reported and watching continues. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(settings)
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	return a.watcher.Watch(cmd.Context(), buildRequest(settings, args[0]), func(report *domain.BuildReport, err error) {
		printReport(cmd.OutOrStdout(), report, err)
	})
}
