package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/storage/filesystem"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the artifact cache",
}

var cachePathCmd = &cobra.Command{
	Use:   "path [input.tex]",
	Short: "Print the cache directory",
	Long: `Print the cache root, or the folder holding the compiled frames of
an input file when one is given. Nothing is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCachePath,
}

func init() {
	cacheCmd.AddCommand(cachePathCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCachePath(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	root, err := filesystem.Root(settings.CacheDir)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		cmd.Println(root)
		return nil
	}

	dir, err := filesystem.InputDir(root, args[0])
	if err != nil {
		return err
	}
	cmd.Println(dir)
	return nil
}
