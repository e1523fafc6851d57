package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/faster-beamer/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Print the configuration after applying the config file and any flags
given on the command line, as TOML.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	out, err := file.Encode(settings)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	store, err := openConfigStore(configPath)
	if err != nil {
		return err
	}
	if path := store.Path(); path != "" {
		cmd.Printf("# %s\n", path)
	}
	cmd.Print(out)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore(configPath)
	if err != nil {
		return err
	}
	path := store.Path()
	if path != "" && !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := store.Save(domain.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}
