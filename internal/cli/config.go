package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravnet/gravctl/internal/config"
	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and modify gravctl configuration settings.`,
}

// configInitCmd initializes the configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default configuration file at ~/.gravctl/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.

Example:
  gravctl config init
  gravctl config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// configShowCmd shows the current configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the active configuration, after environment and flag
overrides have been applied.

Example:
  gravctl config show
  gravctl config show -F json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path(cfg.Home)

	if _, err := os.Stat(configPath); err == nil && !configForce {
		return graverr.WithSuggestion(
			graverr.ErrGeneral,
			fmt.Sprintf("configuration already exists at %s. Use --force to overwrite.", configPath),
		)
	}

	defaults := config.Defaults()
	defaults.Home = cfg.Home
	if err := config.Save(defaults, configPath); err != nil {
		return graverr.Wrap(err, "writing %s", configPath)
	}

	outln(cmd.OutOrStdout(), "Configuration written to "+configPath)
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	return formatter.Print(cfg)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")
}
