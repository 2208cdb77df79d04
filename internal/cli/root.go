// Package cli implements the gravctl command-line interface.
//
// This package uses global variables to manage CLI state, which is the standard
// pattern for Cobra-based CLI applications. The globals are initialized in
// PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gravnet/gravctl/internal/config"
	"github.com/gravnet/gravctl/internal/output"
	graverr "github.com/gravnet/gravctl/pkg/errors"
)

var (
	// Global flags
	homeDir           string
	outputFormat      string
	verbose           bool
	endpointFlag      string
	gasPriceFlag      float64
	gasMultiplierFlag float64

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gravctl",
	Short: "Command line client for the Graviton network",
	Long: `Gravctl manages Graviton accounts from the terminal.

It derives accounts from BIP39 mnemonics along BIP44 paths, computes
bech32 account identifiers, queries account state and sends tokens.

Example:
  gravctl keygen --file seed.txt
  gravctl compute-key --path "m/44'/118'/0'/0/0"
  gravctl account-info grav1...
  gravctl send 1000 grav1...`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initGlobals()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if formatter != nil {
			_ = output.FormatError(os.Stderr, err, formatter.Format())
		} else {
			_ = output.FormatError(os.Stderr, err, output.FormatText)
		}
		return err
	}
	return nil
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return graverr.ExitCode(err)
}

// initGlobals initializes global configuration, logger, and formatter.
func initGlobals() error {
	// Determine home directory
	home := homeDir
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}

	// Load or create config
	configPath := config.Path(home)
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		// Use defaults if config doesn't exist
		cfg = config.Defaults()
		cfg.Home = home
	}

	// Apply environment variable overrides
	config.ApplyEnvironment(cfg)

	// Override with command-line flags
	if homeDir != "" {
		cfg.Home = homeDir
	}
	if endpointFlag != "" {
		cfg.Network.Endpoint = endpointFlag
	}
	if gasPriceFlag > 0 {
		cfg.Network.GasPrice = gasPriceFlag
	}
	if gasMultiplierFlag > 0 {
		cfg.Network.GasMultiplier = gasMultiplierFlag
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if outputFormat != "" && outputFormat != "auto" {
		cfg.Output.DefaultFormat = outputFormat
	}

	// Initialize logger
	logLevel := config.ParseLogLevel(cfg.Logging.Level)
	logger, err = config.NewLogger(logLevel, cfg.Logging.File)
	if err != nil {
		// Use null logger if we can't create the file
		logger = config.NullLogger()
	}

	// Initialize formatter
	explicitFormat := output.ParseFormat(cfg.Output.DefaultFormat)
	detectedFormat := output.DetectFormat(os.Stdout, explicitFormat)
	formatter = output.NewFormatter(detectedFormat, os.Stdout)

	return nil
}

// cleanup releases resources.
func cleanup() {
	if logger != nil {
		_ = logger.Close()
	}
}

// Config returns the global configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the global logger.
func Logger() *config.Logger {
	return logger
}

// Formatter returns the global output formatter.
func Formatter() *output.Formatter {
	return formatter
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "gravctl data directory (default: ~/.gravctl)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "F", "auto", "output format: yaml, json, prettyjson, text, auto")
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "", "Graviton node endpoint URL")
	rootCmd.PersistentFlags().Float64Var(&gasPriceFlag, "gas-price", 0, "gas price in "+config.DefaultDenom)
	rootCmd.PersistentFlags().Float64Var(&gasMultiplierFlag, "gas-multiplier", 0, "multiplier applied to estimated gas")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
