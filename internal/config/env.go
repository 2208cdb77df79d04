package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome          = "GRAVCTL_HOME"
	EnvEndpoint      = "GRAVCTL_ENDPOINT"
	EnvGasPrice      = "GRAVCTL_GAS_PRICE"
	EnvGasMultiplier = "GRAVCTL_GAS_MULTIPLIER"
	EnvOutputFormat  = "GRAVCTL_FORMAT"
	EnvLogLevel      = "GRAVCTL_LOG_LEVEL"
	EnvVerbose       = "GRAVCTL_VERBOSE"

	// Secrets read by the CLI layer, never stored in config files.
	EnvMnemonic   = "GRAVCTL_MNEMONIC"
	EnvPassphrase = "GRAVCTL_PASSPHRASE"
)

// ApplyEnvironment applies environment variable overrides to the
// configuration. Flags still take precedence over these.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvEndpoint); v != "" {
		cfg.Network.Endpoint = strings.TrimSpace(v)
	}

	if v := os.Getenv(EnvGasPrice); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil && price > 0 {
			cfg.Network.GasPrice = price
		}
	}

	if v := os.Getenv(EnvGasMultiplier); v != "" {
		if mult, err := strconv.ParseFloat(v, 64); err == nil && mult > 0 {
			cfg.Network.GasMultiplier = mult
		}
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
