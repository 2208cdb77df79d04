package config

// DefaultEndpoint is the default Graviton network endpoint.
const DefaultEndpoint = "https://api.gravnet.dev"

// DefaultDenom is the base token denomination.
const DefaultDenom = "ugrav"

// DefaultDerivationPath is the canonical account derivation path.
const DefaultDerivationPath = "m/44'/118'/0'/0/0"

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    DefaultHome(),
		Network: NetworkConfig{
			Endpoint:      DefaultEndpoint,
			GasPrice:      0.025,
			GasMultiplier: 1.2,
			Denom:         DefaultDenom,
		},
		Derivation: DerivationConfig{
			HRP:            "grav",
			Path:           DefaultDerivationPath,
			DefaultAccount: 0,
			AddressIndex:   0,
		},
		Output: OutputConfig{
			DefaultFormat: "yaml",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "",
		},
	}
}
