package cli

import (
	"github.com/spf13/cobra"

	"github.com/gravnet/gravctl/internal/wallet"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	// computeMnemonic is the mnemonic phrase to derive from.
	computeMnemonic string
	// computeMnemonicFile reads the mnemonic from a file.
	computeMnemonicFile string
	// computePassphrase indicates whether to prompt for a BIP39 passphrase.
	computePassphrase bool
	// computePath overrides the configured derivation path.
	computePath string
	// computeShowPrivate includes the extended private key in the output.
	computeShowPrivate bool
)

// ComputeKeyResponse is the output of the compute-key command.
type ComputeKeyResponse struct {
	AccountID string `json:"account_id" yaml:"account_id"`
	Path      string `json:"path" yaml:"path"`
	XPub      string `json:"xpub" yaml:"xpub"`
	XPrv      string `json:"xprv,omitempty" yaml:"xprv,omitempty"`
}

// computeKeyCmd re-derives an account from an existing mnemonic.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var computeKeyCmd = &cobra.Command{
	Use:   "compute-key",
	Short: "Derive the account for an existing mnemonic",
	Long: `Derive the Graviton account for an existing BIP39 mnemonic.

The mnemonic is taken from --mnemonic, --mnemonic-file, the
GRAVCTL_MNEMONIC environment variable, or an interactive prompt,
in that order. The same mnemonic, passphrase and path always produce
the same account.`,
	Args: cobra.NoArgs,
	RunE: runComputeKey,
}

func runComputeKey(_ *cobra.Command, _ []string) error {
	m, err := resolveMnemonic(computeMnemonic, computeMnemonicFile)
	if err != nil {
		return err
	}

	passphrase, err := resolvePassphrase(computePassphrase)
	if err != nil {
		return err
	}

	path, err := resolvePath(computePath)
	if err != nil {
		return err
	}

	account, err := wallet.DeriveAccount(m, passphrase, path, hrp())
	if err != nil {
		return err
	}
	defer account.Zero()

	logger.Debug("compute-key: derived account %s along %s", account.ID.String(), account.Path)

	resp := ComputeKeyResponse{
		AccountID: account.ID.String(),
		Path:      account.Path,
		XPub:      account.XPub,
	}
	if computeShowPrivate {
		resp.XPrv = account.XPrv
	}

	return formatter.Print(resp)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	computeKeyCmd.Flags().StringVarP(&computeMnemonic, "mnemonic", "m", "", "mnemonic phrase (or set GRAVCTL_MNEMONIC)")
	computeKeyCmd.Flags().StringVar(&computeMnemonicFile, "mnemonic-file", "", "read the mnemonic from this file")
	computeKeyCmd.Flags().BoolVar(&computePassphrase, "passphrase", false, "prompt for a BIP39 passphrase")
	computeKeyCmd.Flags().StringVar(&computePath, "path", "", "derivation path (default from config)")
	computeKeyCmd.Flags().BoolVar(&computeShowPrivate, "show-private", false, "include the extended private key in the output")

	rootCmd.AddCommand(computeKeyCmd)
}
