package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gravnet/gravctl/internal/wallet"
	graverr "github.com/gravnet/gravctl/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	// keygenEntropyBits is the entropy size for mnemonic generation.
	keygenEntropyBits int
	// keygenFile is the file the mnemonic is written to.
	keygenFile string
	// keygenPassphrase indicates whether to prompt for a BIP39 passphrase.
	keygenPassphrase bool
	// keygenPath overrides the configured derivation path.
	keygenPath string
)

// KeygenResponse is the output of the keygen command.
type KeygenResponse struct {
	AccountID string `json:"account_id" yaml:"account_id"`
	Path      string `json:"path" yaml:"path"`
	Mnemonic  string `json:"mnemonic,omitempty" yaml:"mnemonic,omitempty"`
	File      string `json:"file,omitempty" yaml:"file,omitempty"`
}

// keygenCmd generates a new mnemonic and derives its account.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new mnemonic and account",
	Long: `Generate a fresh BIP39 mnemonic and derive its Graviton account.

The mnemonic is printed unless --file is given, in which case it is
written to the file with mode 0600 and omitted from the output.`,
	Args: cobra.NoArgs,
	RunE: runKeygen,
}

func runKeygen(cmd *cobra.Command, _ []string) error {
	m, err := wallet.Generate(keygenEntropyBits)
	if err != nil {
		return err
	}

	passphrase, err := resolvePassphrase(keygenPassphrase)
	if err != nil {
		return err
	}

	path, err := resolvePath(keygenPath)
	if err != nil {
		return err
	}

	account, err := wallet.DeriveAccount(m, passphrase, path, hrp())
	if err != nil {
		return err
	}
	defer account.Zero()

	logger.Debug("keygen: derived account %s along %s", account.ID.String(), account.Path)

	resp := KeygenResponse{
		AccountID: account.ID.String(),
		Path:      account.Path,
	}

	if keygenFile != "" {
		if err := os.WriteFile(keygenFile, []byte(m.Phrase()+"\n"), 0o600); err != nil {
			return graverr.Wrap(err, "writing mnemonic to %s", keygenFile)
		}
		resp.File = keygenFile
		outln(cmd.ErrOrStderr(), "Mnemonic written to "+keygenFile+". Store it securely.")
	} else {
		resp.Mnemonic = m.Phrase()
	}

	return formatter.Print(resp)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	keygenCmd.Flags().IntVar(&keygenEntropyBits, "entropy-bits", wallet.MaxEntropyBits, "entropy size in bits: 128, 160, 192, 224 or 256")
	keygenCmd.Flags().StringVarP(&keygenFile, "file", "f", "", "write the mnemonic to this file instead of stdout")
	keygenCmd.Flags().BoolVar(&keygenPassphrase, "passphrase", false, "prompt for a BIP39 passphrase")
	keygenCmd.Flags().StringVar(&keygenPath, "path", "", "derivation path (default from config)")

	rootCmd.AddCommand(keygenCmd)
}
