package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gravnet/gravctl/internal/chain"
	"github.com/gravnet/gravctl/internal/wallet"
	graverr "github.com/gravnet/gravctl/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	// sendMnemonic is the sender's mnemonic phrase.
	sendMnemonic string
	// sendMnemonicFile reads the sender's mnemonic from a file.
	sendMnemonicFile string
	// sendPassphrase indicates whether to prompt for a BIP39 passphrase.
	sendPassphrase bool
	// sendPath overrides the configured derivation path.
	sendPath string
	// sendGasLimit is the gas limit attached to the transfer.
	sendGasLimit uint64
)

// SendResponse is the output of the send command.
type SendResponse struct {
	TxHash string `json:"tx_hash" yaml:"tx_hash"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Amount uint64 `json:"amount" yaml:"amount"`
	Denom  string `json:"denom" yaml:"denom"`
}

// sendCmd signs and broadcasts a token transfer.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var sendCmd = &cobra.Command{
	Use:   "send <amount> <receiver>",
	Short: "Send tokens to another account",
	Long: `Sign and broadcast a token transfer on the Graviton network.

The amount is an integer in the base denomination. The sender account
is derived from the mnemonic the same way compute-key derives it.`,
	Args: cobra.ExactArgs(2),
	RunE: runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || amount == 0 {
		return graverr.WithSuggestion(
			graverr.Wrap(graverr.ErrInvalidAmount, "%q", args[0]),
			"amount must be a positive integer in "+cfg.Network.Denom,
		)
	}
	receiver := args[1]

	m, err := resolveMnemonic(sendMnemonic, sendMnemonicFile)
	if err != nil {
		return err
	}

	passphrase, err := resolvePassphrase(sendPassphrase)
	if err != nil {
		return err
	}

	path, err := resolvePath(sendPath)
	if err != nil {
		return err
	}

	account, err := wallet.DeriveAccount(m, passphrase, path, hrp())
	if err != nil {
		return err
	}
	defer account.Zero()

	client := newChainClient()

	ctx, cancel := contextWithTimeout(cmd, 60*time.Second)
	defer cancel()

	// Fetch the sender's sequence for replay protection.
	info, err := client.AccountInfo(ctx, account.ID.String())
	if err != nil {
		return err
	}

	transfer := chain.Transfer{
		From:     account.ID.String(),
		To:       receiver,
		Amount:   amount,
		Denom:    cfg.Network.Denom,
		GasLimit: sendGasLimit,
		Sequence: info.Sequence,
	}

	result, err := client.SendTokens(ctx, account.SigningKey(), transfer)
	if err != nil {
		return err
	}

	logger.Debug("send: broadcast %s", result.TxHash)

	return formatter.Print(SendResponse{
		TxHash: result.TxHash,
		From:   transfer.From,
		To:     transfer.To,
		Amount: transfer.Amount,
		Denom:  transfer.Denom,
	})
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	sendCmd.Flags().StringVarP(&sendMnemonic, "mnemonic", "m", "", "mnemonic phrase (or set GRAVCTL_MNEMONIC)")
	sendCmd.Flags().StringVar(&sendMnemonicFile, "mnemonic-file", "", "read the mnemonic from this file")
	sendCmd.Flags().BoolVar(&sendPassphrase, "passphrase", false, "prompt for a BIP39 passphrase")
	sendCmd.Flags().StringVar(&sendPath, "path", "", "derivation path (default from config)")
	sendCmd.Flags().Uint64Var(&sendGasLimit, "gas-limit", 200000, "gas limit for the transfer")

	rootCmd.AddCommand(sendCmd)
}
