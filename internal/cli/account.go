package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gravnet/gravctl/internal/chain"
)

// accountInfoCmd queries on-chain state for an account.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var accountInfoCmd = &cobra.Command{
	Use:   "account-info <address>",
	Short: "Show on-chain state for an account",
	Long: `Query a Graviton node for the state of an account.

The address is validated locally before any network request is made.`,
	Args: cobra.ExactArgs(1),
	RunE: runAccountInfo,
}

func runAccountInfo(cmd *cobra.Command, args []string) error {
	client := newChainClient()

	ctx, cancel := contextWithTimeout(cmd, 30*time.Second)
	defer cancel()

	info, err := client.AccountInfo(ctx, args[0])
	if err != nil {
		return err
	}

	logger.Debug("account-info: fetched %s from %s", args[0], client.Endpoint())

	return formatter.Print(info)
}

// newChainClient builds a node client from the active configuration.
func newChainClient() *chain.Client {
	return chain.NewClient(&chain.ClientOptions{
		Endpoint: cfg.Network.Endpoint,
		HRP:      hrp(),
	})
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(accountInfoCmd)
}
