package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/gravnet/gravctl/internal/config"
	"github.com/gravnet/gravctl/internal/secure"
	"github.com/gravnet/gravctl/internal/wallet"
	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// out is a helper for CLI output that ignores write errors (standard pattern for CLI tools).
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func out(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func outln(w io.Writer, args ...interface{}) {
	fmt.Fprintln(w, args...)
}

// promptHidden prompts for a secret with hidden input.
// The caller is responsible for zeroing the returned bytes after use.
func promptHidden(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	secret, err := term.ReadPassword(syscall.Stdin)
	outln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("reading secret: %w", err)
	}

	return secret, nil
}

// promptPassphrase prompts for an optional BIP39 passphrase with confirmation.
func promptPassphrase() (string, error) {
	outln(os.Stderr, "\nBIP39 passphrase (optional extra security layer):")
	outln(os.Stderr, "WARNING: If you lose this passphrase, you cannot recover your account!")

	passphrase, err := promptHidden("Enter passphrase: ")
	if err != nil {
		return "", err
	}

	if len(passphrase) == 0 {
		return "", nil
	}

	confirm, err := promptHidden("Confirm passphrase: ")
	if err != nil {
		secure.Zero(passphrase)
		return "", err
	}
	defer secure.Zero(confirm)

	if string(passphrase) != string(confirm) {
		secure.Zero(passphrase)
		return "", graverr.WithSuggestion(
			graverr.ErrInvalidInput,
			"passphrases do not match",
		)
	}

	result := string(passphrase)
	secure.Zero(passphrase)
	return result, nil
}

// promptMnemonic reads a mnemonic phrase from stdin with hidden input.
func promptMnemonic() (string, error) {
	phrase, err := promptHidden("Enter mnemonic phrase: ")
	if err != nil {
		return "", err
	}
	defer secure.Zero(phrase)

	if len(phrase) == 0 {
		return "", graverr.WithSuggestion(
			graverr.ErrInvalidInput,
			"provide a mnemonic via --mnemonic, "+config.EnvMnemonic+" or interactive input",
		)
	}

	return string(phrase), nil
}

// resolveMnemonic resolves the mnemonic from flag, environment, file or
// prompt, in that order, and parses it.
func resolveMnemonic(flagValue, fileValue string) (*wallet.Mnemonic, error) {
	phrase := flagValue
	if phrase == "" {
		phrase = os.Getenv(config.EnvMnemonic)
	}
	if phrase == "" && fileValue != "" {
		// #nosec G304 -- mnemonic file path is explicit user input
		data, err := os.ReadFile(fileValue)
		if err != nil {
			return nil, graverr.Wrap(graverr.ErrNotFound, "mnemonic file %s", fileValue)
		}
		phrase = strings.TrimSpace(string(data))
		secure.Zero(data)
	}
	if phrase == "" {
		var err error
		phrase, err = promptMnemonic()
		if err != nil {
			return nil, err
		}
	}

	return wallet.Parse(phrase)
}

// resolvePassphrase resolves the passphrase from the environment or, when
// the prompt flag is set, interactively.
func resolvePassphrase(promptFlag bool) (string, error) {
	if v, ok := os.LookupEnv(config.EnvPassphrase); ok {
		return v, nil
	}
	if promptFlag {
		return promptPassphrase()
	}
	return "", nil
}

// resolvePath resolves the derivation path from an explicit flag value or
// the configured default.
func resolvePath(flagValue string) (wallet.DerivationPath, error) {
	if flagValue != "" {
		return wallet.ParsePath(flagValue)
	}
	if cfg != nil && cfg.Derivation.Path != "" {
		return wallet.ParsePath(cfg.Derivation.Path)
	}
	return wallet.ParsePath(config.DefaultDerivationPath)
}

// hrp returns the configured bech32 prefix.
func hrp() string {
	if cfg != nil && cfg.Derivation.HRP != "" {
		return cfg.Derivation.HRP
	}
	return wallet.DefaultHRP
}
