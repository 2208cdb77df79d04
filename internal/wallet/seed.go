package wallet

import (
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"

	"github.com/gravnet/gravctl/internal/secure"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// DeriveSeed derives the 64-byte seed from a mnemonic and optional
// passphrase using PBKDF2-HMAC-SHA512 with 2048 iterations and the
// salt "mnemonic" + passphrase, per BIP39. Both inputs are
// NFKD-normalized. The seed is returned in a secure buffer; the
// caller must Destroy it when done.
func DeriveSeed(m *Mnemonic, passphrase string) *secure.Buffer {
	raw := bip39.NewSeed(m.Phrase(), norm.NFKD.String(passphrase))
	seed := secure.FromSlice(raw)
	secure.Zero(raw)
	return seed
}
