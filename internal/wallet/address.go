package wallet

import (
	"crypto/sha256"
	"strconv"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is fixed by the address format

	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// DefaultHRP is the bech32 human-readable prefix for Graviton accounts.
const DefaultHRP = "grav"

// AccountHashSize is the length of the public key hash inside an
// account identifier.
const AccountHashSize = 20

// AccountID is the chain-visible identity of an account: a bech32
// string over the 20-byte hash of the compressed public key.
type AccountID struct {
	hrp     string
	hash    [AccountHashSize]byte
	encoded string
}

// AccountFromPubKey derives the account identifier for a compressed
// secp256k1 public key: RIPEMD160(SHA256(pubkey)) encoded as bech32
// with the given prefix.
func AccountFromPubKey(pubKey []byte, hrp string) (AccountID, error) {
	if len(pubKey) != 33 {
		return AccountID{}, graverr.WithDetails(graverr.ErrEncoding, map[string]string{
			"pubkey_bytes": strconv.Itoa(len(pubKey)),
		})
	}

	sha := sha256.Sum256(pubKey)
	ripe := ripemd160.New()
	ripe.Write(sha[:])

	var hash [AccountHashSize]byte
	copy(hash[:], ripe.Sum(nil))

	return accountFromHash(hash, hrp)
}

// ParseAccountID decodes a bech32 account string and verifies it
// against the expected prefix. Any checksum or length failure is an
// encoding error.
func ParseAccountID(text, hrp string) (AccountID, error) {
	gotHRP, data, err := bech32.Decode(text)
	if err != nil {
		return AccountID{}, graverr.Wrap(graverr.ErrEncoding, "decode account: %v", err)
	}
	if gotHRP != hrp {
		return AccountID{}, graverr.WithDetails(graverr.ErrEncoding, map[string]string{
			"want_prefix": hrp,
			"got_prefix":  gotHRP,
		})
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return AccountID{}, graverr.Wrap(graverr.ErrEncoding, "regroup account bits: %v", err)
	}
	if len(raw) != AccountHashSize {
		return AccountID{}, graverr.WithDetails(graverr.ErrEncoding, map[string]string{
			"hash_bytes": strconv.Itoa(len(raw)),
		})
	}

	var hash [AccountHashSize]byte
	copy(hash[:], raw)

	return AccountID{hrp: hrp, hash: hash, encoded: text}, nil
}

// accountFromHash encodes a 20-byte hash under the given prefix.
func accountFromHash(hash [AccountHashSize]byte, hrp string) (AccountID, error) {
	grouped, err := bech32.ConvertBits(hash[:], 8, 5, true)
	if err != nil {
		return AccountID{}, graverr.Wrap(graverr.ErrEncoding, "regroup account bits: %v", err)
	}
	encoded, err := bech32.Encode(hrp, grouped)
	if err != nil {
		return AccountID{}, graverr.Wrap(graverr.ErrEncoding, "encode account: %v", err)
	}
	return AccountID{hrp: hrp, hash: hash, encoded: encoded}, nil
}

// String returns the bech32 account text.
func (a AccountID) String() string {
	return a.encoded
}

// HRP returns the human-readable prefix.
func (a AccountID) HRP() string {
	return a.hrp
}

// Hash returns the 20-byte public key hash.
func (a AccountID) Hash() [AccountHashSize]byte {
	return a.hash
}

// IsZero reports whether this is the zero AccountID.
func (a AccountID) IsZero() bool {
	return a.encoded == ""
}
