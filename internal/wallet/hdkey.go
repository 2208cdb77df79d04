package wallet

import (
	"strconv"

	"github.com/tyler-smith/go-bip32"

	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// HDKey is a node in the BIP32 key tree, private or public.
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates the master HD key from a 64-byte seed.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) != SeedSize {
		return nil, graverr.WithDetails(graverr.ErrInvalidKeyMaterial, map[string]string{
			"seed_bytes": strconv.Itoa(len(seed)),
		})
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, graverr.Wrap(graverr.ErrDerivationArithmetic, "master key: %v", err)
	}
	return &HDKey{key: master}, nil
}

// Child derives the child key at index. Indices at or above
// bip32.FirstHardenedChild use hardened derivation. A scalar outside
// the curve order surfaces as a derivation arithmetic error; the
// failure is fatal for the whole path, there is no index skipping.
func (k *HDKey) Child(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, graverr.WithDetails(
			graverr.Wrap(graverr.ErrDerivationArithmetic, "derive child: %v", err),
			map[string]string{"index": strconv.FormatUint(uint64(index), 10)},
		)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives the terminal key for a path over the given seed:
// the master key first, then one child derivation per path segment in
// order.
func DerivePath(seed []byte, path DerivationPath) (*HDKey, error) {
	current, err := NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	for _, index := range path {
		current, err = current.Child(index)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

// PrivateKeyBytes returns the raw 32-byte private key scalar.
// Returns nil if this is a public-only key.
func (k *HDKey) PrivateKeyBytes() []byte {
	if !k.key.IsPrivate {
		return nil
	}
	// bip32 stores private key material as 33 bytes with a leading
	// 0x00 in serialized form; in-memory it is 32 bytes.
	raw := k.key.Key
	if len(raw) == 33 && raw[0] == 0 {
		return raw[1:]
	}
	return raw
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	if !k.key.IsPrivate {
		return k.key.Key
	}
	return k.key.PublicKey().Key
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// IsPrivate returns true if this key carries private key material.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Neuter returns a public-only copy of this key.
func (k *HDKey) Neuter() *HDKey {
	if !k.key.IsPrivate {
		return k
	}
	return &HDKey{key: k.key.PublicKey()}
}
