package wallet

import (
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tyler-smith/go-bip32"

	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// KeyVariant selects the extended key serialization variant.
type KeyVariant int

// Extended key variants.
const (
	VariantPrivate KeyVariant = iota
	VariantPublic
)

// Serialized extended key prefixes. The version bytes baked into the
// serialization must render these prefixes; anything else means the
// payload was assembled wrong.
const (
	prefixXPrv = "xprv"
	prefixXPub = "xpub"
)

// EncodeExtended serializes an extended key as a base58check string:
// version, depth, parent fingerprint, child index, chain code and key
// material followed by a 4-byte double-SHA256 checksum. The output
// prefix is verified and a mismatch is reported as an encoding error
// rather than a crash.
func EncodeExtended(k *HDKey, variant KeyVariant) (string, error) {
	key := k.key
	wantPrefix := prefixXPub
	if variant == VariantPrivate {
		if !key.IsPrivate {
			return "", graverr.WithDetails(graverr.ErrEncoding, map[string]string{
				"reason": "private serialization of a public-only key",
			})
		}
		wantPrefix = prefixXPrv
	} else if key.IsPrivate {
		key = key.PublicKey()
	}

	encoded := key.B58Serialize()
	if !strings.HasPrefix(encoded, wantPrefix) {
		return "", graverr.WithDetails(graverr.ErrEncoding, map[string]string{
			"want_prefix": wantPrefix,
			"got":         truncate(encoded, 8),
		})
	}
	return encoded, nil
}

// ParseExtended decodes a base58check extended key string.
func ParseExtended(s string) (*HDKey, error) {
	key, err := bip32.B58Deserialize(s)
	if err != nil {
		return nil, graverr.Wrap(graverr.ErrEncoding, "decode extended key: %v", err)
	}
	return &HDKey{key: key}, nil
}

// SigningKey recovers the secp256k1 signing key from a private
// extended key. The scalar is rejected if it is zero or not below the
// curve order.
func (k *HDKey) SigningKey() (*secp256k1.PrivateKey, error) {
	raw := k.PrivateKeyBytes()
	if raw == nil {
		return nil, graverr.WithDetails(graverr.ErrInvalidKeyMaterial, map[string]string{
			"reason": "public-only key",
		})
	}
	return signingKeyFromBytes(raw)
}

// signingKeyFromBytes interprets 32 bytes as a curve scalar, enforcing
// 0 < scalar < N.
func signingKeyFromBytes(raw []byte) (*secp256k1.PrivateKey, error) {
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(raw)
	if overflow || scalar.IsZero() {
		return nil, graverr.ErrInvalidKeyMaterial
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}

// truncate shortens a string for inclusion in error details.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
