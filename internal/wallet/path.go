package wallet

import (
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip32"

	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// CoinTypeGraviton is the SLIP-44 coin type used for Graviton accounts.
const CoinTypeGraviton uint32 = 118

// DerivationPath is the computer friendly form of a hierarchical
// derivation path. Hardened segments carry the 2^31 offset.
type DerivationPath []uint32

// DefaultPath returns the canonical Graviton account path
// m/44'/118'/0'/0/0 for the given account and address index.
func DefaultPath(account, index uint32) DerivationPath {
	return DerivationPath{
		bip32.FirstHardenedChild + 44,
		bip32.FirstHardenedChild + CoinTypeGraviton,
		bip32.FirstHardenedChild + account,
		0,
		index,
	}
}

// ParsePath parses a path of the form "m/44'/118'/0'/0/0".
// Apostrophe or "h"/"H" marks a hardened segment. Each index must be
// below 2^31 before hardening.
func ParsePath(s string) (DerivationPath, error) {
	trimmed := strings.TrimSpace(s)
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 || parts[0] != "m" {
		return nil, graverr.WithDetails(graverr.ErrInvalidPathSyntax, map[string]string{
			"path": s,
		})
	}

	path := make(DerivationPath, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := false
		switch {
		case strings.HasSuffix(part, "'"):
			hardened = true
			part = strings.TrimSuffix(part, "'")
		case strings.HasSuffix(part, "h"), strings.HasSuffix(part, "H"):
			hardened = true
			part = part[:len(part)-1]
		}

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil || index >= uint64(bip32.FirstHardenedChild) {
			return nil, graverr.WithDetails(graverr.ErrInvalidPathSyntax, map[string]string{
				"path":    s,
				"segment": part,
			})
		}

		child := uint32(index)
		if hardened {
			child += bip32.FirstHardenedChild
		}
		path = append(path, child)
	}

	return path, nil
}

// String renders the path in the conventional "m/44'/118'/0'/0/0" form.
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, child := range p {
		b.WriteString("/")
		if child >= bip32.FirstHardenedChild {
			b.WriteString(strconv.FormatUint(uint64(child-bip32.FirstHardenedChild), 10))
			b.WriteString("'")
		} else {
			b.WriteString(strconv.FormatUint(uint64(child), 10))
		}
	}
	return b.String()
}
