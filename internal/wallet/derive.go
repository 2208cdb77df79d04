package wallet

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// DerivedAccount bundles the results of a full derivation: the account
// identifier, the serialized extended keys and the signing key handle.
// Call Zero when the signing key is no longer needed.
type DerivedAccount struct {
	ID   AccountID
	XPrv string
	XPub string
	Path string

	signingKey *secp256k1.PrivateKey
}

// DeriveAccount runs the whole pipeline: mnemonic and passphrase to
// seed, seed along the path to an extended key, and that key to an
// account identifier plus signing key. The seed is zeroed before the
// function returns on every path, including errors. Derivations share
// no state, so concurrent calls are safe.
func DeriveAccount(m *Mnemonic, passphrase string, path DerivationPath, hrp string) (*DerivedAccount, error) {
	seed := DeriveSeed(m, passphrase)
	defer seed.Destroy()

	key, err := DerivePath(seed.Bytes(), path)
	if err != nil {
		return nil, err
	}

	xprv, err := EncodeExtended(key, VariantPrivate)
	if err != nil {
		return nil, err
	}
	xpub, err := EncodeExtended(key, VariantPublic)
	if err != nil {
		return nil, err
	}

	signingKey, err := key.SigningKey()
	if err != nil {
		return nil, err
	}

	id, err := AccountFromPubKey(signingKey.PubKey().SerializeCompressed(), hrp)
	if err != nil {
		signingKey.Zero()
		return nil, err
	}

	return &DerivedAccount{
		ID:         id,
		XPrv:       xprv,
		XPub:       xpub,
		Path:       path.String(),
		signingKey: signingKey,
	}, nil
}

// SigningKey returns the secp256k1 signing key handle.
func (a *DerivedAccount) SigningKey() *secp256k1.PrivateKey {
	return a.signingKey
}

// Zero clears the private scalar. The DerivedAccount must not be used
// for signing afterwards.
func (a *DerivedAccount) Zero() {
	if a.signingKey != nil {
		a.signingKey.Zero()
	}
}
