package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip32"

	graverr "github.com/gravnet/gravctl/pkg/errors"
)

func TestParsePath_Canonical(t *testing.T) {
	t.Parallel()
	path, err := ParsePath("m/44'/118'/0'/0/0")
	require.NoError(t, err)

	expected := DerivationPath{
		bip32.FirstHardenedChild + 44,
		bip32.FirstHardenedChild + 118,
		bip32.FirstHardenedChild,
		0,
		0,
	}
	assert.Equal(t, expected, path)
	assert.Equal(t, "m/44'/118'/0'/0/0", path.String())
}

func TestParsePath_HardenedMarkers(t *testing.T) {
	t.Parallel()
	apostrophe, err := ParsePath("m/44'/118'/0'/0/0")
	require.NoError(t, err)

	lower, err := ParsePath("m/44h/118h/0h/0/0")
	require.NoError(t, err)

	upper, err := ParsePath("m/44H/118H/0H/0/0")
	require.NoError(t, err)

	assert.Equal(t, apostrophe, lower)
	assert.Equal(t, apostrophe, upper)
}

func TestParsePath_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"no m prefix", "44'/118'/0'/0/0"},
		{"wrong root", "n/44'/0/0"},
		{"bare m", "m"},
		{"empty segment", "m/44'//0"},
		{"non numeric", "m/44'/abc/0"},
		{"negative", "m/-1/0"},
		{"index too large", "m/2147483648/0"},
		{"double hardened", "m/44''/0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParsePath(tc.path)
			require.Error(t, err)
			assert.True(t, graverr.Is(err, graverr.ErrInvalidPathSyntax))
		})
	}
}

func TestParsePath_MaxIndex(t *testing.T) {
	t.Parallel()
	// 2^31-1 is the last valid index before hardening.
	path, err := ParsePath("m/2147483647'/2147483647")
	require.NoError(t, err)
	assert.Equal(t, DerivationPath{^uint32(0), bip32.FirstHardenedChild - 1}, path)
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()
	path := DefaultPath(0, 0)
	assert.Equal(t, "m/44'/118'/0'/0/0", path.String())

	path = DefaultPath(3, 7)
	assert.Equal(t, "m/44'/118'/3'/0/7", path.String())
}

func TestPath_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{
		"m/0",
		"m/0'",
		"m/44'/118'/0'/0/0",
		"m/49'/1'/0'/1/5",
	} {
		path, err := ParsePath(s)
		require.NoError(t, err)
		assert.Equal(t, s, path.String())
	}
}
