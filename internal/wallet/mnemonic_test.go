package wallet

import (
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// BIP39 test vectors from https://github.com/trezor/python-mnemonic/blob/master/vectors.json
//
//nolint:gochecknoglobals // BIP39 test vectors from official specification
var bip39TestVectors = []struct {
	entropy  string
	mnemonic string
}{
	{
		entropy:  "00000000000000000000000000000000",
		mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	},
	{
		entropy:  "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		mnemonic: "legal winner thank year wave sausage worth useful legal winner thank yellow",
	},
	{
		entropy:  "80808080808080808080808080808080",
		mnemonic: "letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
	},
	{
		entropy:  "ffffffffffffffffffffffffffffffff",
		mnemonic: "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
	},
	// 24-word vectors
	{
		entropy:  "0000000000000000000000000000000000000000000000000000000000000000",
		mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
	},
	{
		entropy:  "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		mnemonic: "legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth title",
	},
}

func TestGenerate_WordCounts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		entropyBits int
		words       int
	}{
		{128, 12},
		{160, 15},
		{192, 18},
		{224, 21},
		{256, 24},
	}

	for _, tc := range tests {
		t.Run(strconv.Itoa(tc.entropyBits)+" bits", func(t *testing.T) {
			t.Parallel()
			m, err := Generate(tc.entropyBits)
			require.NoError(t, err)
			assert.Equal(t, tc.words, m.Words())
			assert.Len(t, m.Entropy(), tc.entropyBits/8)

			// Generated phrases must parse back to the same entropy.
			parsed, err := Parse(m.Phrase())
			require.NoError(t, err)
			assert.Equal(t, m.Entropy(), parsed.Entropy())
		})
	}
}

func TestGenerate_InvalidEntropyBits(t *testing.T) {
	t.Parallel()
	for _, bits := range []int{0, 64, 100, 129, 288, -128} {
		_, err := Generate(bits)
		require.Error(t, err)
		assert.True(t, graverr.Is(err, graverr.ErrInvalidEntropyLength), "bits=%d", bits)
	}
}

func TestGenerate_Randomness(t *testing.T) {
	t.Parallel()
	m1, err := Generate(128)
	require.NoError(t, err)

	m2, err := Generate(128)
	require.NoError(t, err)

	assert.NotEqual(t, m1.Phrase(), m2.Phrase())
}

func TestFromEntropy_Vectors(t *testing.T) {
	t.Parallel()
	for _, tc := range bip39TestVectors {
		t.Run(tc.mnemonic[:20], func(t *testing.T) {
			t.Parallel()
			entropy, err := hex.DecodeString(tc.entropy)
			require.NoError(t, err)

			m, err := FromEntropy(entropy)
			require.NoError(t, err)
			assert.Equal(t, tc.mnemonic, m.Phrase())
		})
	}
}

func TestParse_Vectors(t *testing.T) {
	t.Parallel()
	for _, tc := range bip39TestVectors {
		t.Run(tc.mnemonic[:20], func(t *testing.T) {
			t.Parallel()
			m, err := Parse(tc.mnemonic)
			require.NoError(t, err)
			assert.Equal(t, tc.entropy, hex.EncodeToString(m.Entropy()))
		})
	}
}

func TestParse_Normalization(t *testing.T) {
	t.Parallel()
	canonical := bip39TestVectors[0].mnemonic

	// Mixed case and irregular whitespace resolve to the same phrase.
	messy := "  Abandon abandon\tABANDON abandon abandon abandon\n abandon abandon abandon abandon  abandon about "
	m, err := Parse(messy)
	require.NoError(t, err)
	assert.Equal(t, canonical, m.Phrase())
}

func TestParse_WordCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		phrase string
	}{
		{"empty", ""},
		{"too short", "abandon abandon about"},
		{"thirteen words", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"},
		{"too long", strings.Repeat("abandon ", 25) + "about"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.phrase)
			require.Error(t, err)
			assert.True(t, graverr.Is(err, graverr.ErrInvalidEntropyLength))
		})
	}
}

func TestParse_UnknownWord(t *testing.T) {
	t.Parallel()
	phrase := "abandon abandon abandon abandon abandno abandon abandon abandon abandon abandon abandon about"
	_, err := Parse(phrase)
	require.Error(t, err)
	assert.True(t, graverr.Is(err, graverr.ErrUnknownWord))

	var ge *graverr.GravError
	require.True(t, graverr.As(err, &ge))
	assert.Equal(t, "abandno", ge.Details["word"])
	assert.Equal(t, "5", ge.Details["position"])
	assert.Contains(t, ge.Suggestion, "abandon")
}

func TestParse_UnknownWordBeforeChecksum(t *testing.T) {
	t.Parallel()
	// A phrase that is both misspelled and checksum-broken must report
	// the unknown word, not the checksum.
	phrase := "zzzzz abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
	_, err := Parse(phrase)
	require.Error(t, err)
	assert.True(t, graverr.Is(err, graverr.ErrUnknownWord))
	assert.False(t, graverr.Is(err, graverr.ErrChecksumMismatch))
}

func TestParse_ChecksumMismatch(t *testing.T) {
	t.Parallel()
	// All words are valid but the final word encodes the wrong checksum.
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
	_, err := Parse(phrase)
	require.Error(t, err)
	assert.True(t, graverr.Is(err, graverr.ErrChecksumMismatch))
}

func TestSuggestWord(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abandon", SuggestWord("abandno"))
	assert.Equal(t, "zoo", SuggestWord("zoo"))
	assert.Empty(t, SuggestWord("qqqqqqqqqqqq"))
}

func TestNormalizePhrase(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abandon about", NormalizePhrase("  ABANDON \t about\n"))
	// NFKD decomposes accented characters.
	assert.Equal(t, "é", NormalizePhrase("é"))
}

func TestMnemonic_EntropyIsCopied(t *testing.T) {
	t.Parallel()
	m, err := Generate(128)
	require.NoError(t, err)

	e1 := m.Entropy()
	e1[0] ^= 0xff
	e2 := m.Entropy()
	assert.NotEqual(t, e1[0], e2[0], "mutating a returned copy must not affect the mnemonic")
}
