// Package wallet implements the deterministic key derivation pipeline:
// BIP39 mnemonic handling, seed derivation, BIP32 hierarchical key
// derivation, extended key serialization and bech32 account identities.
package wallet

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"

	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// Entropy sizes accepted by Generate, per BIP39.
// 128..256 bits map to 12..24 word phrases.
const (
	MinEntropyBits = 128
	MaxEntropyBits = 256
)

// MaxTypoDistance is the maximum Levenshtein distance to consider a
// word suggestion. Words further away are not suggested.
const MaxTypoDistance = 2

// whitespaceRegex matches one or more whitespace characters.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// wordIndex maps each BIP39 English word to its 11-bit index.
var wordIndex = func() map[string]int {
	words := bip39.GetWordList()
	m := make(map[string]int, len(words))
	for i, w := range words {
		m[w] = i
	}
	return m
}()

// Mnemonic is a validated BIP39 phrase together with the entropy it
// encodes. Instances are immutable once constructed.
type Mnemonic struct {
	phrase  string
	entropy []byte
}

// Generate draws entropyBits of cryptographically secure entropy and
// encodes it as a mnemonic phrase. entropyBits must be one of
// {128, 160, 192, 224, 256}.
func Generate(entropyBits int) (*Mnemonic, error) {
	if !validEntropyBits(entropyBits) {
		return nil, graverr.WithDetails(graverr.ErrInvalidEntropyLength, map[string]string{
			"entropy_bits": strconv.Itoa(entropyBits),
		})
	}

	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return nil, graverr.Wrap(err, "generate entropy")
	}

	return FromEntropy(entropy)
}

// FromEntropy encodes existing entropy bytes as a mnemonic.
// The entropy length must correspond to a valid BIP39 size.
func FromEntropy(entropy []byte) (*Mnemonic, error) {
	if !validEntropyBits(len(entropy) * 8) {
		return nil, graverr.WithDetails(graverr.ErrInvalidEntropyLength, map[string]string{
			"entropy_bits": strconv.Itoa(len(entropy) * 8),
		})
	}

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, graverr.Wrap(err, "encode mnemonic")
	}

	m := &Mnemonic{phrase: phrase, entropy: make([]byte, len(entropy))}
	copy(m.entropy, entropy)
	return m, nil
}

// Parse validates a user-supplied phrase and recovers the entropy it
// encodes. Every word is checked against the wordlist before the
// checksum is verified, so an unknown word never reaches checksum
// verification. The phrase is NFKD-normalized first.
func Parse(phrase string) (*Mnemonic, error) {
	normalized := NormalizePhrase(phrase)

	words := strings.Fields(normalized)
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, graverr.WithDetails(graverr.ErrInvalidEntropyLength, map[string]string{
			"word_count": strconv.Itoa(len(words)),
		})
	}

	for i, word := range words {
		if _, ok := wordIndex[word]; !ok {
			err := graverr.WithDetails(graverr.ErrUnknownWord, map[string]string{
				"word":     word,
				"position": strconv.Itoa(i + 1),
			})
			if suggestion := SuggestWord(word); suggestion != "" {
				err = graverr.WithSuggestion(err, fmt.Sprintf("did you mean %q?", suggestion))
			}
			return nil, err
		}
	}

	entropy, err := bip39.EntropyFromMnemonic(normalized)
	if err != nil {
		if errors.Is(err, bip39.ErrChecksumIncorrect) {
			return nil, graverr.ErrChecksumMismatch
		}
		return nil, graverr.Wrap(err, "parse mnemonic")
	}

	return &Mnemonic{phrase: normalized, entropy: entropy}, nil
}

// Phrase returns the normalized mnemonic phrase.
func (m *Mnemonic) Phrase() string {
	return m.phrase
}

// Entropy returns a copy of the entropy bytes the phrase encodes.
func (m *Mnemonic) Entropy() []byte {
	out := make([]byte, len(m.entropy))
	copy(out, m.entropy)
	return out
}

// Words returns the number of words in the phrase.
func (m *Mnemonic) Words() int {
	return len(strings.Fields(m.phrase))
}

// NormalizePhrase applies Unicode NFKD normalization, lowercases the
// phrase and collapses whitespace runs to single spaces.
func NormalizePhrase(phrase string) string {
	phrase = norm.NFKD.String(phrase)
	phrase = strings.ToLower(phrase)
	phrase = whitespaceRegex.ReplaceAllString(phrase, " ")
	return strings.TrimSpace(phrase)
}

// SuggestWord finds the closest wordlist entry to the input using
// Levenshtein distance. Returns empty string if no word is close
// enough (distance > MaxTypoDistance).
func SuggestWord(input string) string {
	minDist := math.MaxInt
	var suggestion string

	for _, word := range bip39.GetWordList() {
		dist := levenshtein.ComputeDistance(input, word)
		if dist < minDist {
			minDist = dist
			suggestion = word
		}
		if dist == 0 {
			return word
		}
	}

	if minDist <= MaxTypoDistance {
		return suggestion
	}
	return ""
}

// validEntropyBits reports whether bits is a valid BIP39 entropy size.
func validEntropyBits(bits int) bool {
	return bits >= MinEntropyBits && bits <= MaxEntropyBits && bits%32 == 0
}
