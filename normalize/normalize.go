// Package normalize canonicalizes raw party-name fragments into display
// form: Title Case with a fixed list of preserved abbreviations and
// connective words.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Config holds the token vocabularies used while casing names. Both sets are
// data: extend them without touching the transform.
type Config struct {
	// Preserved tokens are kept verbatim, matched exactly (case-sensitive).
	Preserved []string

	// Connectives stay lower-case unless they open the name.
	Connectives []string
}

// DefaultConfig returns the vocabulary of Indian court cause lists.
func DefaultConfig() Config {
	return Config{
		Preserved: []string{
			"U.P.", "NCT", "SLP", "S.L.P.", "IA", "I.A.",
			"Ltd.", "LTD.", "CBI", "GST",
			"W.P.(C)", "T.P.(C)", "T.P.(Crl.)",
		},
		Connectives: []string{
			"and", "of", "the", "by", "on", "for", "to", "in",
			"vs", "vs.", "alias", "@",
		},
	}
}

// Normalizer rewrites raw name fragments into canonical display form.
type Normalizer struct {
	preserved   map[string]struct{}
	connectives map[string]struct{}
}

// NewNormalizer creates a normalizer with the default vocabulary.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithConfig(DefaultConfig())
}

// NewNormalizerWithConfig creates a normalizer with a custom vocabulary.
func NewNormalizerWithConfig(config Config) *Normalizer {
	n := &Normalizer{
		preserved:   make(map[string]struct{}, len(config.Preserved)),
		connectives: make(map[string]struct{}, len(config.Connectives)),
	}
	for _, w := range config.Preserved {
		n.preserved[w] = struct{}{}
	}
	for _, w := range config.Connectives {
		n.connectives[w] = struct{}{}
	}
	return n
}

// trailing characters stripped from the ends of names
const trailingCutset = " ,.-"

// Name canonicalizes one raw name fragment. Whitespace runs collapse to
// single spaces, each token is cased per the vocabulary, and trailing
// punctuation is stripped. The transform is deterministic and idempotent:
// re-normalizing an already-normalized name returns it unchanged. Trailing
// punctuation is stripped before tokenizing as well as after, so the final
// token is cased the same way on every pass.
func (n *Normalizer) Name(raw string) string {
	s := strings.TrimRight(norm.NFC.String(raw), trailingCutset)

	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for i, w := range fields {
		out = append(out, n.token(w, i == 0))
	}

	return strings.TrimRight(strings.Join(out, " "), trailingCutset)
}

// token cases a single whitespace-delimited token. The first token is never
// lower-cased as a connective.
func (n *Normalizer) token(w string, first bool) string {
	if hasDigit(w) {
		return w
	}
	if strings.Contains(w, ".") && w == strings.ToUpper(w) {
		return w
	}
	if _, ok := n.preserved[w]; ok {
		return w
	}

	base := strings.ToLower(w)
	if _, ok := n.connectives[base]; ok && !first {
		return base
	}
	return capitalize(base)
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first letter of an already lower-cased token.
func capitalize(s string) string {
	for i, r := range s {
		return s[:i] + string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
