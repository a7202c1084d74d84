// Package classify decides what role a single line of cause-list text plays:
// a new-entry serial marker, a "versus" separator, boilerplate to discard, or
// candidate party-name content.
package classify

import (
	"regexp"
	"strings"
)

// Kind identifies the role of a classified line.
type Kind int

const (
	// Content is a candidate petitioner or respondent name fragment.
	Content Kind = iota
	// Serial marks the start of a new entry; the serial token is captured.
	Serial
	// Versus separates the petitioner from the respondent.
	Versus
	// Meta is boilerplate (banners, notices, filing codes) to discard.
	Meta
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Serial:
		return "serial"
	case Versus:
		return "versus"
	case Meta:
		return "meta"
	default:
		return "content"
	}
}

// Classification is the outcome for one line.
type Classification struct {
	Kind Kind

	// Serial is the captured serial token when Kind == Serial.
	Serial string
}

// Config holds the boilerplate vocabulary. Both lists are regular
// expressions, matched case-insensitively anywhere in the line. They are
// data: extend them without touching the classifier.
type Config struct {
	// HeaderPatterns match banner, notice, and column-header lines.
	HeaderPatterns []string

	// FilingCodePatterns match miscellaneous-filing markers.
	FilingCodePatterns []string
}

// DefaultConfig returns the vocabulary of Supreme Court daily cause lists.
func DefaultConfig() Config {
	return Config{
		HeaderPatterns: []string{
			`SUPREME COURT OF INDIA`,
			`IT WILL BE APPRECIATED`,
			`LISTED BEFORE`,
			`DAILY CAUSE LIST`,
			`NOTE`,
			`MISCELLANEOUS HEARING`,
			`PUBLIC INTEREST LITIGATIONS`,
			`SNo\.\s*Case No\.`,
			`Petitioner/Respondent`,
		},
		FilingCodePatterns: []string{
			`IA No\.`,
			`FOR ADMISSION`,
			`EXEMPTION FROM FILING`,
			`CONDONATION OF DELAY`,
			`O\.T\.`,
		},
	}
}

// Serial tokens are 1-3 digits with an optional decimal sub-item ("12",
// "115.30"), anchored at line start. Four-digit prefixes never match.
var (
	serialRE = regexp.MustCompile(`^\s*(\d{1,3}(?:\.\d+)?)\b`)
	versusRE = regexp.MustCompile(`(?i)^\s*versus\.?\s*$`)

	noAbbrevRE  = regexp.MustCompile(`\bNo\.`)
	romanRE     = regexp.MustCompile(`^[IVXLC]+(-[A-Z])?$`)
	numericRE   = regexp.MustCompile(`^[\d/().-]+$`)
	pilRE       = regexp.MustCompile(`\bPIL(?:-W|\b)`)
	connectedRE = regexp.MustCompile(`^Connected$`)
)

// Classifier classifies lines against a fixed rule set. It is stateless and
// safe for concurrent use.
type Classifier struct {
	headers     *regexp.Regexp
	filingCodes *regexp.Regexp
}

// NewClassifier creates a classifier with the default vocabulary.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with a custom vocabulary.
func NewClassifierWithConfig(config Config) *Classifier {
	return &Classifier{
		headers:     compileAny(config.HeaderPatterns),
		filingCodes: compileAny(config.FilingCodePatterns),
	}
}

// compileAny joins patterns into one case-insensitive alternation.
func compileAny(patterns []string) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)` + strings.Join(patterns, "|"))
}

// Classify maps one trimmed line to exactly one role. Serial and versus
// markers take priority over boilerplate, which takes priority over treating
// the line as content.
func (c *Classifier) Classify(line string) Classification {
	if m := serialRE.FindStringSubmatch(line); m != nil {
		return Classification{Kind: Serial, Serial: m[1]}
	}
	if versusRE.MatchString(line) {
		return Classification{Kind: Versus}
	}
	if c.isMeta(line) {
		return Classification{Kind: Meta}
	}
	return Classification{Kind: Content}
}

// isMeta reports whether the line is boilerplate: a known banner or notice
// phrase, a standalone "No." abbreviation, a bare Roman numeral (optionally
// suffixed "-<letter>"), a purely numeric/punctuation run (page numbers,
// IDs), a miscellaneous-filing code, or the lone word "Connected".
func (c *Classifier) isMeta(line string) bool {
	if c.headers != nil && c.headers.MatchString(line) {
		return true
	}
	if noAbbrevRE.MatchString(line) {
		return true
	}
	if romanRE.MatchString(line) {
		return true
	}
	if numericRE.MatchString(line) {
		return true
	}
	if pilRE.MatchString(line) {
		return true
	}
	if c.filingCodes != nil && c.filingCodes.MatchString(line) {
		return true
	}
	return connectedRE.MatchString(line)
}
