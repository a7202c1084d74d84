package listing

import (
	"github.com/courtlist/causelist/classify"
	"github.com/courtlist/causelist/layout"
	"github.com/courtlist/causelist/model"
	"github.com/courtlist/causelist/normalize"
)

// ParserConfig bundles the rule sets and geometry thresholds used while
// parsing.
type ParserConfig struct {
	Classify  classify.Config
	Normalize normalize.Config
	Court     layout.CourtConfig
	Split     layout.SplitConfig
}

// DefaultParserConfig returns the default configuration for every stage.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		Classify:  classify.DefaultConfig(),
		Normalize: normalize.DefaultConfig(),
		Court:     layout.DefaultCourtConfig(),
		Split:     layout.DefaultSplitConfig(),
	}
}

// Parser extracts cause-list entries from an in-memory document. It is a
// pure batch transform: one document in, entries out, no retained state
// between calls.
type Parser struct {
	classifier *classify.Classifier
	normalizer *normalize.Normalizer
	courts     *layout.CourtDetector
	splits     *layout.SplitDetector
}

// NewParser creates a parser with default configuration.
func NewParser() *Parser {
	return NewParserWithConfig(DefaultParserConfig())
}

// NewParserWithConfig creates a parser with custom configuration.
func NewParserWithConfig(config ParserConfig) *Parser {
	return &Parser{
		classifier: classify.NewClassifierWithConfig(config.Classify),
		normalizer: normalize.NewNormalizerWithConfig(config.Normalize),
		courts:     layout.NewCourtDetectorWithConfig(config.Court),
		splits:     layout.NewSplitDetectorWithConfig(config.Split),
	}
}

// Parse extracts all complete entries from the document in encounter order.
// The court number in force is carried forward page by page: a page without
// its own marker inherits the last detected value, so later pages depend on
// earlier ones strictly in page order. Entries still missing a court number
// or either party name at the end of the document are dropped silently.
func (p *Parser) Parse(doc *model.Document) []model.CaseEntry {
	if doc == nil {
		return nil
	}

	var collected []*model.CaseEntry
	lastCourt := 0

	for _, page := range doc.Pages {
		court, ok := p.courts.Detect(page)
		if !ok {
			court = lastCourt
		}
		if court != 0 {
			lastCourt = court
		}

		splitX := p.splits.Detect(page)

		m := newMachine(p.classifier, p.normalizer, court, page.Number, splitX)
		for _, block := range layout.SortBlocks(page.Blocks) {
			m.feedBlock(block)
		}
		collected = append(collected, m.entries...)
	}

	entries := make([]model.CaseEntry, 0, len(collected))
	for _, e := range collected {
		if e.Complete() {
			entries = append(entries, *e)
		}
	}
	return entries
}
