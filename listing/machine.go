package listing

import (
	"strings"

	"github.com/courtlist/causelist/classify"
	"github.com/courtlist/causelist/model"
	"github.com/courtlist/causelist/normalize"
)

// machine assembles entries from one page's lines. It tracks the entry under
// construction and whether the next content line belongs to the respondent.
type machine struct {
	classifier *classify.Classifier
	normalizer *normalize.Normalizer

	court  int
	page   int
	splitX float64

	current           *model.CaseEntry
	captureRespondent bool

	// entries collects every entry opened on the page, complete or not; the
	// parser filters for completeness once the whole document is read.
	entries []*model.CaseEntry
}

func newMachine(classifier *classify.Classifier, normalizer *normalize.Normalizer, court, page int, splitX float64) *machine {
	return &machine{
		classifier: classifier,
		normalizer: normalizer,
		court:      court,
		page:       page,
		splitX:     splitX,
	}
}

// feedBlock splits a block into trimmed lines and feeds each one. The block's
// left edge against the split x decides which column all of its lines belong
// to.
func (m *machine) feedBlock(block model.TextBlock) {
	left := block.BBox.Left() < m.splitX

	for _, raw := range strings.Split(block.Text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		m.feedLine(line, left)
	}
}

// feedLine advances the machine by one line.
func (m *machine) feedLine(line string, left bool) {
	cls := m.classifier.Classify(line)

	switch {
	case left && cls.Kind == classify.Serial:
		// A new serial abandons any open entry; the completeness filter at
		// the end of parsing removes it if it never filled. The rest of the
		// marker line is the case number, which is not captured.
		m.current = &model.CaseEntry{
			Court:  m.court,
			Serial: cls.Serial,
			Page:   m.page,
		}
		m.entries = append(m.entries, m.current)
		m.captureRespondent = false

	case cls.Kind == classify.Meta:
		// Boilerplate, regardless of column.

	case cls.Kind == classify.Versus:
		// A repeated separator before the respondent arrives is the same
		// separator, not a reset.
		m.captureRespondent = true

	case left && cls.Kind == classify.Content && m.current != nil:
		if m.current.Petitioner == "" && !m.captureRespondent {
			m.current.Petitioner = m.normalizer.Name(line)
		} else if m.captureRespondent && m.current.Respondent == "" {
			m.current.Respondent = m.normalizer.Name(line)
			m.captureRespondent = false
		}

		// Right-column content is advocate detail; serial-shaped lines in
		// the right column are row artifacts. Both are ignored.
	}
}
