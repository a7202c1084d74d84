package layout

import (
	"math"
	"strings"

	"github.com/courtlist/causelist/model"
)

// SplitConfig holds configuration for column-split detection.
type SplitConfig struct {
	// HeaderBandRatio is the fraction of page height, from the top, searched
	// for column-header words. Default: 0.35.
	HeaderBandRatio float64

	// Margin is added past the right edge of a "petitioner/respondent"
	// header when that fallback anchors the split. Default: 10 points.
	Margin float64

	// DefaultRatio positions the split as a fraction of page width when no
	// header words are found. Default: 0.70.
	DefaultRatio float64
}

// DefaultSplitConfig returns sensible default configuration.
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{
		HeaderBandRatio: 0.35,
		Margin:          10.0,
		DefaultRatio:    0.70,
	}
}

// SplitDetector finds the x boundary between the case-details column on the
// left and the advocate column on the right.
type SplitDetector struct {
	config SplitConfig
}

// NewSplitDetector creates a split detector with default configuration.
func NewSplitDetector() *SplitDetector {
	return &SplitDetector{
		config: DefaultSplitConfig(),
	}
}

// NewSplitDetectorWithConfig creates a split detector with custom configuration.
func NewSplitDetectorWithConfig(config SplitConfig) *SplitDetector {
	return &SplitDetector{
		config: config,
	}
}

// Detect returns the column split x for a page. The primary anchor is the
// leftmost "Advocate" header word in the upper band, which absorbs per-page
// header drift; a "petitioner/respondent" header is the fallback anchor, and
// a page without usable headers splits at a fixed fraction of its width.
func (d *SplitDetector) Detect(page *model.Page) float64 {
	band := page.Height * d.config.HeaderBandRatio

	splitX := math.Inf(1)
	for _, w := range page.Words {
		if w.BBox.Top() >= band {
			continue
		}
		if strings.HasPrefix(strings.ToLower(w.Text), "advocate") {
			splitX = math.Min(splitX, w.BBox.Left())
		}
	}
	if !math.IsInf(splitX, 1) {
		return splitX
	}

	rightEdge := math.Inf(-1)
	for _, w := range page.Words {
		if w.BBox.Top() >= band {
			continue
		}
		if strings.Contains(strings.ToLower(w.Text), "petitioner/respondent") {
			rightEdge = math.Max(rightEdge, w.BBox.Right())
		}
	}
	if !math.IsInf(rightEdge, -1) {
		return rightEdge + d.config.Margin
	}

	return page.Width * d.config.DefaultRatio
}
