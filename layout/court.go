package layout

import (
	"regexp"
	"strconv"

	"github.com/courtlist/causelist/model"
)

var (
	courtNumberRE  = regexp.MustCompile(`(?i)COURT\s*NO\.?\s*[:\-]?\s*(\d+)`)
	chiefJusticeRE = regexp.MustCompile(`(?i)CHIEF\s+JUSTICE'?S\s+COURT`)
)

// CourtConfig holds configuration for court-number detection.
type CourtConfig struct {
	// HeaderScanLimit is how far down the page, in points from the top, the
	// block-by-block header scan looks when the whole-page search finds
	// nothing. Blocks whose bottom edge passes the limit stop the scan.
	// Default: 180 points.
	HeaderScanLimit float64
}

// DefaultCourtConfig returns sensible default configuration.
func DefaultCourtConfig() CourtConfig {
	return CourtConfig{
		HeaderScanLimit: 180.0,
	}
}

// CourtDetector finds the hearing court number declared on a page.
type CourtDetector struct {
	config CourtConfig
}

// NewCourtDetector creates a court detector with default configuration.
func NewCourtDetector() *CourtDetector {
	return &CourtDetector{
		config: DefaultCourtConfig(),
	}
}

// NewCourtDetectorWithConfig creates a court detector with custom configuration.
func NewCourtDetectorWithConfig(config CourtConfig) *CourtDetector {
	return &CourtDetector{
		config: config,
	}
}

// Detect returns the court number declared on the page. A "Chief Justice's
// Court" banner means court 1; otherwise a "COURT NO <n>" marker is searched
// in the whole-page text and then in the upper-header blocks. The second
// return is false when the page carries no marker, in which case the caller
// falls back to the court number carried forward from earlier pages.
func (d *CourtDetector) Detect(page *model.Page) (int, bool) {
	txt := page.Text()
	if chiefJusticeRE.MatchString(txt) {
		return 1, true
	}
	if n, ok := courtNumber(txt); ok {
		return n, ok
	}

	// Upper-header scan: engines that interleave footer text into the page
	// stream can bury the marker, but the banner block still sits in the top
	// band.
	for _, b := range page.Blocks {
		if b.BBox.Bottom() > d.config.HeaderScanLimit {
			break
		}
		if chiefJusticeRE.MatchString(b.Text) {
			return 1, true
		}
		if n, ok := courtNumber(b.Text); ok {
			return n, ok
		}
	}

	return 0, false
}

// courtNumber extracts the number from a "COURT NO <n>" marker.
func courtNumber(s string) (int, bool) {
	m := courtNumberRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
