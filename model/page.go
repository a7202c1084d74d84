package model

import (
	"strings"
	"unicode"
)

// TextBlock is a positioned run of text on a page, typically a handful of
// lines the extraction engine grouped together. Block text keeps its internal
// newlines; the parser splits it back into lines.
type TextBlock struct {
	BBox BBox
	Text string
}

// Word is a single positioned word.
type Word struct {
	BBox BBox
	Text string
}

// Page holds the extraction engine's view of a single page.
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points

	// RawText is the engine-supplied whole-page text, when available.
	RawText string

	Blocks []TextBlock
	Words  []Word
}

// NewPage creates a new page with given dimensions
func NewPage(number int, width, height float64) *Page {
	return &Page{
		Number: number,
		Width:  width,
		Height: height,
	}
}

// Text returns the whole-page text: the engine-supplied text when present,
// otherwise the block texts joined in stored order.
func (p *Page) Text() string {
	if p.RawText != "" {
		return p.RawText
	}

	parts := make([]string, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, "\n")
}

// ApportionWords splits a line of text into positioned words, dividing the
// line box horizontally in proportion to rune count. Engines that only report
// line-level geometry get estimated word boxes that stay inside the line,
// which is all the header scans need.
func ApportionWords(line string, box BBox) []Word {
	runes := []rune(line)
	if len(runes) == 0 {
		return nil
	}

	perRune := box.Width / float64(len(runes))

	var words []Word
	start := -1
	for i := 0; i <= len(runes); i++ {
		atEnd := i == len(runes)
		if !atEnd && !unicode.IsSpace(runes[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			x0 := box.X + float64(start)*perRune
			x1 := box.X + float64(i)*perRune
			words = append(words, Word{
				BBox: Rect(x0, box.Top(), x1, box.Bottom()),
				Text: string(runes[start:i]),
			})
			start = -1
		}
	}

	return words
}
