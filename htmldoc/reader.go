// Package htmldoc reads HTML cause lists into the in-memory document model.
// Courts that publish lists as web pages use a table per court: banner
// headings above it, a header row naming the columns, then one row per
// listed case. The reader lays that content out on a synthetic page so the
// geometry-driven parser sees the same two-column shape a PDF list has: case
// details left of the advocate column, headers in the top band.
package htmldoc

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/courtlist/causelist/model"
)

// Synthetic page layout, in points. Cell columns are fixed: serial, party,
// advocate. Rows advance down the page as they are encountered.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	marginTop  = 40.0
	lineHeight = 12.0
	rowGap     = 8.0

	serialX       = 40.0
	serialWidth   = 70.0
	partyX        = 120.0
	partyWidth    = 300.0
	advocateX     = 440.0
	advocateWidth = 140.0
	bannerWidth   = pageWidth - 2*marginTop
)

// Open reads an HTML cause-list file.
func Open(filename string) (*model.Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	doc, err := OpenReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return doc, nil
}

// OpenReader parses an HTML cause list from an io.Reader. The whole file
// becomes a single page.
func OpenReader(r io.Reader) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	b := &pageBuilder{y: marginTop}
	b.walk(root)

	doc := model.NewDocument()
	doc.AddPage(b.page())
	return doc, nil
}

// pageBuilder accumulates synthetic blocks and words while walking the tree.
type pageBuilder struct {
	y      float64
	blocks []model.TextBlock
	words  []model.Word
}

// walk visits the tree, emitting banner blocks for headings and laying out
// tables row by row. Children of consumed elements are not revisited.
func (b *pageBuilder) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "h1", "h2", "h3", "h4", "caption":
			b.banner(cellText(n))
			return
		case "table":
			b.table(n)
			return
		case "script", "style":
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c)
	}
}

// banner emits heading text as a full-width block at the current position,
// so court-number detection sees it both in the page text and in the upper
// header band.
func (b *pageBuilder) banner(text string) {
	if text == "" {
		return
	}
	h := b.emit(text, serialX, bannerWidth)
	b.y += h + rowGap
}

// table lays out a cause-list table: its caption as a banner, then every row.
func (b *pageBuilder) table(n *html.Node) {
	for _, caption := range descendants(n, "caption") {
		b.banner(cellText(caption))
	}
	for _, row := range descendants(n, "tr") {
		b.row(row)
	}
}

// row emits one table row. Cells map to the fixed columns in order: serial,
// party, advocate; any extra cells extend the advocate column rightward.
func (b *pageBuilder) row(tr *html.Node) {
	cells := descendants(tr, "th", "td")
	if len(cells) == 0 {
		return
	}

	rowHeight := 0.0
	for i, cell := range cells {
		text := cellText(cell)
		if text == "" {
			continue
		}

		x, width := cellColumn(i)
		h := b.emit(text, x, width)
		rowHeight = math.Max(rowHeight, h)
	}

	b.y += rowHeight + rowGap
}

// cellColumn maps a cell index to its synthetic column geometry.
func cellColumn(i int) (x, width float64) {
	switch i {
	case 0:
		return serialX, serialWidth
	case 1:
		return partyX, partyWidth
	default:
		return advocateX + float64(i-2)*advocateWidth, advocateWidth
	}
}

// emit adds a block (and its derived words) at the given column without
// advancing the row cursor, and returns the block height.
func (b *pageBuilder) emit(text string, x, width float64) float64 {
	lines := strings.Split(text, "\n")
	height := float64(len(lines)) * lineHeight

	b.blocks = append(b.blocks, model.TextBlock{
		BBox: model.NewBBox(x, b.y, width, height),
		Text: text,
	})
	for i, line := range lines {
		lineBox := model.NewBBox(x, b.y+float64(i)*lineHeight, width, lineHeight)
		b.words = append(b.words, model.ApportionWords(line, lineBox)...)
	}
	return height
}

// page assembles the finished synthetic page.
func (b *pageBuilder) page() *model.Page {
	page := model.NewPage(1, pageWidth, math.Max(pageHeight, b.y+marginTop))
	page.Blocks = b.blocks
	page.Words = b.words

	parts := make([]string, 0, len(b.blocks))
	for _, blk := range b.blocks {
		parts = append(parts, blk.Text)
	}
	page.RawText = strings.Join(parts, "\n")
	return page
}

// descendants returns all descendant elements with one of the given tags, in
// document order, without descending into a matched element.
func descendants(n *html.Node, tags ...string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && matchesTag(c.Data, tags) {
			out = append(out, c)
			continue
		}
		out = append(out, descendants(c, tags...)...)
	}
	return out
}

func matchesTag(tag string, tags []string) bool {
	for _, t := range tags {
		if tag == t {
			return true
		}
	}
	return false
}

// cellText extracts a cell's text with <br> and nested block elements turned
// into line breaks, each line trimmed, blanks dropped.
func cellText(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)

	var lines []string
	for _, raw := range strings.Split(sb.String(), "\n") {
		if line := strings.TrimSpace(collapseSpaces(raw)); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func collectText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "br" {
			sb.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "tr":
			sb.WriteString("\n")
		}
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
