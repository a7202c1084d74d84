// Package stextdoc reads MuPDF structured-text JSON into the in-memory
// document model. PDF cause lists are converted first:
//
//	mutool convert -F stext.json -o list.json list.pdf
//
// Structured text keeps the positioned blocks and lines the column-geometry
// parser needs, without this module carrying a PDF rendering engine.
package stextdoc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/courtlist/causelist/model"
)

// Fallback page size (US Letter, points) for pages that report no dimensions
// and carry no content to infer them from.
const (
	defaultWidth  = 612.0
	defaultHeight = 792.0
)

// Open reads a structured-text JSON file.
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

// OpenReader parses structured-text JSON from an io.Reader.
func OpenReader(r io.Reader) (*model.Document, error) {
	var st stextDocument
	if err := json.NewDecoder(r).Decode(&st); err != nil {
		return nil, fmt.Errorf("decoding structured text: %w", err)
	}

	doc := model.NewDocument()
	for i, sp := range st.Pages {
		doc.AddPage(buildPage(i+1, sp))
	}
	return doc, nil
}

// buildPage converts one structured-text page into the document model.
func buildPage(number int, sp stextPage) *model.Page {
	page := model.NewPage(number, sp.Width, sp.Height)

	var pageText []string
	for _, sb := range sp.Blocks {
		// Image blocks carry no lines; only text blocks contribute.
		if sb.Type != "" && sb.Type != "text" {
			continue
		}

		lines := make([]string, 0, len(sb.Lines))
		for _, ln := range sb.Lines {
			lines = append(lines, ln.Text)
			page.Words = append(page.Words, model.ApportionWords(ln.Text, bbox(ln.BBox))...)
		}

		text := strings.Join(lines, "\n")
		if strings.TrimSpace(text) == "" {
			continue
		}

		page.Blocks = append(page.Blocks, model.TextBlock{
			BBox: bbox(sb.BBox),
			Text: text,
		})
		pageText = append(pageText, text)
	}
	page.RawText = strings.Join(pageText, "\n")

	if page.Width <= 0 || page.Height <= 0 {
		inferSize(page)
	}
	return page
}

func bbox(b stextBBox) model.BBox {
	return model.NewBBox(b.X, b.Y, b.W, b.H)
}

// inferSize fills in missing page dimensions from the content extent, so the
// header band and default split ratios stay meaningful, and falls back to US
// Letter for an empty page.
func inferSize(page *model.Page) {
	if len(page.Blocks) == 0 {
		if page.Width <= 0 {
			page.Width = defaultWidth
		}
		if page.Height <= 0 {
			page.Height = defaultHeight
		}
		return
	}

	extent := page.Blocks[0].BBox
	for _, b := range page.Blocks[1:] {
		extent = extent.Union(b.BBox)
	}
	if page.Width <= 0 {
		page.Width = extent.Right()
	}
	if page.Height <= 0 {
		page.Height = extent.Bottom()
	}
}
