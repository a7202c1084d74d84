package causelist

import (
	"fmt"
	"io"
	"os"

	"github.com/courtlist/causelist/format"
	"github.com/courtlist/causelist/htmldoc"
	"github.com/courtlist/causelist/index"
	"github.com/courtlist/causelist/listing"
	"github.com/courtlist/causelist/model"
	"github.com/courtlist/causelist/stextdoc"
)

// Extractor provides a fluent interface for extracting case entries from
// cause-list files. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Loaded document
	doc    *model.Document
	opened bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		opened:   e.opened,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ensureDocument loads the source file if not already loaded.
func (e *Extractor) ensureDocument() error {
	if e.err != nil {
		return e.err
	}
	if e.opened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	f := format.Detect(e.filename)
	if f == format.Unknown {
		sniffed, err := sniff(e.filename)
		if err != nil {
			return err
		}
		f = sniffed
	}

	switch f {
	case format.StextJSON:
		doc, err := stextdoc.Open(e.filename)
		if err != nil {
			return fmt.Errorf("failed to open structured text: %w", err)
		}
		e.doc = doc
		e.opened = true
		return nil

	case format.HTML:
		doc, err := htmldoc.Open(e.filename)
		if err != nil {
			return fmt.Errorf("failed to open HTML: %w", err)
		}
		e.doc = doc
		e.opened = true
		return nil

	case format.PDF:
		return fmt.Errorf("PDF input is not read directly: convert it first with mutool convert -F stext.json -o out.json %s", e.filename)

	default:
		return fmt.Errorf("unsupported file format: %s", f)
	}
}

// sniff reads the leading bytes of a file to detect its format.
func sniff(filename string) (format.Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return format.Unknown, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	magic := make([]byte, 512)
	n, err := f.Read(magic)
	if err != nil && err != io.EOF {
		return format.Unknown, fmt.Errorf("reading %s: %w", filename, err)
	}
	return format.DetectFromMagic(magic[:n]), nil
}

// Close releases the loaded document. The readers consume their files fully
// on open, so no file handles are held; Close exists for callers that manage
// extractors uniformly. It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	e.doc = nil
	e.opened = false
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	entries, err := causelist.Open("list.json").Pages(1, 3, 5).Entries()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	entries, err := causelist.Open("list.json").PageRange(5, 10).Entries()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// WithParserConfig replaces the parser configuration used by terminal
// operations.
//
// Example:
//
//	cfg := listing.DefaultParserConfig()
//	cfg.Court.HeaderScanLimit = 240
//	entries, err := causelist.Open("list.json").WithParserConfig(cfg).Entries()
func (e *Extractor) WithParserConfig(cfg listing.ParserConfig) *Extractor {
	newExt := e.clone()
	newExt.options.parser = cfg
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document returns the loaded document with page selection applied.
func (e *Extractor) Document() (*model.Document, error) {
	if err := e.ensureDocument(); err != nil {
		return nil, err
	}
	return e.selectPages(), nil
}

// Entries parses the document and returns every complete case entry, in
// listing order.
//
// Example:
//
//	entries, err := causelist.Open("list.json").Entries()
func (e *Extractor) Entries() ([]model.CaseEntry, error) {
	if err := e.ensureDocument(); err != nil {
		return nil, err
	}
	parser := listing.NewParserWithConfig(e.options.parser)
	return parser.Parse(e.selectPages()), nil
}

// Index parses the document and builds a court/serial lookup index over the
// extracted entries.
//
// Example:
//
//	idx, err := causelist.Open("list.json").Index()
//	e, ok := idx.Lookup("2/15")
func (e *Extractor) Index() (*index.Index, error) {
	entries, err := e.Entries()
	if err != nil {
		return nil, err
	}
	return index.Build(entries), nil
}

// selectPages applies the page selection, preserving document order and
// ignoring duplicates and out-of-range numbers. A nil selection means every
// page.
func (e *Extractor) selectPages() *model.Document {
	if len(e.options.pages) == 0 {
		return e.doc
	}

	wanted := make(map[int]bool, len(e.options.pages))
	for _, p := range e.options.pages {
		wanted[p] = true
	}

	doc := model.NewDocument()
	for i, page := range e.doc.Pages {
		if wanted[i+1] {
			doc.AddPage(page)
		}
	}
	return doc
}
