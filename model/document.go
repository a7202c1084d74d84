package model

// Document is an in-memory, already-extracted document. It is the contract
// between the page-rendering/text-extraction engine and the cause-list
// parser: each page exposes its text, positioned blocks, positioned words,
// and dimensions.
type Document struct {
	Pages []*Page
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{}
}

// AddPage appends a page to the document
func (d *Document) AddPage(p *Page) {
	d.Pages = append(d.Pages, p)
}

// PageCount returns the number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}
