// Package causelist provides a fluent API for extracting case entries from
// court cause lists.
//
// Basic usage:
//
//	entries, err := causelist.Open("list.json").Entries()
//	if err != nil {
//	    // handle error
//	}
//
// Looking up cases by court/serial reference:
//
//	idx, err := causelist.Open("list.json").Index()
//	if err != nil {
//	    // handle error
//	}
//	if e, ok := idx.Lookup("14/115.30"); ok {
//	    fmt.Println(index.Format(e))
//	}
//
// PDF lists are converted to MuPDF structured text first:
//
//	mutool convert -F stext.json -o list.json list.pdf
//
// For advanced use cases, the lower-level listing and layout packages are
// also available.
package causelist

import (
	"github.com/courtlist/causelist/model"
)

// Open opens a cause-list file and returns an Extractor for fluent
// configuration. The format is detected from the extension, falling back to
// content sniffing.
//
// Example:
//
//	entries, err := causelist.Open("list.json").Entries()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-built document. This is
// useful when the positioned text comes from a custom source.
//
// Example:
//
//	entries, err := causelist.FromDocument(doc).Entries()
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		opened:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	idx := causelist.Must(causelist.Open("list.json").Index())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
