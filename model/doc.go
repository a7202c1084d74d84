// Package model defines the shared data structures for cause-list parsing:
// the positioned-text view of a document that the extraction engine supplies
// (Document, Page, TextBlock, Word, BBox) and the parsed CaseEntry record the
// parser produces from it.
package model
