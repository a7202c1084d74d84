// Package listing assembles cause-list entries from positioned page text. A
// small per-page state machine stitches serial markers, petitioner lines,
// "versus" separators, and respondent lines into records; the parser runs it
// across pages, carries the court number forward, and drops entries that
// never complete.
package listing
