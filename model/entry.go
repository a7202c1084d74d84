package model

import "fmt"

// CaseEntry is one parsed cause-list record.
type CaseEntry struct {
	// Court is the hearing court/bench number in force when the entry was
	// read. Zero means the number was never established.
	Court int

	// Serial is the ordering token within the court's list on a page, an
	// integer or integer with one decimal sub-item, e.g. "101" or "115.30".
	Serial string

	// Petitioner is the normalized first party name.
	Petitioner string

	// Respondent is the normalized second party name, found after the
	// "versus" separator.
	Respondent string

	// Page is the 1-based page number where the serial marker was found.
	Page int
}

// Key returns the lookup key "{court}/{serial}".
func (e CaseEntry) Key() string {
	return fmt.Sprintf("%d/%s", e.Court, e.Serial)
}

// Complete reports whether the entry has a court number and both party
// names. Incomplete entries are discarded at the end of parsing, not during
// construction: a later line may still complete an open entry.
func (e CaseEntry) Complete() bool {
	return e.Court != 0 && e.Petitioner != "" && e.Respondent != ""
}
