package index

import "strings"

// ParseRefs splits a free-form query string into individual "court/serial"
// references. Commas and newlines both separate references; surrounding
// whitespace is trimmed and blanks are dropped.
func ParseRefs(s string) []string {
	var refs []string
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	for _, part := range parts {
		if ref := strings.TrimSpace(part); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}
