// Package index answers point lookups over parsed cause-list entries, keyed
// by "court/serial" reference.
package index

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/courtlist/causelist/model"
)

// Index maps "{court}/{serial}" keys to entries. A serial can legitimately
// repeat across re-lists; only the first listing answers a lookup. The index
// holds copies for lookup only and never mutates the parse result.
type Index struct {
	keys    []string
	entries map[string]model.CaseEntry
}

// Build indexes entries in encounter order; the first entry seen for a key
// wins.
func Build(entries []model.CaseEntry) *Index {
	idx := &Index{
		entries: make(map[string]model.CaseEntry, len(entries)),
	}
	for _, e := range entries {
		key := e.Key()
		if _, ok := idx.entries[key]; ok {
			continue
		}
		idx.entries[key] = e
		idx.keys = append(idx.keys, key)
	}
	return idx
}

// Lookup returns the entry for an exact "court/serial" reference. The second
// return is false on a miss; a miss is an answer, never an error.
func (x *Index) Lookup(ref string) (model.CaseEntry, bool) {
	e, ok := x.entries[ref]
	return e, ok
}

// Len returns the number of distinct keys.
func (x *Index) Len() int {
	return len(x.keys)
}

// Keys returns the keys in insertion order.
func (x *Index) Keys() []string {
	keys := make([]string, len(x.keys))
	copy(keys, x.keys)
	return keys
}

// SortedKeys returns every key ordered by court number ascending, then by
// serial compared as a decimal value. This ordering is the dump-all output
// contract.
func (x *Index) SortedKeys() []string {
	keys := x.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		ci, si := splitKey(keys[i])
		cj, sj := splitKey(keys[j])
		if ci != cj {
			return ci < cj
		}
		return si < sj
	})
	return keys
}

// splitKey breaks "court/serial" into its sortable parts.
func splitKey(key string) (int, float64) {
	c, s, _ := strings.Cut(key, "/")
	court, _ := strconv.Atoi(c)
	serial, _ := strconv.ParseFloat(s, 64)
	return court, serial
}

// Format renders an entry as "{court}/{serial} - {petitioner} Vs {respondent}".
func Format(e model.CaseEntry) string {
	return fmt.Sprintf("%d/%s - %s Vs %s", e.Court, e.Serial, e.Petitioner, e.Respondent)
}
