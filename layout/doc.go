// Package layout recovers per-page geometry from a cause list: the hearing
// court number in force on the page and the x boundary separating the
// case-details column from the advocate column. Both detectors degrade
// through fallback chains rather than fail, so a malformed page still parses.
package layout
