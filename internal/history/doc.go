// Package history stores derived reports in a local SQLite database.
//
// History is opt-in (derive --save). Only derived, public values are kept:
// the normalized address, its fingerprint, the short id, the alias and the
// full report as JSON. Whether a seed was used is recorded as a flag, the
// seed itself never is.
package history
