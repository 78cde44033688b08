// Package model defines the data structures shared across addralias.
//
// This package contains the following main types:
//   - Report: The aggregate produced for a single address
//   - Score: An entropy score that always serializes with one decimal place
//   - Advisory: A non-fatal observation about the input address
//
// Design decision: We separate models into their own package so that the
// derivation core, the report writers and the history store can share them
// without import cycles.
//
// The models are serializable to JSON for report output and history storage.
package model
