// Package pipeline runs derivations for many addresses and applies
// follow-up steps to each finished report.
//
// Derivation itself is pure and lives in package fingerprint. This package
// adds the boundary work around it: bounded concurrent derivation with
// errgroup, and an ordered list of steps (printing advisories, saving to
// history) that run on every report in input order.
package pipeline
