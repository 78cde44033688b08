// Package fingerprint derives a human-friendly alias, a symmetric identicon
// and an entropy score from a hexadecimal address, entirely offline.
//
// Every function in this package is pure: the output depends only on the
// arguments, nothing is cached, and all functions are safe for concurrent use.
//
// # Pipeline
//
//	raw ──Normalize──► normalized ──Digest──► fingerprint / short id
//	                        │
//	                        ├──Alias(seed)──► "Jugmugqugnob"
//	                        ├──Identicon────► ["  █ █  ", ...]
//	                        └──EntropyScore─► 53.9
//
// # Seed asymmetry
//
// Only the alias is seeded. The fingerprint, short id, identicon and entropy
// score are always computed from the unseeded normalized address, so that a
// seed can vary the name shown to a user without changing the visual
// fingerprint or the id used to look the address up again. This is
// intentional and must not be "fixed".
package fingerprint
