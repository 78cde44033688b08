// Package extract finds wallet addresses and hex digests in free text.
//
// It lets addralias derive aliases for every address in a pasted document,
// log file or chat export without preparing a one-per-line list first.
package extract
