// Package main provides the entry point for the addralias CLI.
//
// addralias turns a hex address (for example a wallet address) into a
// pronounceable alias, a text identicon and an entropy score. Everything
// is computed offline from the SHA-256 digest of the normalized address.
//
// Usage:
//
//	addralias derive <address>
//	addralias derive --seed work --json <address>
//	echo 0xdeadbeef | addralias derive
//
// See --help for all available options.
package main

func main() {
	Execute()
}
