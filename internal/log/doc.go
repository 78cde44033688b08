// Package log provides secure logging built on top of the standard slog
// package.
//
// Addresses are public, but the values people run through addralias next to
// them often are not: seeds chosen to personalise aliases, and now and then a
// private key or recovery phrase pasted by mistake. The SecureHandler masks
// such values before they reach the log output:
//   - Attributes whose key names a secret (seed, mnemonic, private_key, ...)
//   - Values that look like key material (PEM private keys, extended private
//     keys, WIF keys, raw 32-byte hex keys, recovery phrases)
//
// Masking applies in verbose mode too, so debug output can be shared safely.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("deriving", "short_id", r.ShortID, "seed", seed) // seed=***REDACTED***
package log
