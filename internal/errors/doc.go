// Package errors defines the sentinel errors returned by Printvault.
//
// Errors are grouped into three kinds that mirror the failure classes of
// the store: ErrStorage (filesystem), ErrFormat (malformed persisted data),
// and ErrAuthentication (AEAD verification). Specific sentinels such as
// ErrBadKeyLength wrap into one of these kinds at the point of use.
//
// Callers branch on cause with errors.Is:
//
//	if errors.Is(err, apperrors.ErrAuthentication) {
//	    // prompt for re-entry of the secret
//	}
//
// No operation in this module lets an error escape as a panic; the kinds
// exist so callers can decide whether to retry, re-prompt, or treat the
// store as uninitialized.
package errors
