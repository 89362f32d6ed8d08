// Package common defines sentinel errors shared across the backup
// subsystem. Callers should match them with errors.Is.
package common

import "errors"

var (
	// ErrInvalidBackup means the document failed structural validation.
	// The import must be abandoned with the local dataset untouched.
	ErrInvalidBackup = errors.New("invalid backup payload")

	// ErrDecryptionFailed covers every cryptographic failure mode.
	// Wrong password and corrupted blob are deliberately indistinguishable.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrPasswordRequired means an encrypted backup was supplied without
	// a password.
	ErrPasswordRequired = errors.New("password required")

	// ErrNotFound indicates the requested stored value does not exist.
	ErrNotFound = errors.New("not found")
)
