// Package cryptox implements the export codec: password-based
// authenticated encryption for backup files. The blob layout is
// Magic || salt || nonce || AES-256-GCM ciphertext+tag.
package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/atomixxxx/cuisine-app/internal/common"
)

// Magic prefixes every encrypted export. Plaintext JSON can never start
// with these bytes, so a prefix check is enough to branch import
// handling.
const Magic = "CUISINE_ENC_V1"

const (
	saltSize  = 16
	nonceSize = 12
	keySize   = 32

	// Key derivation is deliberately expensive and accepted as a
	// one-shot cost per export or import.
	kdfRounds = 100_000
)

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfRounds, keySize, sha256.New)
}

func newAEAD(password string, salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt seals plaintext under a key derived from password. Salt and
// nonce are freshly random on every call and never reused.
func Encrypt(plaintext []byte, password string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	aead, err := newAEAD(password, salt)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(Magic)+saltSize+nonceSize+len(plaintext)+aead.Overhead())
	out = append(out, Magic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, plaintext, nil)...)
	return out, nil
}

// Decrypt opens a blob produced by Encrypt. Every failure mode (wrong
// password, truncation, tampering) surfaces as the same
// common.ErrDecryptionFailed and never as partially decrypted bytes.
func Decrypt(blob []byte, password string) ([]byte, error) {
	if !IsEncrypted(blob) || len(blob) < len(Magic)+saltSize+nonceSize {
		return nil, common.ErrDecryptionFailed
	}
	rest := blob[len(Magic):]
	salt, rest := rest[:saltSize], rest[saltSize:]
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	aead, err := newAEAD(password, salt)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	return plaintext, nil
}

// IsEncrypted reports whether data carries the encrypted-export magic.
func IsEncrypted(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Magic))
}
