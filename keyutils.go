// keyutils.go: Nonce/salt generation, zeroization, and key fingerprinting.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sealbox

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	goerrors "github.com/agilira/go-errors"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// NonceSize is the length in bytes of every nonce, fixed by the
	// XChaCha20-Poly1305 construction (192 bits). The extended nonce is what
	// makes per-call random generation safe: the collision probability across
	// independent callers is negligible without any counter or coordination.
	NonceSize = chacha20poly1305.NonceSizeX

	// TagSize is the length in bytes of the Poly1305 authentication tag
	// appended to every ciphertext.
	TagSize = chacha20poly1305.Overhead
)

// GenerateNonce generates a cryptographically secure random NonceSize-byte nonce.
//
// A fresh nonce is drawn from the operating system's CSPRNG for every call,
// with no session state and no cross-call correlation. Nonce reuse under the
// same key breaks both confidentiality and authenticity, so predictable or
// repeated nonces are a correctness violation, not a performance concern.
//
// Returns:
//   - A NonceSize-byte random nonce
//   - ErrNonceGen if the system random source fails
//
// Example:
//
//	nonce, err := sealbox.GenerateNonce()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Generated nonce length:", len(nonce)) // Output: 24
//
// Encrypt calls this internally; most callers never need it directly.
func GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		richErr := goerrors.Wrap(err, ErrCodeNonceGen, "failed to generate nonce")
		return nil, fmt.Errorf("%w: %w", ErrNonceGen, richErr)
	}
	return nonce, nil
}

// GenerateSalt generates a cryptographically secure random salt of the given size.
//
// Sealbox accepts a missing salt for interoperability, but a random salt of at
// least 16 bytes is strongly recommended: it prevents precomputed-dictionary
// attacks against the derived key. The salt is not secret and can be stored or
// transmitted alongside the ciphertext.
//
// Parameters:
//   - size: The desired salt length in bytes (must be positive)
//
// Returns:
//   - A byte slice containing the random salt
//   - An error if the size is invalid or the random source fails
//
// Example:
//
//	salt, err := sealbox.GenerateSalt(32)
//	if err != nil {
//		log.Fatal(err)
//	}
func GenerateSalt(size int) ([]byte, error) {
	if size <= 0 {
		return nil, goerrors.New("INVALID_SALT_SIZE", "salt size must be positive")
	}
	salt := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, goerrors.Wrap(err, "SALT_GEN_ERROR", "failed to generate salt")
	}
	return salt, nil
}

// Zeroize securely wipes a byte slice from memory.
//
// This function overwrites all bytes in the slice with zeros to prevent
// sensitive data from remaining in memory after use. Sealbox wipes every
// derived key it creates; callers should use Zeroize on their own passphrase
// and salt buffers once they are no longer needed.
//
// Note: This function modifies the original slice in place.
//
// Parameters:
//   - b: The byte slice to zeroize
//
// Example:
//
//	passphrase := []byte("my-passphrase")
//	ciphertext, _ := sealbox.Encrypt("data", passphrase, salt)
//	sealbox.Zeroize(passphrase)
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// KeyFingerprint generates a short identifier for a key (non-cryptographic).
//
// The fingerprint is the first 8 bytes of the key's SHA-256 hash, rendered as
// a 16-character hexadecimal string. It is useful for logging and debugging
// without exposing the key material itself: the fingerprint cannot be inverted
// back into the key.
//
// Parameters:
//   - key: The key to fingerprint
//
// Returns:
//   - A 16-character hexadecimal fingerprint
//   - An empty string if the key is empty
//
// Example:
//
//	key, _ := sealbox.DeriveKey(passphrase, salt)
//	fmt.Println("Key fingerprint:", sealbox.KeyFingerprint(key)) // e.g., "a1b2c3d4e5f67890"
func KeyFingerprint(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	hash := sha256.Sum256(key)
	return fmt.Sprintf("%016x", hash[:8])
}
