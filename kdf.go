// kdf.go: Passphrase-to-key derivation using PBKDF2-HMAC-SHA256.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sealbox

import (
	"crypto/sha256"
	"fmt"

	goerrors "github.com/agilira/go-errors"
	"golang.org/x/crypto/pbkdf2"
)

// Fixed derivation parameters. These are part of the wire contract: two parties
// exchanging sealbox ciphertexts must derive identical keys from identical
// (passphrase, salt) pairs, so the parameters cannot vary per call.
const (
	// KeySize is the length in bytes of every derived symmetric key.
	// XChaCha20-Poly1305 requires exactly 32 bytes (256 bits).
	KeySize = 32

	// Iterations is the PBKDF2 iteration count used by DeriveKey.
	Iterations = 10000
)

// DeriveKey stretches a passphrase and an optional salt into a KeySize-byte
// symmetric key using PBKDF2-HMAC-SHA256 with Iterations iterations.
//
// Derivation is deterministic: identical (passphrase, salt) pairs always yield
// the identical key. This is required so decryption can re-derive the key
// without it ever being stored or transmitted.
//
// Parameters:
//   - passphrase: The passphrase to derive the key from. An empty passphrase is
//     accepted but significantly weakens the derived key.
//   - salt: The salt to mix into derivation. A nil or empty salt is accepted and
//     treated as an empty value, not a random one; this is permitted for
//     interoperability but not recommended, since it makes the derived key a
//     pure function of the passphrase.
//
// Returns:
//   - The derived KeySize-byte key
//   - An error if derivation fails
//
// Example:
//
//	salt, _ := sealbox.GenerateSalt(32)
//	key, err := sealbox.DeriveKey([]byte("my-passphrase"), salt)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sealbox.Zeroize(key)
//
// The caller owns the returned key and should wipe it with Zeroize after use.
func DeriveKey(passphrase, salt []byte) ([]byte, error) {
	return DeriveKeyWithParams(passphrase, salt, Iterations, KeySize)
}

// DeriveKeyWithParams derives a key using PBKDF2-HMAC-SHA256 with explicit
// iteration count and key length.
//
// This is the parameterized form of DeriveKey, intended for callers with their
// own derivation profile. Keys derived with non-default parameters are NOT
// interoperable with the sealbox wire format produced by Encrypt, which fixes
// Iterations and KeySize; use DeriveKey unless you control both ends.
//
// Parameters:
//   - passphrase: The passphrase to derive the key from (may be empty)
//   - salt: The salt to use (may be nil or empty, see DeriveKey)
//   - iterations: The PBKDF2 iteration count (must be positive)
//   - keyLen: The desired key length in bytes (must be positive)
//
// Returns:
//   - The derived key as a byte slice
//   - ErrKeyDerivation if the parameter combination is invalid
func DeriveKeyWithParams(passphrase, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations <= 0 {
		richErr := goerrors.New(ErrCodeKeyDerivation, fmt.Sprintf("iteration count must be positive (got %d)", iterations))
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, richErr)
	}
	if keyLen <= 0 {
		richErr := goerrors.New(ErrCodeKeyDerivation, fmt.Sprintf("key length must be positive (got %d)", keyLen))
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, richErr)
	}

	key := pbkdf2.Key(passphrase, salt, iterations, keyLen, sha256.New)
	return key, nil
}
