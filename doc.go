// Package sealbox provides passphrase-based authenticated encryption for Go applications.
//
// The package turns a caller-supplied passphrase (plus an optional salt) into a
// self-contained, transportable ciphertext and back again, without the caller ever
// handling keys, nonces, or wire framing. It offers:
//   - XChaCha20-Poly1305 authenticated encryption with random 24-byte nonces
//   - PBKDF2-HMAC-SHA256 key derivation from passphrases (fixed, interoperable parameters)
//   - A compact hexadecimal wire format: hex(nonce || ciphertext || tag)
//   - Cryptographically secure nonce and salt generation
//   - Secure memory zeroization and buffer pooling for sensitive data
//
// Exactly one algorithm pairing is supported. There is no negotiation, no version
// byte, and no embedded algorithm identifier: both parties fix the algorithm out
// of band, and the same passphrase and salt must be supplied to both Encrypt and
// Decrypt.
//
// # Quick Start
//
// Basic encryption and decryption:
//
//	salt, err := sealbox.GenerateSalt(32)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Encrypt some data under a passphrase
//	ciphertext, err := sealbox.Encrypt("sensitive data", []byte("my-passphrase"), salt)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Decrypt with the same passphrase and salt
//	plaintext, err := sealbox.Decrypt(ciphertext, []byte("my-passphrase"), salt)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(plaintext) // Output: sensitive data
//
// # Wire Format
//
// The only persisted artifact is a lowercase hexadecimal string:
//
//	hex(nonce[24] || ciphertext[len(plaintext)] || tag[16])
//
// Decoding is case-insensitive. Any input that is not valid hexadecimal, has odd
// length, or decodes to fewer than NonceSize+TagSize bytes is rejected before any
// cryptographic work is attempted.
//
// # Error Handling
//
// All functions return standard Go errors for maximum compatibility.
// For advanced error handling with rich error details, the library integrates
// with github.com/agilira/go-errors.
//
// Example error handling:
//
//	plaintext, err := sealbox.Decrypt(ciphertext, passphrase, salt)
//	if err != nil {
//		if errors.Is(err, sealbox.ErrMalformedInput) {
//			// Ciphertext is not valid hex or is too short
//		} else if errors.Is(err, sealbox.ErrAuthentication) {
//			// Tampered data, wrong passphrase, or wrong salt
//		}
//		// Handle other errors
//	}
//
// Authentication failures are final: retrying a failed Decrypt with the same
// inputs cannot succeed, and no partial plaintext is ever returned.
//
// # Security Considerations
//
// This library uses industry-standard cryptographic algorithms:
//   - XChaCha20-Poly1305 for authenticated encryption; the extended 192-bit nonce
//     makes random nonce generation safe without counters or coordination
//   - PBKDF2-HMAC-SHA256 (10000 iterations) for passphrase-based key derivation
//   - Cryptographically secure random number generation (crypto/rand)
//   - Derived keys are wiped on every exit path, including error paths
//   - Buffer pooling with security-first design (automatic zeroing on return)
//
// An empty passphrase and a missing salt are both accepted for interoperability,
// but both weaken the derived key. Callers are strongly encouraged to supply a
// random salt (see GenerateSalt) and to wipe their own passphrase buffers with
// Zeroize once they are no longer needed. Error messages never contain passphrase,
// salt, or key material.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package sealbox
