// encryption.go: Passphrase-based authenticated encryption using XChaCha20-Poly1305.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sealbox

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	goerrors "github.com/agilira/go-errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// newAEAD builds the XChaCha20-Poly1305 instance for a derived key.
// The key is always KeySize bytes when it comes out of DeriveKey, so a
// construction failure here means the key material itself is invalid.
func newAEAD(key []byte) (cipher.AEAD, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		richErr := goerrors.Wrap(err, ErrCodeKeyDerivation, "failed to initialize cipher from derived key")
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, richErr)
	}
	return aead, nil
}

// EncryptBytes encrypts a plaintext byte slice under a passphrase using
// XChaCha20-Poly1305 authenticated encryption.
//
// The passphrase and optional salt are stretched into a one-shot key with
// DeriveKey, a fresh random nonce is drawn for this call only, and the result
// is framed with EncodeWire. The derived key is wiped before the function
// returns, on every path. The passphrase, salt, and plaintext slices are
// caller-owned and are not modified.
//
// Parameters:
//   - plaintext: The byte slice to encrypt (can be empty)
//   - passphrase: The passphrase to encrypt under (see DeriveKey for caveats)
//   - salt: Optional derivation salt; nil behaves as an empty salt
//
// Returns:
//   - The hexadecimal wire string containing nonce, ciphertext, and tag
//   - An error if derivation, nonce generation, or encoding fails
//
// Example:
//
//	salt, _ := sealbox.GenerateSalt(32)
//	data := []byte("sensitive binary data")
//	ciphertext, err := sealbox.EncryptBytes(data, []byte("my-passphrase"), salt)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Encrypted:", ciphertext)
//
// Empty plaintext is supported and will result in a valid ciphertext containing
// only the nonce and authentication tag. Two calls with identical inputs produce
// different wire strings because the nonce is randomized per call.
func EncryptBytes(plaintext, passphrase, salt []byte) (string, error) {
	key, err := DeriveKey(passphrase, salt)
	if err != nil {
		return "", err
	}
	defer Zeroize(key)

	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	// Use buffer pooling for the nonce to reduce allocations
	nonceBuffer := getBuffer(NonceSize)
	defer putBuffer(nonceBuffer)
	nonce := (*nonceBuffer)[:NonceSize]

	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		richErr := goerrors.Wrap(err, ErrCodeNonceGen, "failed to generate nonce")
		return "", fmt.Errorf("%w: %w", ErrNonceGen, richErr)
	}

	// Seal into a pooled scratch buffer; EncodeWire copies the bytes out,
	// so the scratch (and any key-dependent state in it) is zeroed on return.
	expectedSize := len(plaintext) + aead.Overhead()
	sealedBuf := getDynamicBuffer()
	defer putDynamicBuffer(sealedBuf)

	// Preallocate capacity to avoid resize during Seal
	if cap(sealedBuf) < expectedSize {
		sealedBuf = make([]byte, 0, expectedSize)
	}

	sealed := aead.Seal(sealedBuf, nonce, plaintext, nil) // #nosec G407 -- nonce is generated from crypto/rand, not hardcoded
	return EncodeWire(nonce, sealed)
}

// DecryptBytes authenticates and decrypts a sealbox wire string under a
// passphrase, returning the original plaintext.
//
// The wire string is parsed with DecodeWire, the key is re-derived from the
// same passphrase and salt used for encryption, and the Poly1305 tag is
// verified before a single plaintext byte is produced. On any failure the
// function returns no partial output. The derived key is wiped before the
// function returns, on every path.
//
// Parameters:
//   - encryptedText: The hexadecimal wire string produced by EncryptBytes
//   - passphrase: The same passphrase used for encryption
//   - salt: The same salt used for encryption (nil if none was used)
//
// Returns:
//   - The decrypted plaintext as a byte slice
//   - ErrMalformedInput if the wire string is not valid sealbox framing
//   - ErrAuthentication if the tag does not verify (tampering, wrong
//     passphrase, or wrong salt)
//
// Example:
//
//	plaintext, err := sealbox.DecryptBytes(ciphertext, []byte("my-passphrase"), salt)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Decrypted:", string(plaintext))
//
// An ErrAuthentication outcome is deterministic for given inputs; retrying
// the call without changing passphrase, salt, or ciphertext cannot succeed.
func DecryptBytes(encryptedText string, passphrase, salt []byte) ([]byte, error) {
	nonce, payload, err := DecodeWire(encryptedText)
	if err != nil {
		return nil, err
	}

	key, err := DeriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer Zeroize(key)

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	// Open into a pooled scratch buffer for moderate sizes; putDynamicBuffer
	// wipes the full capacity, so plaintext never lingers in pool memory
	// after the copy out.
	var destBuffer []byte
	if len(payload) <= 64*1024 {
		plaintextBuffer := getDynamicBuffer()
		defer putDynamicBuffer(plaintextBuffer)
		destBuffer = plaintextBuffer
	}

	plaintext, err := aead.Open(destBuffer[:0], nonce, payload, nil)
	if err != nil {
		richErr := goerrors.Wrap(err, ErrCodeAuthentication, "authentication failed (tampered data, wrong passphrase, or wrong salt)")
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, richErr)
	}

	// Copy the plaintext into a new slice to avoid references to the pooled buffer
	result := make([]byte, len(plaintext))
	copy(result, plaintext)
	return result, nil
}

// Encrypt encrypts a plaintext string under a passphrase.
//
// This is a convenience wrapper around EncryptBytes that works with strings.
// See EncryptBytes for the full contract.
//
// Example:
//
//	ciphertext, err := sealbox.Encrypt("sensitive data", []byte("my-passphrase"), salt)
//	if err != nil {
//		log.Fatal(err)
//	}
func Encrypt(plaintext string, passphrase, salt []byte) (string, error) {
	return EncryptBytes([]byte(plaintext), passphrase, salt)
}

// Decrypt authenticates and decrypts a sealbox wire string under a passphrase,
// returning the plaintext as a string.
//
// This is a convenience wrapper around DecryptBytes that works with strings.
// See DecryptBytes for the full contract.
//
// Example:
//
//	plaintext, err := sealbox.Decrypt(ciphertext, []byte("my-passphrase"), salt)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Decrypted:", plaintext)
func Decrypt(encryptedText string, passphrase, salt []byte) (string, error) {
	plaintext, err := DecryptBytes(encryptedText, passphrase, salt)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
