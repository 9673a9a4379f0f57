// errors.go: Error taxonomy for the passphrase encryption pipeline.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sealbox

import "errors"

// Public standard errors for drop-in compatibility.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrMalformedInput is returned when the ciphertext text is not valid
	// hexadecimal, has odd length, or is too short to contain a nonce and tag.
	ErrMalformedInput = errors.New("sealbox: malformed ciphertext")

	// ErrAuthentication is returned when tag verification fails during
	// decryption: tampered data, wrong passphrase, or wrong/missing salt.
	// Retrying with the same inputs cannot change the outcome.
	ErrAuthentication = errors.New("sealbox: authentication failed")

	// ErrKeyDerivation is returned when key derivation fails due to an
	// invalid parameter combination.
	ErrKeyDerivation = errors.New("sealbox: key derivation error")

	// ErrEncoding is returned when the wire encoding step cannot produce
	// output. This is an internal failure and should be treated as fatal.
	ErrEncoding = errors.New("sealbox: encoding error")

	// ErrNonceGen is returned when the system CSPRNG fails to produce a nonce.
	ErrNonceGen = errors.New("sealbox: nonce generation error")
)

// Error codes for rich error handling
const (
	ErrCodeMalformedInput = "SEALBOX_MALFORMED_INPUT"
	ErrCodeAuthentication = "SEALBOX_AUTH_FAILED"
	ErrCodeKeyDerivation  = "SEALBOX_KDF_FAILED"
	ErrCodeEncoding       = "SEALBOX_ENCODING_FAILED"
	ErrCodeNonceGen       = "SEALBOX_NONCE_GEN"
)
