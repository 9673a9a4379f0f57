// wire.go: Hexadecimal wire framing for sealed payloads.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sealbox

import (
	"encoding/hex"
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

// The wire format is hex(nonce || ciphertext || tag), lowercase on output.
// There is no version byte and no algorithm identifier: the format assumes
// both parties fix the algorithm out of band. Any framing change here breaks
// compatibility with every ciphertext already in the wild.

// EncodeWire frames a nonce and an AEAD ciphertext-with-tag into the sealbox
// wire format: the lowercase hexadecimal rendering of nonce || ciphertext.
//
// Parameters:
//   - nonce: The NonceSize-byte nonce used for encryption
//   - ciphertext: The AEAD output, including the trailing authentication tag
//
// Returns:
//   - The hexadecimal wire string
//   - ErrEncoding if the nonce is not exactly NonceSize bytes
func EncodeWire(nonce, ciphertext []byte) (string, error) {
	if len(nonce) != NonceSize {
		richErr := goerrors.New(ErrCodeEncoding, fmt.Sprintf("nonce must be %d bytes (got %d)", NonceSize, len(nonce)))
		return "", fmt.Errorf("%w: %w", ErrEncoding, richErr)
	}

	framed := make([]byte, 0, len(nonce)+len(ciphertext))
	framed = append(framed, nonce...)
	framed = append(framed, ciphertext...)
	return hex.EncodeToString(framed), nil
}

// DecodeWire parses a sealbox wire string back into its nonce and AEAD payload.
//
// Parsing is case-insensitive. The input is rejected before any cryptographic
// work if it contains a non-hexadecimal character, has odd length, or decodes
// to fewer than NonceSize+TagSize bytes: a remainder shorter than the tag can
// never authenticate, so it is malformed framing rather than a failed tag check.
//
// Parameters:
//   - encoded: The hexadecimal wire string produced by EncodeWire
//
// Returns:
//   - The NonceSize-byte nonce prefix
//   - The remaining AEAD ciphertext-with-tag payload
//   - ErrMalformedInput if the input is not valid sealbox framing
func DecodeWire(encoded string) ([]byte, []byte, error) {
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		richErr := goerrors.Wrap(err, ErrCodeMalformedInput, "ciphertext is not valid hexadecimal")
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedInput, richErr)
	}
	if len(raw) < NonceSize+TagSize {
		richErr := goerrors.New(ErrCodeMalformedInput, fmt.Sprintf("ciphertext too short: need at least %d bytes (got %d)", NonceSize+TagSize, len(raw)))
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedInput, richErr)
	}

	return raw[:NonceSize], raw[NonceSize:], nil
}
