// wire_test.go: Test cases for the hexadecimal wire framing.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sealbox

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestEncodeWire(t *testing.T) {
	nonce := make([]byte, NonceSize)
	for i := range nonce {
		nonce[i] = byte(i)
	}
	ciphertext := bytes.Repeat([]byte{0xAB}, TagSize+3)

	encoded, err := EncodeWire(nonce, ciphertext)
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	if len(encoded) != 2*(len(nonce)+len(ciphertext)) {
		t.Errorf("Expected %d hex chars, got %d", 2*(len(nonce)+len(ciphertext)), len(encoded))
	}
	if encoded != strings.ToLower(encoded) {
		t.Error("Expected lowercase hex output")
	}
	if !strings.HasPrefix(encoded, hex.EncodeToString(nonce)) {
		t.Error("Expected encoded output to start with the hex nonce")
	}
}

func TestEncodeWire_InvalidNonceSize(t *testing.T) {
	ciphertext := make([]byte, TagSize)

	for _, size := range []int{0, 1, NonceSize - 1, NonceSize + 1, 64} {
		_, err := EncodeWire(make([]byte, size), ciphertext)
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("Expected ErrEncoding for %d-byte nonce, got %v", size, err)
		}
	}
}

func TestDecodeWire(t *testing.T) {
	nonce := make([]byte, NonceSize)
	for i := range nonce {
		nonce[i] = byte(0xF0 | i)
	}
	payload := bytes.Repeat([]byte{0x5C}, TagSize+7)

	encoded, err := EncodeWire(nonce, payload)
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}

	gotNonce, gotPayload, err := DecodeWire(encoded)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if !bytes.Equal(gotNonce, nonce) {
		t.Error("Decoded nonce does not match original")
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Error("Decoded payload does not match original")
	}

	// Uppercase input is accepted and decodes identically
	upperNonce, upperPayload, err := DecodeWire(strings.ToUpper(encoded))
	if err != nil {
		t.Fatalf("Failed to decode uppercase input: %v", err)
	}
	if !bytes.Equal(upperNonce, nonce) || !bytes.Equal(upperPayload, payload) {
		t.Error("Uppercase input decoded differently from lowercase")
	}
}

func TestDecodeWire_Malformed(t *testing.T) {
	minimal := strings.Repeat("00", NonceSize+TagSize)

	tests := []struct {
		name  string
		input string
	}{
		{"empty_string", ""},
		{"odd_length", minimal + "a"},
		{"non_hex_character", strings.Repeat("00", NonceSize+TagSize-1) + "zz"},
		{"whitespace", minimal[:len(minimal)-2] + " a"},
		{"one_byte_short", strings.Repeat("00", NonceSize+TagSize-1)},
		{"nonce_only", strings.Repeat("00", NonceSize)},
		{"single_byte", "ff"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeWire(tc.input)
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Expected ErrMalformedInput, got %v", err)
			}
		})
	}

	// The minimum valid frame is exactly NonceSize+TagSize decoded bytes
	gotNonce, gotPayload, err := DecodeWire(minimal)
	if err != nil {
		t.Fatalf("Expected minimum-length frame to decode, got %v", err)
	}
	if len(gotNonce) != NonceSize {
		t.Errorf("Expected %d-byte nonce, got %d", NonceSize, len(gotNonce))
	}
	if len(gotPayload) != TagSize {
		t.Errorf("Expected %d-byte payload, got %d", TagSize, len(gotPayload))
	}
}
