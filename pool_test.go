// pool_test.go: Test cases for the sensitive-buffer pool.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sealbox

import (
	"testing"
)

func TestGetBuffer_Sizes(t *testing.T) {
	for _, size := range []int{1, NonceSize, KeySize, KeySize + 1, 4096} {
		buf := getBuffer(size)
		if buf == nil {
			t.Fatalf("Expected non-nil buffer for size %d", size)
		}
		if len(*buf) != size {
			t.Errorf("Expected buffer length %d, got %d", size, len(*buf))
		}
		putBuffer(buf)
	}
}

func TestPutBuffer_ZeroesContents(t *testing.T) {
	buf := getBuffer(NonceSize)
	for i := range *buf {
		(*buf)[i] = byte(i + 1)
	}
	backing := (*buf)[:cap(*buf)]

	putBuffer(buf)
	for i, b := range backing {
		if b != 0 {
			t.Fatalf("Expected pooled buffer byte %d to be zeroed, got %#x", i, b)
		}
	}

	// nil is a safe no-op
	putBuffer(nil)
}

func TestDynamicBuffer_ZeroesOnReturn(t *testing.T) {
	buf := getDynamicBuffer()
	if len(buf) != 0 {
		t.Errorf("Expected zero-length dynamic buffer, got length %d", len(buf))
	}

	buf = append(buf, []byte("decrypted-plaintext-scratch")...)
	backing := buf[:cap(buf)]

	putDynamicBuffer(buf)
	for i, b := range backing {
		if b != 0 {
			t.Fatalf("Expected dynamic buffer byte %d to be zeroed, got %#x", i, b)
		}
	}

	// Zero-capacity buffers are dropped without panicking
	putDynamicBuffer(nil)
	putDynamicBuffer([]byte{})
}

func TestDynamicBuffer_OversizedNotPooled(t *testing.T) {
	big := make([]byte, 0, 128*1024)
	big = append(big, 0xFF)

	// Must still be zeroed even though it will not re-enter the pool
	backing := big[:cap(big)]
	putDynamicBuffer(big)
	if backing[0] != 0 {
		t.Error("Expected oversized buffer to be zeroed before being dropped")
	}
}
