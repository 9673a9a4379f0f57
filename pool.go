// pool.go: Buffer pooling for nonce, key, and ciphertext scratch space.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sealbox

import (
	"sync"
)

var (
	// Pool for fixed small buffers: nonces (24 bytes) and keys (32 bytes).
	// Every buffer is zeroed before going back so pooled memory never carries
	// nonce or key material between operations.
	smallBufferPool = sync.Pool{
		New: func() interface{} {
			buf := make([]byte, KeySize)
			return &buf
		},
	}

	// Pool for dynamic byte slices used as ciphertext/plaintext scratch space.
	// Uses pointers to avoid allocations (SA6002).
	dynamicBufferPool = sync.Pool{
		New: func() interface{} {
			buf := make([]byte, 0, 256)
			return &buf
		},
	}
)

// getBuffer retrieves a small buffer from the pool, sliced to the requested size.
// Sizes above KeySize are allocated directly and never pooled.
func getBuffer(size int) *[]byte {
	if size <= KeySize {
		buf := smallBufferPool.Get().(*[]byte)
		*buf = (*buf)[:size]
		return buf
	}
	buf := make([]byte, size)
	return &buf
}

// putBuffer zeroes a small buffer and returns it to the pool.
// Non-standard capacities are dropped rather than pooled.
func putBuffer(buf *[]byte) {
	if buf == nil {
		return
	}
	Zeroize((*buf)[:cap(*buf)])
	if cap(*buf) == KeySize {
		smallBufferPool.Put(buf)
	}
}

// getDynamicBuffer retrieves a growable scratch buffer with zero length.
func getDynamicBuffer() []byte {
	buf := dynamicBufferPool.Get().(*[]byte)
	return (*buf)[:0]
}

// putDynamicBuffer zeroes a scratch buffer over its full capacity and returns
// it to the pool. Decrypted plaintext may have passed through these buffers,
// so the zeroing is unconditional.
func putDynamicBuffer(buf []byte) {
	bufCap := cap(buf)
	if bufCap == 0 {
		return
	}
	Zeroize(buf[:bufCap])

	// Oversized buffers are dropped to keep the pool footprint bounded.
	if bufCap <= 64*1024 {
		dynamicBufferPool.Put(&buf)
	}
}
