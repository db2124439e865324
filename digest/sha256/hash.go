// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/rsaoaep-go/digest/sha256/hash.go

// Package sha256 implements the SHA-256 message digest per FIPS 180-4,
// independent of crypto/sha256.
package sha256

import "encoding/binary"

const BLOCK_BYTES = 64

var iv = [DIGEST_INTS]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// round constants (first 32 bits of the fractional parts of the cube
// roots of the first 64 primes).
var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Hasher is a SHA-256 engine with a Start/Update/Digest lifecycle.
type Hasher struct {
	h       [DIGEST_INTS]uint32
	pending []byte // bytes absorbed since the last full block, < BLOCK_BYTES
	length  uint64 // total message length in bytes
}

// New constructs a fresh, started SHA-256 Hasher.
func New() *Hasher {
	h := new(Hasher)
	h.Start()
	return h
}

// HashBytes hashes the entirety of input in one call.
func HashBytes(input []byte) []byte {
	h := New()
	h.Update(input)
	return h.Digest().Bytes()
}

// Start (re-)initializes the chaining value and discards any pending input.
func (state *Hasher) Start() {
	state.h = iv
	state.pending = state.pending[:0]
	state.length = 0
}

// Update absorbs message bytes, compressing full blocks as they fill.
func (state *Hasher) Update(msg []byte) {
	state.length += uint64(len(msg))
	state.pending = append(state.pending, msg...)
	for len(state.pending) >= BLOCK_BYTES {
		state.compress(state.pending[:BLOCK_BYTES])
		state.pending = state.pending[BLOCK_BYTES:]
	}
}

// Write satisfies io.Writer by delegating to Update.
func (state *Hasher) Write(msg []byte) (int, error) {
	state.Update(msg)
	return len(msg), nil
}

// compress runs the 64-round compression function over one 64-byte block.
func (state *Hasher) compress(block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, hh := state.h[0], state.h[1], state.h[2], state.h[3], state.h[4], state.h[5], state.h[6], state.h[7]

	for i := 0; i < 64; i++ {
		S1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		temp1 := hh + S1 + ch + k[i] + w[i]
		S0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := S0 + maj

		hh, g, f, e, d, c, b, a = g, f, e, d+temp1, c, b, a, temp1+temp2
	}

	state.h[0] += a
	state.h[1] += b
	state.h[2] += c
	state.h[3] += d
	state.h[4] += e
	state.h[5] += f
	state.h[6] += g
	state.h[7] += hh
}

// Digest finalizes over a working copy, leaving the receiver reset to a
// fresh state afterward (same contract as digest/sha1).
func (state *Hasher) Digest() Digest {
	h := state.h
	msgLen := state.length

	padded := pad(state.pending, msgLen)
	for i := 0; i < len(padded); i += BLOCK_BYTES {
		compressInto(&h, padded[i:i+BLOCK_BYTES])
	}

	state.Start()
	return newDigest(h)
}

// DigestLength is the digest size in bytes (32 for SHA-256).
func (state *Hasher) DigestLength() int {
	return DIGEST_BYTES
}

// BlockSize is the compression function's block size in bytes.
func (state *Hasher) BlockSize() int {
	return BLOCK_BYTES
}

// pad appends the 0x80 byte, zero padding, and the 64-bit big-endian
// bit-length, returning a whole number of 64-byte blocks.
func pad(pending []byte, msgLen uint64) []byte {
	tail := make([]byte, len(pending), len(pending)+BLOCK_BYTES+8)
	copy(tail, pending)
	tail = append(tail, 0x80)
	for len(tail)%BLOCK_BYTES != 56 {
		tail = append(tail, 0x00)
	}
	var lenBytes [8]byte
	binary.BigEndian.PutUint64(lenBytes[:], msgLen*8)
	tail = append(tail, lenBytes[:]...)
	return tail
}

// compressInto runs the compression function without mutating a Hasher,
// used by Digest()'s working copy.
func compressInto(h *[DIGEST_INTS]uint32, block []byte) {
	tmp := Hasher{h: *h}
	tmp.compress(block)
	*h = tmp.h
}

func rotr32(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}
