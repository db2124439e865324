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
// github.com:SymbolNotFound/rsaoaep-go/digest/sha512/hash.go

// Package sha512 implements the SHA-512 message digest per FIPS 180-4,
// independent of crypto/sha512.
package sha512

import "encoding/binary"

const BLOCK_BYTES = 128

var iv = [DIGEST_WORDS]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// round constants (first 64 bits of the fractional parts of the cube
// roots of the first 80 primes).
var k = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// Hasher is a SHA-512 engine with a Start/Update/Digest lifecycle.
type Hasher struct {
	h       [DIGEST_WORDS]uint64
	pending []byte // bytes absorbed since the last full block, < BLOCK_BYTES
	length  uint64 // total message length in bytes (SHA-512 supports a 128-bit
	// length field; messages this implementation handles never approach 2^64
	// bytes, so only the low 64 bits are tracked)
}

// New constructs a fresh, started SHA-512 Hasher.
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

// compress runs the 80-round compression function over one 128-byte block.
func (state *Hasher) compress(block []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(block[8*i:])
	}
	for i := 16; i < 80; i++ {
		s0 := rotr64(w[i-15], 1) ^ rotr64(w[i-15], 8) ^ (w[i-15] >> 7)
		s1 := rotr64(w[i-2], 19) ^ rotr64(w[i-2], 61) ^ (w[i-2] >> 6)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, hh := state.h[0], state.h[1], state.h[2], state.h[3], state.h[4], state.h[5], state.h[6], state.h[7]

	for i := 0; i < 80; i++ {
		S1 := rotr64(e, 14) ^ rotr64(e, 18) ^ rotr64(e, 41)
		ch := (e & f) ^ (^e & g)
		temp1 := hh + S1 + ch + k[i] + w[i]
		S0 := rotr64(a, 28) ^ rotr64(a, 34) ^ rotr64(a, 39)
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
// fresh state afterward (same contract as digest/sha1 and digest/sha256).
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

// DigestLength is the digest size in bytes (64 for SHA-512).
func (state *Hasher) DigestLength() int {
	return DIGEST_BYTES
}

// BlockSize is the compression function's block size in bytes.
func (state *Hasher) BlockSize() int {
	return BLOCK_BYTES
}

// pad appends the 0x80 byte, zero padding, and the 128-bit big-endian
// bit-length (high 64 bits always zero here), returning a whole number
// of 128-byte blocks.
func pad(pending []byte, msgLen uint64) []byte {
	tail := make([]byte, len(pending), len(pending)+BLOCK_BYTES+16)
	copy(tail, pending)
	tail = append(tail, 0x80)
	for len(tail)%BLOCK_BYTES != BLOCK_BYTES-16 {
		tail = append(tail, 0x00)
	}
	var lenBytes [16]byte
	binary.BigEndian.PutUint64(lenBytes[8:], msgLen*8)
	tail = append(tail, lenBytes[:]...)
	return tail
}

// compressInto runs the compression function without mutating a Hasher,
// used by Digest()'s working copy.
func compressInto(h *[DIGEST_WORDS]uint64, block []byte) {
	tmp := Hasher{h: *h}
	tmp.compress(block)
	*h = tmp.h
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}
