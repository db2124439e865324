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
// github.com:SymbolNotFound/rsaoaep-go/csprng/entropy.go

package csprng

import (
	"encoding/binary"

	"github.com/SymbolNotFound/rsaoaep-go/digest/sha1"
)

// shaRing draws pseudorandom 64-bit words from a SHA-1 engine, cycling
// back through the same 20-byte digest before asking for a fresh one.
// This ratchets the engine itself forward by feeding its own last
// digest back in as the next message, since this project's Digest()
// resets the underlying Hasher on every call (unlike the teacher's
// original ShaRing, which called a non-resetting Hash() and relied on
// the engine's block buffer carrying state across calls). Folding the
// previous output back in as the next input reproduces the same
// "each call advances the stream" behavior the teacher needed.
type shaRing struct {
	rng    *sha1.Hasher
	offset int
	digest []byte
}

func newShaRing(seed []byte) *shaRing {
	rng := sha1.New()
	rng.Update(seed)
	return &shaRing{rng: rng}
}

// Uint64 returns the next 8 bytes of pseudorandom output, reusing the
// current 20-byte digest across up to two calls before re-hashing.
func (r *shaRing) Uint64() uint64 {
	var next uint64
	switch r.offset {
	case 0:
		r.digest = r.rng.Digest().Bytes()
		r.rng.Update(r.digest)
		next = binary.BigEndian.Uint64(r.digest)
		r.offset = 8
	case 8:
		next = binary.BigEndian.Uint64(r.digest[8:16])
		r.offset = 16
	case 16:
		next = uint64(binary.BigEndian.Uint32(r.digest[16:20])) << 32
		r.digest = r.rng.Digest().Bytes()
		r.rng.Update(r.digest)
		next |= uint64(binary.BigEndian.Uint32(r.digest[0:4]))
		r.offset = 4
	case 4:
		next = binary.BigEndian.Uint64(r.digest[4:12])
		r.offset = 12
	case 12:
		next = binary.BigEndian.Uint64(r.digest[12:20])
		r.offset = 0
	}
	return next
}

func (r *shaRing) bytes(n int) []byte {
	out := make([]byte, 0, n+8)
	for len(out) < n {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], r.Uint64())
		out = append(out, buf[:]...)
	}
	return out[:n]
}

// entropySource is the generator's built-in, host-independent seed of
// last resort: a 31-bit Park-Miller LCG XORed byte-for-byte against a
// SHA-1 ratchet. spec.md 4.6 is explicit that neither stream is
// cryptographically strong on its own and that a host CSPRNG (e.g. a
// platform's get-random-bytes syscall) should be substituted wherever
// one is available; this type exists so the package still produces a
// usable key schedule in a hosted-nowhere environment.
type entropySource struct {
	lcg  *parkMiller
	ring *shaRing
}

func newEntropySource(seed uint32) *entropySource {
	var seedBytes [4]byte
	binary.BigEndian.PutUint32(seedBytes[:], seed)
	return &entropySource{
		lcg:  newParkMiller(seed),
		ring: newShaRing(seedBytes[:]),
	}
}

// next returns n bytes of mixed entropy for seeding the pools.
func (e *entropySource) next(n int) []byte {
	lcgBytes := e.lcg.bytes(n)
	ringBytes := e.ring.bytes(n)
	out := make([]byte, n)
	for i := range out {
		out[i] = lcgBytes[i] ^ ringBytes[i]
	}
	return out
}
