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
// github.com:SymbolNotFound/rsaoaep-go/csprng/generator.go

// Package csprng implements a Fortuna-shaped pseudorandom generator
// built entirely on this module's own digest/sha256 and aes128
// packages, independent of crypto/rand, crypto/aes and crypto/cipher.
package csprng

import (
	"encoding/binary"
	"errors"

	"github.com/SymbolNotFound/rsaoaep-go/aes128"
	"github.com/SymbolNotFound/rsaoaep-go/digest/sha256"
)

// ErrEntropyFailure reports that the generator could not produce the
// requested output. The root package translates this into an
// EntropyFailure-kind Error.
var ErrEntropyFailure = errors.New("csprng: unable to produce requested output")

const poolCount = 32

// Generator is a Fortuna-style accumulator/generator pair: 32 entropy
// pools feed a reseedable AES-128-CTR key stream. Unlike the classic
// Fortuna design this generator reseeds on every single Generate call
// rather than only when pool 0 has accumulated enough data, matching
// spec.md 4.6's simplified schedule.
type Generator struct {
	pools   [poolCount]*sha256.Hasher
	key     []byte   // reseed's SHA-256 output, key[:aes128.KeySize] feeds AES-128; holds the cipher-derived next key between calls
	counter [aes128.BlockSize]byte
	reseeds uint64
	source  *entropySource
	seeded  bool
}

// New constructs a Generator with empty pools and an unseeded key. The
// seed parameter only selects the built-in entropy source's starting
// point; callers with real entropy should call Collect before the
// first Generate.
func New(seed uint32) *Generator {
	g := &Generator{
		key:    make([]byte, sha256.DIGEST_BYTES),
		source: newEntropySource(seed),
	}
	for i := range g.pools {
		g.pools[i] = sha256.New()
	}
	return g
}

// Collect distributes entropy bytes round-robin across the 32 pools,
// one byte per pool per pass, matching spec.md 4.6's collect(os).
func (g *Generator) Collect(data []byte) {
	for i, b := range data {
		g.pools[i%poolCount].Update([]byte{b})
	}
}

// reseed folds the current key and a subset of pool digests into a
// fresh key, then restarts the pools that were consumed. Pool k is
// selected whenever reseeds (after incrementing) is a multiple of
// 2^k -- pool 0 is selected on every reseed, pool 31 roughly once
// every two billion.
func (g *Generator) reseed() {
	g.reseeds++

	material := make([]byte, 0, sha256.DIGEST_BYTES+poolCount*sha256.DIGEST_BYTES)
	material = append(material, g.key...)

	for k := 0; k < poolCount; k++ {
		threshold := uint64(1) << uint(k)
		if g.reseeds%threshold != 0 {
			break
		}
		material = append(material, g.pools[k].Digest().Bytes()...)
	}

	g.key = sha256.HashBytes(material)
	seed := sha256.HashBytes(g.key)
	copy(g.counter[:], seed[:aes128.BlockSize])
}

// incrementCounter advances the least-significant 32 bits of the
// counter, treating it as a big-endian 128-bit integer per spec.md
// 4.6's "counter mode" description.
func incrementCounter(counter *[aes128.BlockSize]byte) {
	low := binary.BigEndian.Uint32(counter[12:])
	low++
	binary.BigEndian.PutUint32(counter[12:], low)
}

// generateSync emits count bytes of AES-128-CTR keystream under the
// current key/counter, then runs the cipher forward far enough to
// derive a fresh key and counter for the next call -- the
// rekey-after-every-request forward-security step this package
// borrows from the Fortuna generator shape, where the final blocks of
// a request become the seed for the next one instead of being
// revealed to the caller.
func (g *Generator) generateSync(count int) ([]byte, error) {
	cipher, err := aes128.New(g.key[:aes128.KeySize])
	if err != nil {
		return nil, ErrEntropyFailure
	}

	out := make([]byte, 0, count+aes128.BlockSize)
	ctr := g.counter
	for len(out) < count {
		out = append(out, cipher.EncryptBlock(ctr[:])...)
		incrementCounter(&ctr)
	}
	out = out[:count]

	nextKeyMaterial := make([]byte, 0, sha256.DIGEST_BYTES)
	for len(nextKeyMaterial) < sha256.DIGEST_BYTES {
		nextKeyMaterial = append(nextKeyMaterial, cipher.EncryptBlock(ctr[:])...)
		incrementCounter(&ctr)
	}
	g.key = nextKeyMaterial[:sha256.DIGEST_BYTES]
	g.counter = ctr

	return out, nil
}

// Generate returns count bytes of pseudorandom output, forcing a
// reseed first. The very first call also feeds the pools from the
// built-in entropy source, whether or not Collect has been called.
func (g *Generator) Generate(count int) ([]byte, error) {
	if count < 0 {
		return nil, ErrEntropyFailure
	}
	if !g.seeded {
		g.Collect(g.source.next(poolCount * 8))
		g.seeded = true
	}
	g.reseed()
	return g.generateSync(count)
}

// Uint64 satisfies safe.RandSource, drawing 8 bytes from Generate.
func (g *Generator) Uint64() uint64 {
	b, err := g.Generate(8)
	if err != nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// Bytes satisfies safe.Source. Unlike that interface's extendedSource
// implementation (where the uint8 argument counts bits), here size is
// a byte count -- this package has no sub-byte sampling need.
func (g *Generator) Bytes(size uint8) []byte {
	b, err := g.Generate(int(size))
	if err != nil {
		return nil
	}
	return b
}
