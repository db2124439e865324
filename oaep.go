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
// github.com:SymbolNotFound/rsaoaep-go/oaep.go

package rsaoaep

import (
	"encoding/binary"

	"github.com/SymbolNotFound/rsaoaep-go/bigint"
)

// entropySource is the minimal surface oaep.go needs from the
// process-wide CSPRNG; rsaoaep.go wires the real *csprng.Generator
// (via a *safe.Guard) into this at construction time.
type entropySource interface {
	Generate(count int) ([]byte, error)
}

// mgf1 is RFC 8017 Appendix B.2.1's mask generation function: repeated
// H(seed ‖ I2OSP(counter, 4)) blocks, concatenated and truncated.
// Grounded on other_examples' dromara-dongle rsa.go mgf1, rewritten
// over this project's own Hash contract instead of hash.Hash.
func mgf1(seed []byte, maskLen int, h Hash) []byte {
	hLen := h.DigestLength()
	out := make([]byte, 0, maskLen+hLen)
	var counterBytes [4]byte
	for counter := uint32(0); len(out) < maskLen; counter++ {
		binary.BigEndian.PutUint32(counterBytes[:], counter)
		h.Start()
		h.Update(seed)
		h.Update(counterBytes[:])
		out = append(out, h.Digest().Bytes()...)
	}
	return out[:maskLen]
}

// xor returns a ⊕ b; both slices must be the same length.
func xor(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// encodeOAEP builds the k-octet encoded message EM per RFC 8017 §7.1.1,
// steps 1-9. The empty label is hashed afresh on every call, after
// resetting h with Start().
func encodeOAEP(plaintext []byte, h Hash, k int, rng entropySource) ([]byte, error) {
	hLen := h.DigestLength()
	mLen := len(plaintext)
	if mLen > k-2*hLen-2 {
		return nil, newError(MessageTooLong, "plaintext exceeds the OAEP bound for this key and hash")
	}

	h.Start()
	lHash := h.Digest().Bytes()

	psLen := k - mLen - 2*hLen - 2
	db := make([]byte, 0, k-hLen-1)
	db = append(db, lHash...)
	db = append(db, make([]byte, psLen)...)
	db = append(db, 0x01)
	db = append(db, plaintext...)

	seed, err := rng.Generate(hLen)
	if err != nil {
		return nil, wrapError(EntropyFailure, "could not draw an OAEP seed", err)
	}

	dbMask := mgf1(seed, k-hLen-1, h)
	maskedDB := xor(db, dbMask)

	seedMask := mgf1(maskedDB, hLen, h)
	maskedSeed := xor(seed, seedMask)

	em := make([]byte, 0, k)
	em = append(em, 0x00)
	em = append(em, maskedSeed...)
	em = append(em, maskedDB...)
	return em, nil
}

// rsaep is the RSA encryption primitive: c = m^e mod n, rendered as a
// fixed-width k-octet big-endian integer (I2OSP). em is interpreted as
// a non-negative integer via OS2IP (big-endian).
func rsaep(em []byte, n, e *bigint.BigInt, k int) []byte {
	m := bigint.FromBytes(em)
	c := bigint.ModPow(m, e, n)
	return c.Bytes(k)
}
