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
// github.com:SymbolNotFound/rsaoaep-go/rsaoaep.go

// Package rsaoaep implements RSAES-OAEP public-key encryption (RFC
// 8017 §7.1) entirely from scratch: its own big-integer arithmetic,
// ASN.1/PEM parsing, message digests and CSPRNG, without depending on
// crypto/rsa, crypto/x509, crypto/rand or any other host-provided
// cryptographic API.
package rsaoaep

import (
	"io"

	"github.com/SymbolNotFound/rsaoaep-go/asn1"
	"github.com/SymbolNotFound/rsaoaep-go/bigint"
	"github.com/SymbolNotFound/rsaoaep-go/csprng"
	"github.com/SymbolNotFound/rsaoaep-go/pem"
	"github.com/SymbolNotFound/rsaoaep-go/safe"
)

// Digest is a finalized message digest, matching digest.Digest's shape
// (and, by Go's structural interface identity, every digest/sha*
// package's own locally-named Digest type as well).
type Digest interface {
	Bytes() []byte
}

// Hash is the shape a caller-supplied digest engine must have to serve
// as the OAEP label-hash and MGF1-hash. digest.Hasher (and therefore
// every engine under digest/sha1, sha256, sha384, sha512) satisfies
// this structurally -- there is no explicit "implements" relationship.
type Hash interface {
	io.Writer
	Start()
	Update(msg []byte)
	Digest() Digest
	DigestLength() int
	BlockSize() int
}

// supportedDigestLengths are the only hLen values RFC 8017's four
// named hashes produce (SHA-1, SHA-256, SHA-384, SHA-512). A Hash
// reporting any other DigestLength cannot be one of them.
var supportedDigestLengths = map[int]bool{20: true, 32: true, 48: true, 64: true}

// PublicKey is an imported RSA public key ready for OAEP encryption.
type PublicKey struct {
	n *bigint.BigInt
	e *bigint.BigInt
	k int // k = ceil(bitlen(n)/8), the modulus size in octets
}

// defaultRNG is the process-wide CSPRNG singleton backing Encrypt,
// guarded against concurrent access per spec.md §5. It is seeded from
// its own built-in entropy source; callers needing external entropy
// should construct their own csprng.Generator, feed it via Collect,
// and wrap it with safe.NewGuard instead of relying on this default.
var defaultRNG = safe.NewGuard(csprng.New(0x5eed))

// ImportPublicKey parses a PEM-armored SubjectPublicKeyInfo containing
// an RSA public key (algorithm OID 1.2.840.113549.1.1.1) and returns
// it ready for Encrypt.
func ImportPublicKey(pemText string) (*PublicKey, error) {
	label, body, err := pem.Decode(pemText)
	if err != nil {
		return nil, wrapError(InvalidPEM, "could not parse PEM armor", err)
	}
	if label != "PUBLIC KEY" {
		return nil, newError(InvalidPEM, "unexpected PEM label: "+label)
	}

	modulus, exponent, err := asn1.ExtractRSAPublicKey(body)
	if err != nil {
		return nil, wrapError(InvalidKey, "could not extract RSA public key from DER", err)
	}

	n := bigint.FromBytes(modulus)
	e := bigint.FromBytes(exponent)
	k := (n.BitLen() + 7) / 8

	return &PublicKey{n: n, e: e, k: k}, nil
}

// Encrypt performs RSAES-OAEP encryption of plaintext under this
// public key, using h as both the label-hash and the MGF1-hash, with
// an empty label (the only label this module supports). h is reset
// via Start() before use regardless of any prior state.
func (pk *PublicKey) Encrypt(plaintext []byte, h Hash) ([]byte, error) {
	if h == nil || !supportedDigestLengths[h.DigestLength()] {
		return nil, newError(UnsupportedHash, "hash does not match a supported digest length")
	}

	em, err := encodeOAEP(plaintext, h, pk.k, defaultRNG)
	if err != nil {
		return nil, err
	}
	return rsaep(em, pk.n, pk.e, pk.k), nil
}

// ModulusSize returns k, the ciphertext length in octets.
func (pk *PublicKey) ModulusSize() int {
	return pk.k
}
