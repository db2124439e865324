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

// This file's reference decryptor and key fixture intentionally import
// math/big and crypto/sha* -- acceptable test-only tooling standing in
// for "a reference RSAES-OAEP decryptor" (spec.md's testable property
// #1), entirely separate from the production core under test, which
// never imports either.
package rsaoaep_test

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"hash"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	rsaoaep "github.com/SymbolNotFound/rsaoaep-go"
	digestsha1 "github.com/SymbolNotFound/rsaoaep-go/digest/sha1"
	digestsha256 "github.com/SymbolNotFound/rsaoaep-go/digest/sha256"
	digestsha384 "github.com/SymbolNotFound/rsaoaep-go/digest/sha384"
	digestsha512 "github.com/SymbolNotFound/rsaoaep-go/digest/sha512"
)

// --- deterministic 1089-bit RSA fixture, built at test time ---

// findPrime walks upward by 2 from start until it lands on a value
// math/big's Miller-Rabin test accepts with overwhelming confidence.
// Deterministic given a fixed start, so the fixture below is stable
// across runs without needing a system CSPRNG during test setup.
func findPrime(start *big.Int) *big.Int {
	n := new(big.Int).Set(start)
	if n.Bit(0) == 0 {
		n.Add(n, big.NewInt(1))
	}
	two := big.NewInt(2)
	for !n.ProbablyPrime(20) {
		n.Add(n, two)
	}
	return n
}

type testKey struct {
	n, e, d *big.Int
	kBytes  int
}

// newTestKey builds a keypair large enough to exercise all four
// supported hashes (hLen up to 64 needs k >= 2*64+2 = 130 bytes).
func newTestKey(t *testing.T) *testKey {
	t.Helper()
	base1 := new(big.Int).Lsh(big.NewInt(1), 544)
	base1.Add(base1, big.NewInt(987654321))
	base2 := new(big.Int).Lsh(big.NewInt(1), 544)
	base2.Add(base2, big.NewInt(123456789))

	p := findPrime(base1)
	q := findPrime(base2)
	require.NotEqual(t, p, q)

	n := new(big.Int).Mul(p, q)
	one := big.NewInt(1)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	e := big.NewInt(65537)
	d := new(big.Int).ModInverse(e, phi)
	require.NotNil(t, d)

	return &testKey{n: n, e: e, d: d, kBytes: (n.BitLen() + 7) / 8}
}

// publicKeyPEM hand-assembles a PEM-armored SubjectPublicKeyInfo for
// this key, the same TLV-by-hand approach asn1_test.go uses rather
// than reaching for encoding/asn1.
func (k *testKey) publicKeyPEM() string {
	der := rsaPublicKeyDER(k.n.Bytes(), k.e.Bytes())
	encoded := base64.StdEncoding.EncodeToString(der)
	var lines []string
	for i := 0; i < len(encoded); i += 64 {
		end := i + 64
		if end > len(encoded) {
			end = len(encoded)
		}
		lines = append(lines, encoded[i:end])
	}
	return "-----BEGIN PUBLIC KEY-----\n" + strings.Join(lines, "\n") + "\n-----END PUBLIC KEY-----\n"
}

func tlv(tag byte, value []byte) []byte {
	out := []byte{tag}
	switch {
	case len(value) < 0x80:
		out = append(out, byte(len(value)))
	case len(value) < 0x100:
		out = append(out, 0x81, byte(len(value)))
	default:
		out = append(out, 0x82, byte(len(value)>>8), byte(len(value)))
	}
	return append(out, value...)
}

func rsaPublicKeyDER(modulus, exponent []byte) []byte {
	// DER INTEGER is two's-complement; prepend 0x00 when the high bit
	// is set so these always decode as non-negative.
	if len(modulus) > 0 && modulus[0]&0x80 != 0 {
		modulus = append([]byte{0x00}, modulus...)
	}
	if len(exponent) > 0 && exponent[0]&0x80 != 0 {
		exponent = append([]byte{0x00}, exponent...)
	}

	modInt := tlv(0x02, modulus)
	expInt := tlv(0x02, exponent)
	rsaKeySeq := tlv(0x10|0x20, append(append([]byte{}, modInt...), expInt...))

	bitStringValue := append([]byte{0x00}, rsaKeySeq...)
	bitString := tlv(0x03, bitStringValue)

	oid := tlv(0x06, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01})
	null := tlv(0x05, nil)
	algorithm := tlv(0x10|0x20, append(append([]byte{}, oid...), null...))

	return tlv(0x10|0x20, append(append([]byte{}, algorithm...), bitString...))
}

// --- an independent RFC 8017 §7.1.2 reference decryptor, built on
// crypto/sha* and math/big rather than this module's own packages ---

func mgf1Reference(h func() hash.Hash, seed []byte, maskLen int) []byte {
	var out []byte
	counter := uint32(0)
	for len(out) < maskLen {
		hh := h()
		hh.Write(seed)
		hh.Write([]byte{byte(counter >> 24), byte(counter >> 16), byte(counter >> 8), byte(counter)})
		out = append(out, hh.Sum(nil)...)
		counter++
	}
	return out[:maskLen]
}

func xorReference(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// decryptReference implements RSAES-OAEP decryption (empty label)
// against this test's private exponent, independent of the production
// core entirely.
func decryptReference(t *testing.T, k *testKey, h func() hash.Hash, ciphertext []byte) []byte {
	t.Helper()
	hLen := h().Size()
	kBytes := k.kBytes
	require.Len(t, ciphertext, kBytes)

	c := new(big.Int).SetBytes(ciphertext)
	m := new(big.Int).Exp(c, k.d, k.n)
	em := m.FillBytes(make([]byte, kBytes))

	require.Equal(t, byte(0x00), em[0])
	maskedSeed := em[1 : 1+hLen]
	maskedDB := em[1+hLen:]

	seedMask := mgf1Reference(h, maskedDB, hLen)
	seed := xorReference(maskedSeed, seedMask)

	dbMask := mgf1Reference(h, seed, kBytes-hLen-1)
	db := xorReference(maskedDB, dbMask)

	hh := h()
	hh.Write(nil)
	lHash := hh.Sum(nil)
	require.Equal(t, lHash, db[:hLen])

	rest := db[hLen:]
	sep := -1
	for i, b := range rest {
		if b == 0x01 {
			sep = i
			break
		}
		require.Equal(t, byte(0x00), b)
	}
	require.GreaterOrEqual(t, sep, 0)
	return rest[sep+1:]
}

// --- tests ---

func Test_Encrypt_RoundTripsWithReferenceDecryptor(t *testing.T) {
	key := newTestKey(t)
	pubPEM := key.publicKeyPEM()
	pk, err := rsaoaep.ImportPublicKey(pubPEM)
	require.NoError(t, err)

	cases := []struct {
		name string
		hash func() rsaoaep.Hash
		ref  func() hash.Hash
	}{
		{"sha1", func() rsaoaep.Hash { return digestsha1.New() }, sha1.New},
		{"sha256", func() rsaoaep.Hash { return digestsha256.New() }, sha256.New},
		{"sha384", func() rsaoaep.Hash { return digestsha384.New() }, sha512.New384},
		{"sha512", func() rsaoaep.Hash { return digestsha512.New() }, sha512.New},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hLen := tc.ref().Size()
			maxLen := pk.ModulusSize() - 2*hLen - 2
			for _, mLen := range []int{0, 1, hLen, maxLen} {
				plaintext := make([]byte, mLen)
				for i := range plaintext {
					plaintext[i] = byte(i*7 + 1)
				}

				ciphertext, err := pk.Encrypt(plaintext, tc.hash())
				require.NoError(t, err)

				recovered := decryptReference(t, key, tc.ref, ciphertext)
				require.Equal(t, plaintext, recovered)
			}
		})
	}
}

func Test_Encrypt_CiphertextLengthIsK(t *testing.T) {
	key := newTestKey(t)
	pk, err := rsaoaep.ImportPublicKey(key.publicKeyPEM())
	require.NoError(t, err)

	ciphertext, err := pk.Encrypt([]byte("hello"), digestsha256.New())
	require.NoError(t, err)
	require.Len(t, ciphertext, pk.ModulusSize())
}

func Test_Encrypt_NonDeterministic(t *testing.T) {
	key := newTestKey(t)
	pk, err := rsaoaep.ImportPublicKey(key.publicKeyPEM())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		ciphertext, err := pk.Encrypt([]byte("repeat me"), digestsha256.New())
		require.NoError(t, err)
		seen[string(ciphertext)] = true
	}
	require.Greater(t, len(seen), 1)
}

func Test_Encrypt_BoundaryMLen(t *testing.T) {
	key := newTestKey(t)
	pk, err := rsaoaep.ImportPublicKey(key.publicKeyPEM())
	require.NoError(t, err)

	hLen := digestsha256.DIGEST_BYTES
	maxLen := pk.ModulusSize() - 2*hLen - 2

	_, err = pk.Encrypt(make([]byte, maxLen), digestsha256.New())
	require.NoError(t, err)

	_, err = pk.Encrypt(make([]byte, maxLen+1), digestsha256.New())
	require.Error(t, err)
	var rsaErr *rsaoaep.Error
	require.ErrorAs(t, err, &rsaErr)
	require.Equal(t, rsaoaep.MessageTooLong, rsaErr.Kind)
}

func Test_Encrypt_RejectsUnsupportedHashBeforeModPow(t *testing.T) {
	key := newTestKey(t)
	pk, err := rsaoaep.ImportPublicKey(key.publicKeyPEM())
	require.NoError(t, err)

	_, err = pk.Encrypt([]byte("x"), nil)
	require.Error(t, err)
	var rsaErr *rsaoaep.Error
	require.ErrorAs(t, err, &rsaErr)
	require.Equal(t, rsaoaep.UnsupportedHash, rsaErr.Kind)
}

func Test_ImportPublicKey_PEMRejections(t *testing.T) {
	key := newTestKey(t)
	goodPEM := key.publicKeyPEM()

	t.Run("truncated armor", func(t *testing.T) {
		_, err := rsaoaep.ImportPublicKey(goodPEM[1:])
		require.Error(t, err)
	})

	t.Run("base64 corruption", func(t *testing.T) {
		corrupted := strings.Replace(goodPEM, "+", "", 1)
		if corrupted == goodPEM {
			corrupted = strings.Replace(goodPEM, "A", "!", 1)
		}
		_, err := rsaoaep.ImportPublicKey(corrupted)
		require.Error(t, err)
	})

	t.Run("label case change breaks armor", func(t *testing.T) {
		corrupted := strings.Replace(goodPEM, "BEGIN PUBLIC KEY", "BEGIN Public KEY", 1)
		_, err := rsaoaep.ImportPublicKey(corrupted)
		require.Error(t, err)
	})
}

func Test_ImportPublicKey_OIDEnforcement(t *testing.T) {
	key := newTestKey(t)
	der := rsaPublicKeyDER(key.n.Bytes(), key.e.Bytes())

	for i := range der {
		if der[i] == 0xf7 && i+4 < len(der) && der[i+4] == 0x01 {
			der[i+4] = 0x07 // RSA-OAEP's own OID, must still be rejected
			break
		}
	}
	encoded := base64.StdEncoding.EncodeToString(der)
	pemText := "-----BEGIN PUBLIC KEY-----\n" + encoded + "\n-----END PUBLIC KEY-----\n"

	_, err := rsaoaep.ImportPublicKey(pemText)
	require.Error(t, err)
	var rsaErr *rsaoaep.Error
	require.ErrorAs(t, err, &rsaErr)
	require.Equal(t, rsaoaep.InvalidKey, rsaErr.Kind)
}
