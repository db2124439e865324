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

package asn1_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/rsaoaep-go/asn1"
)

// tlv hand-assembles a single DER TLV element with a short-form length,
// used to build small fixtures without going through a real encoder.
func tlv(tag byte, value []byte) []byte {
	out := []byte{tag}
	if len(value) < 0x80 {
		out = append(out, byte(len(value)))
	} else {
		// long form, 2-byte length, sufficient for these small fixtures
		out = append(out, 0x81, byte(len(value)))
	}
	return append(out, value...)
}

func Test_Parse_PrimitiveInteger(t *testing.T) {
	der := tlv(asn1.TagInteger, []byte{0x01, 0x00, 0x01})
	node, err := asn1.Parse(der)
	require.NoError(t, err)
	require.Equal(t, asn1.TagInteger, node.Type)
	require.False(t, node.Constructed)
	require.Equal(t, []byte{0x01, 0x00, 0x01}, node.Value)
}

func Test_Parse_ConstructedSequence(t *testing.T) {
	inner1 := tlv(asn1.TagInteger, []byte{0x01})
	inner2 := tlv(asn1.TagInteger, []byte{0x02})
	der := tlv(asn1.TagSequence|0x20, append(append([]byte{}, inner1...), inner2...))

	node, err := asn1.Parse(der)
	require.NoError(t, err)
	require.True(t, node.Constructed)
	require.Len(t, node.Children, 2)
	require.Equal(t, []byte{0x01}, node.Children[0].Value)
	require.Equal(t, []byte{0x02}, node.Children[1].Value)
}

func Test_Parse_HighTagNumberRejected(t *testing.T) {
	der := []byte{0x1f, 0x01, 0x00}
	_, err := asn1.Parse(der)
	require.ErrorIs(t, err, asn1.ErrMalformed)
}

func Test_Parse_TruncatedLengthRejected(t *testing.T) {
	der := []byte{asn1.TagInteger, 0x05, 0x01, 0x02}
	_, err := asn1.Parse(der)
	require.ErrorIs(t, err, asn1.ErrMalformed)
}

func Test_Parse_LongFormLength(t *testing.T) {
	value := make([]byte, 200)
	for i := range value {
		value[i] = byte(i)
	}
	der := tlv(asn1.TagOID, value) // forces long-form length via the tlv helper
	node, err := asn1.Parse(der)
	require.NoError(t, err)
	require.Equal(t, value, node.Value)
}

func Test_DecodeOID(t *testing.T) {
	// 1.2.840.113549.1.1.1 (rsaEncryption)
	der := []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}
	oid, err := asn1.DecodeOID(der)
	require.NoError(t, err)
	require.Equal(t, "1.2.840.113549.1.1.1", oid)
}

func Test_SpeculativeBitStringDecode(t *testing.T) {
	nested := tlv(asn1.TagInteger, []byte{0x2a})
	bitStringValue := append([]byte{0x00}, nested...)
	der := tlv(asn1.TagBitString, bitStringValue)

	node, err := asn1.Parse(der)
	require.NoError(t, err)
	require.True(t, node.Constructed)
	require.Len(t, node.Children, 1)
	require.Equal(t, []byte{0x2a}, node.Children[0].Value)
	require.Equal(t, bitStringValue, node.BitStringContents)
}

func Test_BitString_FallsBackToRawWhenNotComposable(t *testing.T) {
	der := tlv(asn1.TagBitString, []byte{0x04, 0xde, 0xad, 0xbe, 0xef})
	node, err := asn1.Parse(der)
	require.NoError(t, err)
	require.False(t, node.Constructed)
	require.Nil(t, node.Children)
	require.Equal(t, []byte{0x04, 0xde, 0xad, 0xbe, 0xef}, node.BitStringContents)
}

func rsaPublicKeyDER(modulus, exponent []byte) []byte {
	modInt := tlv(asn1.TagInteger, modulus)
	expInt := tlv(asn1.TagInteger, exponent)
	rsaKeySeq := tlv(asn1.TagSequence|0x20, append(append([]byte{}, modInt...), expInt...))

	bitStringValue := append([]byte{0x00}, rsaKeySeq...)
	bitString := tlv(asn1.TagBitString, bitStringValue)

	oid := tlv(asn1.TagOID, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01})
	null := tlv(asn1.TagNull, nil)
	algorithm := tlv(asn1.TagSequence|0x20, append(append([]byte{}, oid...), null...))

	return tlv(asn1.TagSequence|0x20, append(append([]byte{}, algorithm...), bitString...))
}

func Test_ExtractRSAPublicKey(t *testing.T) {
	modulus := []byte{0x00, 0xab, 0xcd, 0xef, 0x01}
	exponent := []byte{0x01, 0x00, 0x01}
	der := rsaPublicKeyDER(modulus, exponent)

	n, e, err := asn1.ExtractRSAPublicKey(der)
	require.NoError(t, err)
	require.Equal(t, modulus, n)
	require.Equal(t, exponent, e)
}

func Test_ExtractRSAPublicKey_WrongOIDRejected(t *testing.T) {
	modulus := []byte{0x01, 0x02}
	exponent := []byte{0x01, 0x00, 0x01}
	der := rsaPublicKeyDER(modulus, exponent)

	// flip the OID's final arc from 1 (rsaEncryption) to 7 (RSA-OAEP)
	der = []byte(string(der))
	for i := range der {
		if der[i] == 0xf7 && i+4 < len(der) && der[i+4] == 0x01 {
			der[i+4] = 0x07
			break
		}
	}

	_, _, err := asn1.ExtractRSAPublicKey(der)
	require.ErrorIs(t, err, asn1.ErrInvalidKey)
}

func Test_ExtractRSAPublicKey_WrongShapeRejected(t *testing.T) {
	der := tlv(asn1.TagSequence|0x20, tlv(asn1.TagInteger, []byte{0x01}))
	_, _, err := asn1.ExtractRSAPublicKey(der)
	require.ErrorIs(t, err, asn1.ErrInvalidKey)
}
