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
// github.com:SymbolNotFound/rsaoaep-go/asn1/publickey.go

package asn1

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is returned when a SubjectPublicKeyInfo fails structural
// validation or carries an algorithm OID other than rsaOID.
var ErrInvalidKey = errors.New("invalid RSA public key")

// rsaOID is the algorithm identifier for plain RSA encryption
// (rsaEncryption, 1.2.840.113549.1.1.1). Keys using any other OID --
// including RSA-OAEP's own 1.2.840.113549.1.1.7 -- are rejected.
const rsaOID = "1.2.840.113549.1.1.1"

var spkiTemplate = Template{
	Class: ClassUniversal, Type: TagSequence, Constructed: true,
	Children: []Template{
		{
			Class: ClassUniversal, Type: TagSequence, Constructed: true,
			Children: []Template{
				{Class: ClassUniversal, Type: TagOID, Constructed: false},
				{Class: ClassUniversal, Type: TagNull, Constructed: false},
			},
		},
		{Class: ClassUniversal, Type: TagBitString, Constructed: true},
	},
}

var rsaPublicKeyTemplate = Template{
	Class: ClassUniversal, Type: TagSequence, Constructed: true,
	Children: []Template{
		{Class: ClassUniversal, Type: TagInteger, Constructed: false},
		{Class: ClassUniversal, Type: TagInteger, Constructed: false},
	},
}

// ExtractRSAPublicKey validates der as a SubjectPublicKeyInfo wrapping
// an RSA public key and returns the modulus and exponent as raw
// big-endian octet strings (leading sign-disambiguation zero byte, if
// present, left intact -- callers strip it).
func ExtractRSAPublicKey(der []byte) (modulus, exponent []byte, err error) {
	root, err := Parse(der)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	if !spkiTemplate.Matches(root) {
		return nil, nil, fmt.Errorf("%w: unexpected SubjectPublicKeyInfo shape", ErrInvalidKey)
	}

	algorithm := root.Children[0]
	oid, err := DecodeOID(algorithm.Children[0].Value)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if oid != rsaOID {
		return nil, nil, fmt.Errorf("%w: unexpected algorithm OID %s", ErrInvalidKey, oid)
	}

	bitString := root.Children[1]
	if len(bitString.Children) != 1 {
		return nil, nil, fmt.Errorf("%w: BIT STRING did not decode to a single RSAPublicKey", ErrInvalidKey)
	}
	rsaKey := bitString.Children[0]
	if !rsaPublicKeyTemplate.Matches(rsaKey) {
		return nil, nil, fmt.Errorf("%w: unexpected RSAPublicKey shape", ErrInvalidKey)
	}

	return rsaKey.Children[0].Value, rsaKey.Children[1].Value, nil
}
