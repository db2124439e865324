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
// github.com:SymbolNotFound/rsaoaep-go/digest/sha384/digest.go

package sha384

import "encoding/binary"

const DIGEST_BYTES = 48
const STATE_WORDS = 8 // full internal chaining value width, before truncation

// Digest is a finalized SHA-384 digest.
type Digest interface {
	Bytes() []byte
}

type digest struct {
	bytes [DIGEST_BYTES]byte
}

// newDigest packs the first 6 of the 8 chaining words big-endian, dropping
// the last two per the SHA-384 truncation rule.
func newDigest(h [STATE_WORDS]uint64) digest {
	d := digest{}
	for i := 0; i < 6; i++ {
		binary.BigEndian.PutUint64(d.bytes[8*i:], h[i])
	}
	return d
}

func (d digest) Bytes() []byte {
	return d.bytes[:]
}
