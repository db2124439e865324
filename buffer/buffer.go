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
// github.com:SymbolNotFound/rsaoaep-go/buffer/buffer.go

// Package buffer implements a growable, big-endian octet buffer with a
// read cursor. The PEM, ASN.1 and RSA-OAEP layers of this module work on
// plain byte slices and do not import it.
package buffer

import "encoding/binary"

// Buffer is a mutable octet sequence with a read cursor r, 0 <= r <= len(data).
// Reads advance r; writes always append at the end. No reader ever observes
// bytes at index < r.
type Buffer struct {
	data []byte
	r    int
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromBytes returns a Buffer whose contents are a copy of b, cursor at 0.
func FromBytes(b []byte) *Buffer {
	data := make([]byte, len(b))
	copy(data, b)
	return &Buffer{data: data}
}

// PutByte appends a single octet.
func (b *Buffer) PutByte(v byte) *Buffer {
	b.data = append(b.data, v)
	return b
}

// PutBytes appends the given octet sequence.
func (b *Buffer) PutBytes(os []byte) *Buffer {
	b.data = append(b.data, os...)
	return b
}

// PutInt32 appends a 32-bit unsigned integer, big-endian.
func (b *Buffer) PutInt32(v uint32) *Buffer {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return b.PutBytes(tmp[:])
}

// GetByte reads and consumes one octet. Reading past the end returns 0,
// as the buffer carries no bounds diagnostics (callers only ever read
// lengths they already know are present).
func (b *Buffer) GetByte() byte {
	if b.r >= len(b.data) {
		return 0
	}
	v := b.data[b.r]
	b.r++
	return v
}

// GetInt32 reads and consumes a 32-bit unsigned integer, big-endian.
func (b *Buffer) GetInt32() uint32 {
	return uint32(b.GetInt(32))
}

// GetInt reads and consumes ceil(n/8) octets, interpreted big-endian,
// for n in {8, 16, 24, 32}.
func (b *Buffer) GetInt(n int) uint64 {
	count := (n + 7) / 8
	var v uint64
	for i := 0; i < count; i++ {
		v = (v << 8) | uint64(b.GetByte())
	}
	return v
}

// GetBytes consumes and returns count octets. With no count given (count < 0)
// it returns all remaining bytes and clears the buffer.
func (b *Buffer) GetBytes(count int) []byte {
	if count < 0 {
		out := b.data[b.r:]
		result := make([]byte, len(out))
		copy(result, out)
		b.Clear()
		return result
	}
	end := b.r + count
	if end > len(b.data) {
		end = len(b.data)
	}
	out := make([]byte, end-b.r)
	copy(out, b.data[b.r:end])
	b.r = end
	return out
}

// Bytes peeks at count octets without consuming them. With count < 0 it
// peeks at all remaining bytes.
func (b *Buffer) Bytes(count int) []byte {
	if count < 0 {
		count = len(b.data) - b.r
	}
	end := b.r + count
	if end > len(b.data) {
		end = len(b.data)
	}
	out := make([]byte, end-b.r)
	copy(out, b.data[b.r:end])
	return out
}

// Length returns the number of unread bytes remaining.
func (b *Buffer) Length() int {
	return len(b.data) - b.r
}

// Compact shifts the unread tail to offset 0 and resets the cursor.
func (b *Buffer) Compact() *Buffer {
	remaining := b.data[b.r:]
	data := make([]byte, len(remaining))
	copy(data, remaining)
	b.data = data
	b.r = 0
	return b
}

// Clear empties the buffer entirely.
func (b *Buffer) Clear() *Buffer {
	b.data = nil
	b.r = 0
	return b
}

// ToHex renders the unread portion as lowercase hex.
func (b *Buffer) ToHex() string {
	const hexDigits = "0123456789abcdef"
	tail := b.data[b.r:]
	out := make([]byte, 2*len(tail))
	for i, v := range tail {
		out[2*i] = hexDigits[v>>4]
		out[2*i+1] = hexDigits[v&0xf]
	}
	return string(out)
}

// ToArrayBuffer returns a copy of the unread portion as a plain byte slice.
func (b *Buffer) ToArrayBuffer() []byte {
	return b.Bytes(-1)
}
