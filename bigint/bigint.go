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
// github.com:SymbolNotFound/rsaoaep-go/bigint/bigint.go

// Package bigint implements unsigned arbitrary-precision integers and
// Montgomery modular exponentiation from scratch, independent of
// math/big. Limbs are base 2^32 (DB), stored little-endian; Go's native
// 64-bit integers make the source's float-safe 14/15-bit split
// unnecessary, per spec.md 4.5's own escape hatch for implementers with
// real integer types.
package bigint

import "strings"

const limbBits = 32

// BigInt is an unsigned arbitrary-precision integer. All RSA-pipeline
// values are non-negative, so there is no sign field; see DESIGN.md's
// C5 entry for the signed-magnitude simplification this drops.
type BigInt struct {
	limbs []uint32 // little-endian, trimmed: no nonzero limb past the end
}

// Zero is the additive identity.
func Zero() *BigInt { return &BigInt{} }

// FromBytes is OS2IP: a big-endian octet string interpreted as a
// non-negative integer.
func FromBytes(data []byte) *BigInt {
	limbs := make([]uint32, 0, (len(data)+3)/4)
	i := len(data)
	for i > 0 {
		start := i - 4
		if start < 0 {
			start = 0
		}
		var limb uint32
		for _, b := range data[start:i] {
			limb = limb<<8 | uint32(b)
		}
		limbs = append(limbs, limb)
		i = start
	}
	return &BigInt{limbs: trim(limbs)}
}

// FromUint64 builds a BigInt from a native value, mainly for test
// fixtures and small constants (window counters, AES block counters).
func FromUint64(v uint64) *BigInt {
	limbs := []uint32{uint32(v), uint32(v >> 32)}
	return &BigInt{limbs: trim(limbs)}
}

// FromHexString parses MSB-first hex into a BigInt, per spec.md 4.5's
// own vocabulary.
func FromHexString(hexStr string) (*BigInt, error) {
	hexStr = strings.TrimSpace(hexStr)
	if hexStr == "" {
		return Zero(), nil
	}
	if len(hexStr)%2 != 0 {
		hexStr = "0" + hexStr
	}
	data := make([]byte, len(hexStr)/2)
	for i := 0; i < len(data); i++ {
		hi, err := hexDigit(hexStr[2*i])
		if err != nil {
			return nil, err
		}
		lo, err := hexDigit(hexStr[2*i+1])
		if err != nil {
			return nil, err
		}
		data[i] = hi<<4 | lo
	}
	return FromBytes(data), nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errInvalidHexDigit(c)
	}
}

type errInvalidHexDigit byte

func (e errInvalidHexDigit) Error() string {
	return "bigint: invalid hex digit '" + string(rune(e)) + "'"
}

// Bytes is I2OSP: render as a big-endian octet string of exactly size
// bytes, left-padded with zeros. The caller is responsible for picking
// a size at least as large as the value (RSA's k is always sufficient).
func (x *BigInt) Bytes(size int) []byte {
	out := make([]byte, size)
	for i, limb := range x.limbs {
		pos := size - 4*i
		for b := 0; b < 4 && pos-b-1 >= 0; b++ {
			out[pos-b-1] = byte(limb >> (8 * uint(b)))
		}
	}
	return out
}

// String renders MSB-first hex, suppressing leading zeros. Per
// spec.md 4.5, the zero value renders as "" -- callers always pad to a
// fixed byte width downstream, so an empty string never escapes this
// package unpadded.
func (x *BigInt) String() string {
	if len(x.limbs) == 0 {
		return ""
	}
	var b strings.Builder
	top := x.limbs[len(x.limbs)-1]
	b.WriteString(trimLeadingZeroHex(hex32(top)))
	for i := len(x.limbs) - 2; i >= 0; i-- {
		b.WriteString(hex32(x.limbs[i]))
	}
	return b.String()
}

const hexDigits = "0123456789abcdef"

func hex32(v uint32) string {
	buf := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return string(buf)
}

func trimLeadingZeroHex(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// IsZero reports whether x is the additive identity.
func (x *BigInt) IsZero() bool { return len(x.limbs) == 0 }

// BitLen is DB*(t-1) + bitlen(top limb), or 0 for the zero value.
func (x *BigInt) BitLen() int {
	if len(x.limbs) == 0 {
		return 0
	}
	top := x.limbs[len(x.limbs)-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return limbBits*(len(x.limbs)-1) + bits
}

// Cmp returns -1, 0, or 1 as x is less than, equal to, or greater than y.
func (x *BigInt) Cmp(y *BigInt) int {
	return cmpLimbs(x.limbs, y.limbs)
}

// Mod computes x mod m via long division, keeping only the remainder
// (spec.md 4.5's divRemTo, simplified from Knuth D's limb-estimate
// quotient digits to straightforward shift-and-subtract -- see
// DESIGN.md).
func (x *BigInt) Mod(m *BigInt) *BigInt {
	_, r := divMod(x.limbs, m.limbs)
	return &BigInt{limbs: r}
}

// trim drops high-order zero limbs so the zero value is always the
// empty slice and comparisons can rely on length.
func trim(limbs []uint32) []uint32 {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

func cmpLimbs(a, b []uint32) int {
	a, b = trim(a), trim(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addLimbs computes a+b as a freshly allocated, trimmed limb slice.
func addLimbs(a, b []uint32) []uint32 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	result := make([]uint32, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a) {
			av = uint64(a[i])
		}
		if i < len(b) {
			bv = uint64(b[i])
		}
		sum := av + bv + carry
		result[i] = uint32(sum)
		carry = sum >> limbBits
	}
	result[n] = uint32(carry)
	return trim(result)
}

// subLimbs computes a-b, which the caller must guarantee is
// non-negative (cmpLimbs(a, b) >= 0).
func subLimbs(a, b []uint32) []uint32 {
	result := make([]uint32, len(a))
	var borrow int64
	for i := 0; i < len(a); i++ {
		var bv int64
		if i < len(b) {
			bv = int64(b[i])
		}
		diff := int64(a[i]) - bv - borrow
		if diff < 0 {
			diff += 1 << limbBits
			borrow = 1
		} else {
			borrow = 0
		}
		result[i] = uint32(diff)
	}
	return trim(result)
}

// mulLimbs computes a*b via schoolbook multiply-accumulate: this is
// spec.md 4.5's "am" inner loop without the 14-bit float-safe split,
// since uint64 holds a full 32x32 product plus carry without overflow.
func mulLimbs(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	result := make([]uint32, len(a)+len(b))
	for i := 0; i < len(a); i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < len(b); j++ {
			prod := uint64(a[i])*uint64(b[j]) + uint64(result[i+j]) + carry
			result[i+j] = uint32(prod)
			carry = prod >> limbBits
		}
		k := i + len(b)
		for carry > 0 {
			sum := uint64(result[k]) + carry
			result[k] = uint32(sum)
			carry = sum >> limbBits
			k++
		}
	}
	return trim(result)
}

// shiftLeftLimbs shifts a left by n whole limbs (dlShiftTo).
func shiftLeftLimbs(a []uint32, n int) []uint32 {
	if len(a) == 0 {
		return nil
	}
	result := make([]uint32, len(a)+n)
	copy(result[n:], a)
	return result
}

// bitAt reports bit i of a (0 = least significant), treating out-of-
// range indices as zero.
func bitAt(a []uint32, i int) bool {
	limb := i / limbBits
	if limb >= len(a) {
		return false
	}
	return a[limb]&(1<<uint(i%limbBits)) != 0
}

// setBit sets bit i of q in place; q must already have enough limbs.
func setBit(q []uint32, i int) {
	q[i/limbBits] |= 1 << uint(i%limbBits)
}

// shiftLeft1 shifts a left by exactly one bit.
func shiftLeft1(a []uint32) []uint32 {
	if len(a) == 0 {
		return nil
	}
	result := make([]uint32, len(a)+1)
	var carry uint32
	for i := 0; i < len(a); i++ {
		result[i] = a[i]<<1 | carry
		carry = a[i] >> (limbBits - 1)
	}
	result[len(a)] = carry
	return trim(result)
}

// divMod performs long division via bit-by-bit shift-and-subtract: a
// correct, simple divRemTo that trades Knuth D's limb-estimate speed
// for clarity, per spec.md 4.5's native-integer escape hatch.
func divMod(a, m []uint32) (q, r []uint32) {
	a, m = trim(a), trim(m)
	if len(m) == 0 {
		panic("bigint: division by zero")
	}
	if cmpLimbs(a, m) < 0 {
		return nil, append([]uint32{}, a...)
	}

	n := bitLenLimbs(a)
	qLimbs := make([]uint32, (n+limbBits-1)/limbBits)
	var remainder []uint32

	for i := n - 1; i >= 0; i-- {
		remainder = shiftLeft1(remainder)
		if bitAt(a, i) {
			if len(remainder) == 0 {
				remainder = []uint32{1}
			} else {
				remainder[0] |= 1
			}
		}
		if cmpLimbs(remainder, m) >= 0 {
			remainder = subLimbs(remainder, m)
			setBit(qLimbs, i)
		}
	}
	return trim(qLimbs), trim(remainder)
}

func bitLenLimbs(a []uint32) int {
	a = trim(a)
	if len(a) == 0 {
		return 0
	}
	top := a[len(a)-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return limbBits*(len(a)-1) + bits
}
