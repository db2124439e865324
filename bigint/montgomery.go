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
// github.com:SymbolNotFound/rsaoaep-go/bigint/montgomery.go

package bigint

// montgomeryCtx caches the per-modulus constants Montgomery reduction
// needs: the limb count t, and n' = -m[0]^-1 mod 2^32 (invDigit in
// spec.md 4.5's vocabulary).
type montgomeryCtx struct {
	m      []uint32
	t      int
	nPrime uint32
}

func newMontgomeryCtx(m []uint32) *montgomeryCtx {
	if len(m) == 0 || m[0]&1 == 0 {
		panic("bigint: Montgomery reduction requires an odd modulus")
	}
	return &montgomeryCtx{m: m, t: len(m), nPrime: invDigit(m[0])}
}

// invDigit computes -d^-1 mod 2^32 via Newton-Raphson 2-adic inversion:
// d itself is correct to 3 bits for any odd d, and each iteration
// doubles the correct bit count (3 -> 6 -> 12 -> 24 -> 48), so five
// iterations comfortably cover all 32 bits.
func invDigit(d uint32) uint32 {
	x := d
	for i := 0; i < 5; i++ {
		x = x * (2 - d*x)
	}
	return -x
}

// addMulShifted adds u*m into t starting at limb index shift,
// propagating carry through the rest of t. t must have enough trailing
// capacity for the carry to settle (montgomeryReduce allocates 2*t+2).
func addMulShifted(t []uint32, m []uint32, u uint32, shift int) {
	var carry uint64
	for j := 0; j < len(m); j++ {
		prod := uint64(u)*uint64(m[j]) + uint64(t[shift+j]) + carry
		t[shift+j] = uint32(prod)
		carry = prod >> limbBits
	}
	k := shift + len(m)
	for carry > 0 {
		sum := uint64(t[k]) + carry
		t[k] = uint32(sum)
		carry = sum >> limbBits
		k++
	}
}

// reduce runs REDC(T) = T * R^-1 mod m, where R = 2^(DB*t). T is
// consumed as the low-order limbs of a working buffer sized 2t+2 to
// leave room for carry propagation during the t addMulShifted rounds.
func (ctx *montgomeryCtx) reduce(T []uint32) []uint32 {
	work := make([]uint32, 2*ctx.t+2)
	copy(work, T)

	for i := 0; i < ctx.t; i++ {
		u := work[i] * ctx.nPrime
		addMulShifted(work, ctx.m, u, i)
	}

	result := trim(append([]uint32{}, work[ctx.t:]...))
	if cmpLimbs(result, ctx.m) >= 0 {
		result = subLimbs(result, ctx.m)
	}
	return result
}

// montgomeryForm computes xR mod m = (x << DB*t) mod m, per spec.md
// 4.5's conversion step.
func (ctx *montgomeryCtx) montgomeryForm(x []uint32) []uint32 {
	shifted := shiftLeftLimbs(trim(x), ctx.t)
	_, r := divMod(shifted, ctx.m)
	return r
}

// monPro is Montgomery multiplication: REDC(a*b).
func (ctx *montgomeryCtx) monPro(a, b []uint32) []uint32 {
	return ctx.reduce(mulLimbs(a, b))
}

// ModPow computes base^exp mod m using left-to-right binary
// exponentiation in Montgomery form (spec.md 4.5's window k=1: square
// every bit, multiply by the base when the bit is set).
func ModPow(base, exp, m *BigInt) *BigInt {
	if m.IsZero() {
		panic("bigint: ModPow with zero modulus")
	}
	mLimbs := trim(m.limbs)
	ctx := newMontgomeryCtx(mLimbs)

	_, baseMod := divMod(base.limbs, mLimbs)
	baseR := ctx.montgomeryForm(baseMod)
	oneR := ctx.montgomeryForm([]uint32{1})

	expLimbs := trim(exp.limbs)
	bits := bitLenLimbs(expLimbs)

	acc := oneR
	for i := bits - 1; i >= 0; i-- {
		acc = ctx.monPro(acc, acc)
		if bitAt(expLimbs, i) {
			acc = ctx.monPro(acc, baseR)
		}
	}

	// revert: REDC(acc) = acc * R^-1 mod m
	return &BigInt{limbs: ctx.reduce(acc)}
}
