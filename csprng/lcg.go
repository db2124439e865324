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
// github.com:SymbolNotFound/rsaoaep-go/csprng/lcg.go

package csprng

// parkMiller is the "minimal standard" 31-bit Lehmer/Park-Miller linear
// congruential generator (modulus 2^31-1, multiplier 16807). spec.md
// 4.6 names this as half of the built-in entropy source, XORed against
// a second, hash-based stream -- neither half is cryptographically
// sufficient alone, which is exactly why spec.md recommends replacing
// this source entirely on any host with a real OS CSPRNG.
type parkMiller struct {
	state uint32
}

const (
	pmModulus    = 2147483647 // 2^31 - 1, a Mersenne prime
	pmMultiplier = 16807
)

func newParkMiller(seed uint32) *parkMiller {
	seed %= pmModulus
	if seed == 0 {
		seed = 1
	}
	return &parkMiller{state: seed}
}

func (p *parkMiller) next() uint32 {
	p.state = uint32((uint64(p.state) * pmMultiplier) % pmModulus)
	return p.state
}

// bytes fills n pseudorandom bytes from successive 31-bit outputs,
// packed big-endian 4 bytes at a time (the top bit of each output is
// always zero, which is fine for XOR-mixing with the hash-based half).
func (p *parkMiller) bytes(n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i += 4 {
		v := p.next()
		for b := 0; b < 4 && i+b < n; b++ {
			out[i+b] = byte(v >> (8 * uint(3-b)))
		}
	}
	return out
}
