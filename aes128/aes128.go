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
// github.com:SymbolNotFound/rsaoaep-go/aes128/aes128.go

// Package aes128 implements the AES-128 block cipher (FIPS 197), the
// single-key-size schedule needed by the CSPRNG's counter-mode
// generator, independent of crypto/aes.
package aes128

import "errors"

const (
	BlockSize = 16
	KeySize   = 16
	nk        = 4  // key length in 32-bit words
	nr        = 10 // number of rounds for a 128-bit key
)

// rcon holds the round constants used by the key schedule, one per
// round (index 0 unused to keep 1-based round numbering legible).
var rcon = [11]byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// Cipher holds an expanded AES-128 key schedule.
type Cipher struct {
	roundKeys [(nr + 1) * 16]byte
}

// New expands a 16-byte key into the round key schedule.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, errors.New("aes128: key must be 16 bytes")
	}
	c := &Cipher{}
	c.expandKey(key)
	return c, nil
}

// expandKey runs the standard FIPS 197 key schedule in 32-bit-word
// form: each new word is either RotWord+SubWord+Rcon (every nk words)
// or a straight XOR with the word nk positions back.
func (c *Cipher) expandKey(key []byte) {
	var w [4 * (nr + 1)][4]byte
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}
	for i := nk; i < 4*(nr+1); i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/nk]
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-nk][j] ^ temp[j]
		}
	}
	for i := range w {
		copy(c.roundKeys[4*i:4*i+4], w[i][:])
	}
}

func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

func subWord(w [4]byte) [4]byte {
	return [4]byte{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

// EncryptBlock encrypts exactly one 16-byte block, leaving block
// untouched and returning the ciphertext in a fresh slice.
func (c *Cipher) EncryptBlock(block []byte) []byte {
	state := make([]byte, BlockSize)
	copy(state, block)

	state = addRoundKey(state, c.roundKeys[0:16])
	for round := 1; round < nr; round++ {
		state = subBytes(state)
		state = shiftRows(state)
		state = mixColumns(state)
		state = addRoundKey(state, c.roundKeys[16*round:16*round+16])
	}
	state = subBytes(state)
	state = shiftRows(state)
	state = addRoundKey(state, c.roundKeys[16*nr:16*nr+16])

	return state
}

func subBytes(state []byte) []byte {
	out := make([]byte, BlockSize)
	for i, b := range state {
		out[i] = sbox[b]
	}
	return out
}

// shiftRows operates on the column-major state layout shared with the
// AES-256 implementation this package was adapted from: state[r + 4*c]
// is row r, column c.
func shiftRows(state []byte) []byte {
	out := make([]byte, BlockSize)
	copy(out, state)
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r+4*c] = state[r+4*((c+r)%4)]
		}
	}
	return out
}

func mixColumns(state []byte) []byte {
	out := make([]byte, BlockSize)
	for c := 0; c < 4; c++ {
		i := 4 * c
		out[i+0] = gmul(0x02, state[i+0]) ^ gmul(0x03, state[i+1]) ^ state[i+2] ^ state[i+3]
		out[i+1] = state[i+0] ^ gmul(0x02, state[i+1]) ^ gmul(0x03, state[i+2]) ^ state[i+3]
		out[i+2] = state[i+0] ^ state[i+1] ^ gmul(0x02, state[i+2]) ^ gmul(0x03, state[i+3])
		out[i+3] = gmul(0x03, state[i+0]) ^ state[i+1] ^ state[i+2] ^ gmul(0x02, state[i+3])
	}
	return out
}

func addRoundKey(state []byte, roundKey []byte) []byte {
	out := make([]byte, BlockSize)
	for i := range state {
		out[i] = state[i] ^ roundKey[i]
	}
	return out
}
