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

package aes128_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/rsaoaep-go/aes128"
)

// Test_EncryptBlock_FIPS197Vector is FIPS 197 Appendix C.1's AES-128
// example vector: a single AES-128 block encryption.
func Test_EncryptBlock_FIPS197Vector(t *testing.T) {
	key, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	plaintext, err := hex.DecodeString("00112233445566778899aabbccddeeff")
	require.NoError(t, err)
	want, err := hex.DecodeString("69c4e0d86a7b0430d8cdb78070b4c55a")
	require.NoError(t, err)

	cipher, err := aes128.New(key)
	require.NoError(t, err)

	got := cipher.EncryptBlock(plaintext)
	require.Equal(t, want, got)
}

func Test_New_RejectsWrongKeySize(t *testing.T) {
	_, err := aes128.New(make([]byte, 24))
	require.Error(t, err)
}

func Test_EncryptBlock_DifferentKeysDiverge(t *testing.T) {
	block := make([]byte, aes128.BlockSize)
	k1, _ := aes128.New(make([]byte, aes128.KeySize))
	k2Key := make([]byte, aes128.KeySize)
	k2Key[0] = 0x01
	k2, _ := aes128.New(k2Key)

	require.NotEqual(t, k1.EncryptBlock(block), k2.EncryptBlock(block))
}
