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

package csprng_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/rsaoaep-go/csprng"
)

func Test_Generate_ReturnsRequestedLength(t *testing.T) {
	g := csprng.New(1)
	out, err := g.Generate(37)
	require.NoError(t, err)
	require.Len(t, out, 37)
}

func Test_Generate_DiffersAcrossCalls(t *testing.T) {
	g := csprng.New(1)
	a, err := g.Generate(32)
	require.NoError(t, err)
	b, err := g.Generate(32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func Test_Generate_DiffersAcrossSeeds(t *testing.T) {
	a, err := csprng.New(1).Generate(32)
	require.NoError(t, err)
	b, err := csprng.New(2).Generate(32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func Test_Collect_ChangesOutput(t *testing.T) {
	g1 := csprng.New(42)
	g2 := csprng.New(42)
	g2.Collect([]byte("extra entropy gathered from a host source"))

	a, err := g1.Generate(32)
	require.NoError(t, err)
	b, err := g2.Generate(32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func Test_Generate_ZeroLengthIsEmpty(t *testing.T) {
	g := csprng.New(1)
	out, err := g.Generate(0)
	require.NoError(t, err)
	require.Empty(t, out)
}

func Test_Generate_RejectsNegativeLength(t *testing.T) {
	g := csprng.New(1)
	_, err := g.Generate(-1)
	require.ErrorIs(t, err, csprng.ErrEntropyFailure)
}

func Test_Bytes_MatchesRequestedSize(t *testing.T) {
	g := csprng.New(1)
	require.Len(t, g.Bytes(16), 16)
}

func Test_Uint64_IsNotTriviallyConstant(t *testing.T) {
	g := csprng.New(1)
	a := g.Uint64()
	b := g.Uint64()
	require.NotEqual(t, a, b)
}

func Test_Generate_LongRunHasNoObviousRepeatingBlock(t *testing.T) {
	g := csprng.New(7)
	out, err := g.Generate(64)
	require.NoError(t, err)
	require.False(t, bytes.Equal(out[:16], out[16:32]))
	require.False(t, bytes.Equal(out[:16], out[32:48]))
}
