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

package safe_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/rsaoaep-go/safe"
)

// countingSource hands out slices of ceil(bits/8) bytes derived from an
// incrementing counter, standing in for a real Source without pulling
// in csprng.
type countingSource struct {
	mu   sync.Mutex
	next uint64
}

func (s *countingSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

func (s *countingSource) Bytes(bits uint8) []byte {
	out := make([]byte, (int(bits)+7)/8)
	for i := range out {
		out[i] = byte(s.Uint64())
	}
	return out
}

func Test_SafeRandom_ChannelDeliversDistinctSlices(t *testing.T) {
	source := &countingSource{}
	guard := safe.New(source, 32)
	defer guard.Close()

	a := <-guard.Channel()
	b := <-guard.Channel()
	require.Len(t, a, 4)
	require.NotEqual(t, a, b)
}

func Test_SafeRandom_Close_StopsDelivery(t *testing.T) {
	source := &countingSource{}
	guard := safe.New(source, 8)
	<-guard.Channel()
	guard.Close()
	guard.Close() // must not panic on repeated Close

	_, ok := <-guard.Channel()
	require.False(t, ok)
}

func Test_ExtendSource_Bytes_MatchesRequestedByteCount(t *testing.T) {
	source := safe.ExtendSource(&countingSource{})
	require.Len(t, source.Bytes(40), 5)
	require.Len(t, source.Bytes(0), 0)
}

type fakeGenerator struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeGenerator) Generate(count int) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	defer f.mu.Unlock()
	return make([]byte, count), nil
}

func Test_Guard_SerializesConcurrentCalls(t *testing.T) {
	gen := &fakeGenerator{}
	guard := safe.NewGuard(gen)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := guard.Generate(16)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, 50, gen.calls)
}
