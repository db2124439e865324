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
// github.com:SymbolNotFound/rsaoaep-go/safe/guard.go

package safe

import "sync"

// Generator is the slice of csprng.Generator this package depends on,
// declared locally so safe does not import csprng (the dependency
// runs the other way: callers wire a *csprng.Generator into a Guard).
type Generator interface {
	Generate(count int) ([]byte, error)
}

// Guard serializes access to a Generator behind a mutex, for callers
// that want a direct synchronous call rather than the channel idiom
// of SafeRandom.
type Guard struct {
	mu  sync.Mutex
	gen Generator
}

// NewGuard wraps gen in a mutex-backed Guard.
func NewGuard(gen Generator) *Guard {
	return &Guard{gen: gen}
}

// Generate draws count bytes from the underlying generator, excluding
// concurrent callers from interleaving with each other.
func (g *Guard) Generate(count int) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen.Generate(count)
}
