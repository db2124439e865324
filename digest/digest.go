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
// github.com:SymbolNotFound/rsaoaep-go/digest/digest.go

// Package digest declares the shared contract every message-digest
// engine in this module satisfies (SHA-1, SHA-256, SHA-384, SHA-512).
// Each concrete engine lives in its own subpackage and implements
// Hasher structurally -- there is no common base type, only a shared
// shape, the same way the teacher's sha1 package defines Hasher/Digest
// locally rather than importing a shared interface.
package digest

import "io"

// Digest is a finalized message digest.
type Digest interface {
	Bytes() []byte
}

// Hasher is the start/update/digest lifecycle every hash engine in this
// module exposes. It also satisfies io.Writer so engines interoperate
// with anything that copies into a writer.
type Hasher interface {
	io.Writer

	// Start (re-)initializes the engine, discarding any absorbed message.
	Start()

	// Update absorbs more message bytes.
	Update(msg []byte)

	// Digest finalizes and returns the digest. It operates on a working
	// copy of the internal state and always leaves the engine usable by
	// a subsequent Start(); it does not support resuming Update() calls
	// without an intervening Start().
	Digest() Digest

	// DigestLength is the digest size in bytes (hLen in RFC 8017 terms).
	DigestLength() int

	// BlockSize is the underlying compression function's block size in
	// bytes (64 for SHA-1/256, 128 for SHA-384/512).
	BlockSize() int
}

// Algorithm names one of the four supported hash algorithms.
type Algorithm int

const (
	SHA1 Algorithm = iota
	SHA256
	SHA384
	SHA512
)

// String names the algorithm, e.g. for error messages and OAEP labels.
func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "SHA-1"
	case SHA256:
		return "SHA-256"
	case SHA384:
		return "SHA-384"
	case SHA512:
		return "SHA-512"
	default:
		return "unknown"
	}
}
