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
// github.com:SymbolNotFound/rsaoaep-go/errors.go

package rsaoaep

import "fmt"

// Kind enumerates the error taxonomy every operation in this module
// surfaces. Callers distinguish failures by extracting the *Error with
// errors.As and inspecting its Kind, or with errors.Is against an *Error
// carrying the wanted Kind. Kind values are not errors themselves.
type Kind int

const (
	// InvalidPEM: armor missing, mismatched BEGIN/END label, or Base64
	// body malformed to the point a DER parse cannot begin.
	InvalidPEM Kind = iota + 1

	// InvalidKey: DER parse failed, SubjectPublicKeyInfo shape wrong,
	// algorithm OID not RSA, or modulus/exponent absent or non-integer.
	InvalidKey

	// UnsupportedHash: the supplied hash selector does not satisfy the
	// hash-state contract.
	UnsupportedHash

	// MessageTooLong: plaintext exceeds k - 2*hLen - 2 octets.
	MessageTooLong

	// EntropyFailure: the CSPRNG could not produce the requested bytes.
	EntropyFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidPEM:
		return "InvalidPEM"
	case InvalidKey:
		return "InvalidKey"
	case UnsupportedHash:
		return "UnsupportedHash"
	case MessageTooLong:
		return "MessageTooLong"
	case EntropyFailure:
		return "EntropyFailure"
	default:
		return "Unknown"
	}
}

// Error is the carrier for every failure this module surfaces. It wraps
// an optional underlying cause while pinning a stable Kind callers can
// switch on.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind, so
// errors.Is(err, &Error{Kind: InvalidPEM}) matches any InvalidPEM error
// regardless of its Msg or wrapped cause.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
