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
// github.com:SymbolNotFound/rsaoaep-go/pem/pem.go

// Package pem strips PEM armor and Base64-decodes the enclosed body,
// independent of the standard library's encoding/pem.
package pem

import (
	"encoding/base64"
	"errors"
	"regexp"
)

// ErrInvalidPEM is returned when the input does not match the armor
// grammar, or when the captured body fails to Base64-decode.
var ErrInvalidPEM = errors.New("invalid PEM armor")

// bodyChars keeps only valid Base64 alphabet characters, stripping
// anything else (line breaks, stray whitespace) before decoding.
var bodyChars = regexp.MustCompile(`[^A-Za-z0-9+/=]`)

// Decode extracts and Base64-decodes the body of a single armored PEM
// block, returning the label and the decoded octets.
func Decode(input string) (label string, body []byte, err error) {
	label, rawBody, ok := matchArmor(input)
	if !ok {
		return "", nil, ErrInvalidPEM
	}

	cleaned := bodyChars.ReplaceAllString(rawBody, "")
	decoded, decErr := base64.StdEncoding.DecodeString(cleaned)
	if decErr != nil {
		return "", nil, ErrInvalidPEM
	}
	return label, decoded, nil
}

// matchArmor applies the armor grammar, backreferencing the label
// between BEGIN and END since Go's regexp package has no backreference
// support.
func matchArmor(input string) (label, body string, ok bool) {
	// Go's RE2 engine cannot express \1 backreferences directly, so the
	// label is matched once, then the END line is checked separately
	// against the same captured text.
	const grammar = `(?s)^\s*-----BEGIN ([A-Z0-9- ]+)-----\r?\n` +
		`((?:[^\r\n]*:[^\r\n]*\r?\n)*)(?:\r?\n)?(.*?)-----END ([A-Z0-9- ]+)-----\s*$`
	re := regexp.MustCompile(grammar)
	m := re.FindStringSubmatch(input)
	if m == nil {
		return "", "", false
	}
	beginLabel, body2, endLabel := m[1], m[3], m[4]
	if beginLabel != endLabel {
		return "", "", false
	}
	return beginLabel, body2, true
}
