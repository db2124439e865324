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

package pem_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/rsaoaep-go/pem"
)

func block(label string, payload []byte) string {
	body := base64.StdEncoding.EncodeToString(payload)
	var lines []string
	for i := 0; i < len(body); i += 64 {
		end := i + 64
		if end > len(body) {
			end = len(body)
		}
		lines = append(lines, body[i:end])
	}
	return "-----BEGIN " + label + "-----\n" + strings.Join(lines, "\n") + "\n-----END " + label + "-----\n"
}

func Test_Decode_RoundTrip(t *testing.T) {
	payload := []byte("some arbitrary DER-shaped bytes, not actually DER")
	input := block("PUBLIC KEY", payload)

	label, body, err := pem.Decode(input)
	require.NoError(t, err)
	require.Equal(t, "PUBLIC KEY", label)
	require.Equal(t, payload, body)
}

func Test_Decode_ToleratesHeaderLinesAndSurroundingWhitespace(t *testing.T) {
	payload := []byte("payload")
	encoded := base64.StdEncoding.EncodeToString(payload)
	input := "\n\n  -----BEGIN PUBLIC KEY-----\n" +
		"Proc-Type: 4,ENCRYPTED\n" +
		"\n" +
		encoded + "\n" +
		"-----END PUBLIC KEY-----\n\n"

	label, body, err := pem.Decode(input)
	require.NoError(t, err)
	require.Equal(t, "PUBLIC KEY", label)
	require.Equal(t, payload, body)
}

func Test_Decode_TruncatedArmorFails(t *testing.T) {
	input := block("PUBLIC KEY", []byte("payload"))
	_, _, err := pem.Decode(input[1:])
	require.ErrorIs(t, err, pem.ErrInvalidPEM)
}

func Test_Decode_MismatchedLabelFails(t *testing.T) {
	input := block("PUBLIC KEY", []byte("payload"))
	input = strings.Replace(input, "-----END PUBLIC KEY-----", "-----END public KEY-----", 1)
	_, _, err := pem.Decode(input)
	require.ErrorIs(t, err, pem.ErrInvalidPEM)
}

func Test_Decode_NonBase64BodyFails(t *testing.T) {
	input := "-----BEGIN PUBLIC KEY-----\n!!!not base64!!!\n-----END PUBLIC KEY-----\n"
	_, _, err := pem.Decode(input)
	require.ErrorIs(t, err, pem.ErrInvalidPEM)
}

func Test_Decode_StripsStrayCharactersInBody(t *testing.T) {
	payload := []byte("payload bytes")
	encoded := base64.StdEncoding.EncodeToString(payload)
	input := "-----BEGIN PUBLIC KEY-----\n" + encoded + " \t\n-----END PUBLIC KEY-----\n"

	_, body, err := pem.Decode(input)
	require.NoError(t, err)
	require.Equal(t, payload, body)
}
