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
// github.com:SymbolNotFound/rsaoaep-go/asn1/asn1.go

// Package asn1 parses DER-encoded ASN.1 into a generic tag/length/value
// tree, independent of the standard library's encoding/asn1.
package asn1

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned for any structural DER violation: truncated
// length, high-tag-number form, or a length running past the buffer.
var ErrMalformed = errors.New("malformed DER encoding")

// Class is the tag class occupying the top two bits of the tag byte.
type Class byte

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Universal tag numbers this parser cares about.
const (
	TagInteger   = 0x02
	TagBitString = 0x03
	TagNull      = 0x05
	TagOID       = 0x06
	TagSequence  = 0x10
)

// Node is one parsed TLV element. Constructed nodes carry Children;
// primitive nodes carry Value. BIT STRING nodes always keep their raw
// payload in BitStringContents, even when a speculative nested decode
// also populates Children.
type Node struct {
	Class       Class
	Type        int
	Constructed bool
	Value       []byte

	Children []*Node

	// BitStringContents holds the original BIT STRING payload
	// (including the leading unused-bits byte) whenever Type ==
	// TagBitString.
	BitStringContents []byte
}

// Parse decodes the single top-level element in der. Trailing bytes
// after that element are not an error; the caller (SubjectPublicKeyInfo
// extraction) only ever expects exactly one top-level SEQUENCE.
func Parse(der []byte) (*Node, error) {
	node, _, err := parseNode(der)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// parseNode reads one TLV element starting at the front of buf and
// returns the node plus the number of bytes it consumed.
func parseNode(buf []byte) (*Node, int, error) {
	if len(buf) < 2 {
		return nil, 0, fmt.Errorf("%w: truncated tag/length", ErrMalformed)
	}

	tagByte := buf[0]
	class := Class((tagByte >> 6) & 0x03)
	constructed := tagByte&0x20 != 0
	typ := int(tagByte & 0x1f)
	if typ == 0x1f {
		// High-tag-number form: the spec leaves this undefined behavior
		// in the source; this implementation rejects it explicitly.
		return nil, 0, fmt.Errorf("%w: high-tag-number form not supported", ErrMalformed)
	}

	length, lengthBytes, err := parseLength(buf[1:])
	if err != nil {
		return nil, 0, err
	}

	headerLen := 1 + lengthBytes
	if headerLen+length > len(buf) {
		return nil, 0, fmt.Errorf("%w: length runs past buffer", ErrMalformed)
	}
	value := buf[headerLen : headerLen+length]
	total := headerLen + length

	node := &Node{Class: class, Type: typ, Constructed: constructed}

	switch {
	case constructed:
		children, err := parseChildren(value)
		if err != nil {
			return nil, 0, err
		}
		node.Children = children
		node.Value = value

	case typ == TagBitString:
		node.Value = value
		node.BitStringContents = value
		if children, ok := trySpeculativeBitString(value); ok {
			node.Constructed = true
			node.Children = children
		}

	default:
		node.Value = value
	}

	return node, total, nil
}

// parseLength reads the DER length field: short form when the high bit
// of the first byte is clear, long form otherwise (low 7 bits give the
// count of following big-endian length octets).
func parseLength(buf []byte) (length int, consumed int, err error) {
	if len(buf) == 0 {
		return 0, 0, fmt.Errorf("%w: missing length byte", ErrMalformed)
	}
	first := buf[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}

	count := int(first & 0x7f)
	if count == 0 || count > len(buf)-1 {
		return 0, 0, fmt.Errorf("%w: invalid long-form length", ErrMalformed)
	}
	n := 0
	for i := 0; i < count; i++ {
		n = n<<8 | int(buf[1+i])
	}
	return n, 1 + count, nil
}

// parseChildren recursively parses children of a constructed node until
// the byte budget is exhausted.
func parseChildren(buf []byte) ([]*Node, error) {
	var children []*Node
	for len(buf) > 0 {
		child, n, err := parseNode(buf)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		buf = buf[n:]
	}
	return children, nil
}

// trySpeculativeBitString attempts to decode a BIT STRING's contents as
// a single nested ASN.1 object, per spec.md 4.4: if the leading
// unused-bits byte is zero and the nested object consumes exactly the
// remaining bytes, the BIT STRING is treated as constructed with that
// one child.
func trySpeculativeBitString(value []byte) ([]*Node, bool) {
	if len(value) <= 1 || value[0] != 0x00 {
		return nil, false
	}
	inner := value[1:]
	child, n, err := parseNode(inner)
	if err != nil || n != len(inner) {
		return nil, false
	}
	return []*Node{child}, true
}

// DecodeOID renders an OID node's raw value into dotted-decimal form:
// the first byte y encodes the first two arcs as floor(y/40).(y%40);
// subsequent arcs are base-128 with the high bit as a continuation
// flag.
func DecodeOID(value []byte) (string, error) {
	if len(value) == 0 {
		return "", fmt.Errorf("%w: empty OID", ErrMalformed)
	}

	var arcs []string
	first := int(value[0])
	arcs = append(arcs, strconv.Itoa(first/40), strconv.Itoa(first%40))

	arc := 0
	started := false
	for _, b := range value[1:] {
		arc = arc<<7 | int(b&0x7f)
		started = true
		if b&0x80 == 0 {
			arcs = append(arcs, strconv.Itoa(arc))
			arc = 0
			started = false
		}
	}
	if started {
		return "", fmt.Errorf("%w: truncated OID arc", ErrMalformed)
	}

	return strings.Join(arcs, "."), nil
}

// Template describes the shape a Node must match for structural
// validation: tag class/type/constructed flag, and optionally the
// number of children (a nil Children slice skips that check).
type Template struct {
	Class       Class
	Type        int
	Constructed bool
	Children    []Template
}

// Matches reports whether node has the same tag shape as t, recursing
// into children when t specifies any. It is shape-only: primitive
// Value bytes are never inspected.
func (t Template) Matches(node *Node) bool {
	if node == nil {
		return false
	}
	if node.Class != t.Class || node.Type != t.Type || node.Constructed != t.Constructed {
		return false
	}
	if t.Children == nil {
		return true
	}
	if len(node.Children) != len(t.Children) {
		return false
	}
	for i, childTemplate := range t.Children {
		if !childTemplate.Matches(node.Children[i]) {
			return false
		}
	}
	return true
}
