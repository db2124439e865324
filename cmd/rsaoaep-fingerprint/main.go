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
// github.com:SymbolNotFound/rsaoaep-go/cmd/rsaoaep-fingerprint/main.go

package main

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/SymbolNotFound/rsaoaep-go"
	"github.com/SymbolNotFound/rsaoaep-go/digest/sha1"
	"github.com/SymbolNotFound/rsaoaep-go/pem"
)

// Signature pairs a key's content hash with the path it was read from.
type Signature struct {
	Content  hash64 `json:"signature"`
	Filepath string `json:"file_path"`
}

// KeyIndex tracks every signature seen so far and the first path it was
// found at, writing every occurrence (first and duplicate alike) to a
// JSON-lines report as it goes.
type KeyIndex struct {
	index  map[hash64]string
	output chan<- Signature
}

// Walks every file under --in-path (default ".") that parses as a
// PEM-armored RSA public key, fingerprints its DER payload (so two PEM
// files differing only in line wrapping or header comments still
// collide), and writes every key's signature (first occurrence and
// duplicates alike) to --out-file in JSON-lines form, logging each
// duplicate as it is found.
//
// Example usage:
//
//	rsaoaep-fingerprint --in-path ./keys --out-file duplicates.jsonl
//
// Files that do not parse as an RSA SubjectPublicKeyInfo are skipped
// with a warning rather than aborting the whole walk, since a key
// directory commonly has other files mixed in.
func main() {
	inpath := flag.String("in-path", ".", "directory to walk for PEM public keys")
	outpath := flag.String("out-file", "duplicates.jsonl",
		"path to write the JSON-lines duplicate report")

	flag.Parse()
	fmt.Println("inspecting PEM public keys under " + *inpath)

	idx := newKeyIndex(*outpath)
	err := filepath.WalkDir(*inpath,
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			if ferr := idx.addToIndex(path); ferr != nil {
				fmt.Printf("%s: skipped (%v)\n", path, ferr)
			}
			return nil
		})
	if err != nil {
		fmt.Println(err)
	}
	close(idx.output)
}

type hash64 string

func bytesToBase64(b []byte) hash64 {
	return hash64(base64.StdEncoding.EncodeToString(b))
}

func newKeyIndex(outpath string) *KeyIndex {
	return &KeyIndex{
		index:  make(map[hash64]string),
		output: newWriter(outpath),
	}
}

// addToIndex validates the file at path as a PEM RSA public key, then
// fingerprints its DER body and records (or reports a duplicate of) it.
func (idx *KeyIndex) addToIndex(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// ImportPublicKey validates the file is actually a usable RSA key
	// before it's worth fingerprinting at all.
	if _, err := rsaoaep.ImportPublicKey(string(data)); err != nil {
		return err
	}
	_, body, err := pem.Decode(string(data))
	if err != nil {
		return err
	}

	digest, err := sha1.HashBytes(body)
	if err != nil {
		return err
	}
	sig64 := bytesToBase64(digest)

	first, seen := idx.index[sig64]
	if !seen {
		idx.index[sig64] = path
		idx.output <- Signature{sig64, path}
		return nil
	}

	log.Printf("%s duplicates %s (signature %s)", path, first, sig64)
	idx.output <- Signature{sig64, path}
	return nil
}

// newWriter creates a signature writer in JSON-lines format, backed by
// a goroutine so addToIndex never blocks on file I/O.
func newWriter(outpath string) chan<- Signature {
	file, err := os.Create(outpath)
	if err != nil {
		log.Fatal(err)
	}
	channel := make(chan Signature)
	go func() {
		defer file.Close()
		writer := bufio.NewWriter(file)
		defer writer.Flush()

		for sig := range channel {
			bytes, err := json.Marshal(sig)
			if err != nil {
				fmt.Printf("%s error:\n   %s\n", sig.Filepath, err)
				continue
			}
			writer.Write(bytes)
			writer.WriteByte('\n')
			writer.Flush()
		}
	}()

	return channel
}
