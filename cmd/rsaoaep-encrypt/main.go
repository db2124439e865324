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
// github.com:SymbolNotFound/rsaoaep-go/cmd/rsaoaep-encrypt/main.go

package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/SymbolNotFound/rsaoaep-go"
	"github.com/SymbolNotFound/rsaoaep-go/digest/sha1"
	"github.com/SymbolNotFound/rsaoaep-go/digest/sha256"
	"github.com/SymbolNotFound/rsaoaep-go/digest/sha384"
	"github.com/SymbolNotFound/rsaoaep-go/digest/sha512"
)

func main() {
	keyfile := flag.String("key", "", "path to a PEM-armored RSA public key (required)")
	filename := flag.String("file", "", "path to a file that should be encrypted")
	hashname := flag.String("hash", "sha256", "OAEP hash: sha1, sha256, sha384, sha512")
	base64output := flag.Bool("base64", false, "prints the ciphertext in base-64 instead of hex")

	flag.Parse()

	if len(*keyfile) == 0 {
		fmt.Println("Expected a --key flag naming a PEM public key file.  Quitting.")
		fmt.Println()
		flag.Usage()
		return
	}

	var plaintext []byte
	if len(*filename) > 0 {
		var err error
		plaintext, err = os.ReadFile(*filename)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		args := flag.Args()
		if len(args) > 0 {
			plaintext = []byte(args[0])
		} else {
			fmt.Println("Expected a --file flag or a string argument.  Quitting.")
			fmt.Println()
			flag.Usage()
			return
		}
	}

	pemText, err := os.ReadFile(*keyfile)
	if err != nil {
		log.Fatal(err)
	}

	pk, err := rsaoaep.ImportPublicKey(string(pemText))
	if err != nil {
		log.Fatal(err)
	}

	h, err := hashByName(*hashname)
	if err != nil {
		log.Fatal(err)
	}

	ciphertext, err := pk.Encrypt(plaintext, h)
	if err != nil {
		log.Fatal(err)
	}

	if *base64output {
		fmt.Println(base64.StdEncoding.EncodeToString(ciphertext))
	} else {
		fmt.Printf("0x%X\n", ciphertext)
	}
}

// hashByName constructs a fresh digest engine for one of the four OAEP
// hashes this module supports, keyed by the --hash flag's value.
func hashByName(name string) (rsaoaep.Hash, error) {
	switch strings.ToLower(name) {
	case "sha1", "sha-1":
		return sha1.New(), nil
	case "sha256", "sha-256":
		return sha256.New(), nil
	case "sha384", "sha-384":
		return sha384.New(), nil
	case "sha512", "sha-512":
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("unrecognized --hash %q (want one of: sha1, sha256, sha384, sha512)", name)
	}
}
