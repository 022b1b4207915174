// Copyright (c) 2015 Uber Technologies, Inc.
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
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.


package digest

import (
	"crypto"
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	decredripemd160 "github.com/decred/dcrd/crypto/ripemd160"
	blake2bsimd "github.com/minio/blake2b-simd"
	sha256simd "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// CryptoProvider resolves algorithms through Go's crypto.Hash registry, the
// way a caller that only knows an algorithm identifier would. The x/crypto
// imports above register RIPEMD-160, BLAKE2b and SHA3 with it.
const CryptoProvider = "crypto"

// Providers lists every provider in benchmark order.
var Providers = []string{CryptoProvider, "go", "minio", "x", "decred", "zeebo"}

var registered = map[Algorithm]crypto.Hash{
	SHA256:     crypto.SHA256,
	RIPEMD160:  crypto.RIPEMD160,
	BLAKE2b256: crypto.BLAKE2b_256,
	SHA3_256:   crypto.SHA3_256,
}

type newFunc func() (hash.Hash, error)

func plain(f func() hash.Hash) newFunc {
	return func() (hash.Hash, error) { return f(), nil }
}

var direct = map[string]map[Algorithm]newFunc{
	"go": {
		SHA256: plain(sha256.New),
	},
	"minio": {
		SHA256:     plain(sha256simd.New),
		BLAKE2b256: plain(blake2bsimd.New256),
	},
	"x": {
		RIPEMD160: plain(ripemd160.New),
		BLAKE2b256: func() (hash.Hash, error) {
			return blake2b.New256(nil)
		},
		SHA3_256: plain(sha3.New256),
	},
	"decred": {
		RIPEMD160: plain(decredripemd160.New),
	},
	"zeebo": {
		BLAKE3_256: func() (hash.Hash, error) {
			return blake3.New(), nil
		},
	},
}

// Name returns the adapter name for an algorithm and provider.
func Name(alg Algorithm, provider string) string {
	prefix := "direct"
	if provider == CryptoProvider {
		prefix = "md"
	}
	return prefix + "-" + string(alg) + "-" + provider
}

// Parse splits an adapter name back into its algorithm and provider.
func Parse(name string) (Algorithm, string, error) {
	var rest string
	switch {
	case strings.HasPrefix(name, "md-"):
		rest = strings.TrimPrefix(name, "md-")
	case strings.HasPrefix(name, "direct-"):
		rest = strings.TrimPrefix(name, "direct-")
	default:
		return "", "", fmt.Errorf("malformed digest adapter name %q", name)
	}
	i := strings.LastIndex(rest, "-")
	if i <= 0 || i == len(rest)-1 {
		return "", "", fmt.Errorf("malformed digest adapter name %q", name)
	}
	alg, provider := Algorithm(rest[:i]), rest[i+1:]
	if name != Name(alg, provider) {
		return "", "", fmt.Errorf("malformed digest adapter name %q", name)
	}
	return alg, provider, nil
}

// New constructs the adapter for alg as implemented by provider.
func New(alg Algorithm, provider string) (Digest, error) {
	h, err := lookup(alg, provider)
	if err != nil {
		return nil, fmt.Errorf("digest %s from %s: %w", alg, provider, err)
	}
	return &hashDigest{name: Name(alg, provider), h: h}, nil
}

// NewByName constructs an adapter from its name.
func NewByName(name string) (Digest, error) {
	alg, provider, err := Parse(name)
	if err != nil {
		return nil, err
	}
	return New(alg, provider)
}

func lookup(alg Algorithm, provider string) (hash.Hash, error) {
	if provider == CryptoProvider {
		ch, ok := registered[alg]
		if !ok || !ch.Available() {
			return nil, ErrUnsupported
		}
		return ch.New(), nil
	}
	f, ok := direct[provider][alg]
	if !ok {
		return nil, ErrUnsupported
	}
	return f()
}

// Supported reports whether provider implements alg.
func Supported(alg Algorithm, provider string) bool {
	_, err := lookup(alg, provider)
	return err == nil
}

// Pairs returns the names of every constructible adapter, grouped by
// algorithm and ordered by provider.
func Pairs() []string {
	var names []string
	for _, alg := range Algorithms {
		for _, provider := range Providers {
			if Supported(alg, provider) {
				names = append(names, Name(alg, provider))
			}
		}
	}
	return names
}

// Select constructs the named adapters, in the order given.
func Select(names []string) ([]Digest, error) {
	digests := make([]Digest, 0, len(names))
	for _, name := range names {
		d, err := NewByName(name)
		if err != nil {
			return nil, err
		}
		digests = append(digests, d)
	}
	return digests, nil
}
