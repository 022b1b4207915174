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


// Package digest adapts cryptographic digest libraries to one streaming
// contract. The same nominal algorithm is usually available from several
// providers, and every adapter name carries both so their results can be
// compared next to each other.
package digest

import (
	"errors"
	"hash"
)

// Algorithm names a digest algorithm independently of who implements it.
type Algorithm string

// Algorithms known to the harness. Not every algorithm has a provider.
const (
	SHA256     Algorithm = "SHA-256"
	RIPEMD160  Algorithm = "RIPEMD-160"
	RIPEMD256  Algorithm = "RIPEMD-256"
	BLAKE2b256 Algorithm = "BLAKE2b-256"
	SHA3_256   Algorithm = "SHA3-256"
	BLAKE3_256 Algorithm = "BLAKE3-256"
)

// Algorithms lists every known algorithm in benchmark order.
var Algorithms = []Algorithm{SHA256, RIPEMD160, RIPEMD256, BLAKE2b256, SHA3_256, BLAKE3_256}

var (
	// ErrUnsupported is returned when no provider implements an algorithm.
	ErrUnsupported = errors.New("unsupported algorithm/provider combination")

	// ErrFinalized is the panic value for feeding or finalizing a digest
	// whose Value was already taken without an intervening Reset.
	ErrFinalized = errors.New("digest finalized, Reset before reuse")
)

// Digest is a streaming digest adapter bound to one algorithm and one
// provider.
type Digest interface {
	// Name is "<md|direct>-<algorithm>-<provider>".
	Name() string

	// Hash feeds the whole buffer; it is one Update over buf.
	Hash(buf []byte)

	// Update feeds a sub-range of a larger input. Callers pass the range as
	// a sub-slice, e.g. chunk[:n].
	Update(p []byte)

	// Value finalizes the digest and returns it. The adapter must be Reset
	// before it is used again.
	Value() []byte

	// Reset returns the adapter to its initial state.
	Reset()
}

type hashDigest struct {
	name      string
	h         hash.Hash
	finalized bool
}

func (d *hashDigest) Name() string { return d.name }

func (d *hashDigest) Hash(buf []byte) { d.Update(buf) }

func (d *hashDigest) Update(p []byte) {
	if d.finalized {
		panic(ErrFinalized)
	}
	d.h.Write(p)
}

func (d *hashDigest) Value() []byte {
	if d.finalized {
		panic(ErrFinalized)
	}
	d.finalized = true
	return d.h.Sum(nil)
}

func (d *hashDigest) Reset() {
	d.h.Reset()
	d.finalized = false
}
