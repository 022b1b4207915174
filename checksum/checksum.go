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


// Package checksum adapts non-cryptographic hash and checksum libraries to a
// single whole-buffer contract so their speed can be compared side by side.
package checksum

import (
	"hash"
)

// Hash is a whole-buffer hash adapter bound to one algorithm and one
// providing library. Adapters are stateful and reused across iterations; Reset
// must be called before each reuse.
type Hash interface {
	// Name identifies both the algorithm and the provider, e.g.
	// "pierrec-xxhash64".
	Name() string

	// Hash consumes the whole buffer.
	Hash(buf []byte)

	// Value returns the current result widened to 64 bits.
	Value() uint64

	// Reset returns the adapter to its freshly constructed state.
	Reset()
}

// streamHash adapts a hash.Hash32 or hash.Hash64 whose state accumulates over
// successive writes.
type streamHash struct {
	name  string
	h     hash.Hash
	value func() uint64
}

func newStream32(name string, h hash.Hash32) *streamHash {
	return &streamHash{name: name, h: h, value: func() uint64 { return uint64(h.Sum32()) }}
}

func newStream64(name string, h hash.Hash64) *streamHash {
	return &streamHash{name: name, h: h, value: h.Sum64}
}

func (s *streamHash) Name() string { return s.name }

func (s *streamHash) Hash(buf []byte) {
	// hash.Hash never returns an error from Write
	s.h.Write(buf)
}

func (s *streamHash) Value() uint64 { return s.value() }

func (s *streamHash) Reset() { s.h.Reset() }

// funcHash adapts a one-shot function. Each Hash call replaces the value.
type funcHash struct {
	name  string
	fn    func([]byte) uint64
	value uint64
}

func newFunc(name string, fn func([]byte) uint64) *funcHash {
	return &funcHash{name: name, fn: fn}
}

func (f *funcHash) Name() string { return f.name }

func (f *funcHash) Hash(buf []byte) { f.value = f.fn(buf) }

func (f *funcHash) Value() uint64 { return f.value }

func (f *funcHash) Reset() { f.value = 0 }
