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


// Package workload produces the byte sequences that are hashed: in-memory
// buffers refilled with random bytes before every iteration, and files on
// disk generated once and reused read-only.
package workload

import (
	"math/rand"
)

// DefaultBufferSizes are the in-memory buffer sizes, in bytes.
var DefaultBufferSizes = []int{
	32,
	64,
	128,
	512,
	1024 * 1,
	1024 * 2,
	1024 * 4,
	1024 * 8,
	1024 * 16,
	1024 * 32,
	1024 * 64,
}

// Buffers allocates one buffer per size. Buffers are allocated once and
// refilled in place.
func Buffers(sizes []int) [][]byte {
	bufs := make([][]byte, len(sizes))
	for i, size := range sizes {
		bufs[i] = make([]byte, size)
	}
	return bufs
}

// Refresher refills buffers with pseudo-random bytes so consecutive
// iterations never hash the same content.
type Refresher struct {
	rnd *rand.Rand
}

// NewRefresher returns a Refresher reading from src.
func NewRefresher(src rand.Source) *Refresher {
	return &Refresher{rnd: rand.New(src)}
}

// Fill overwrites buf with fresh random bytes.
func (r *Refresher) Fill(buf []byte) {
	// (*rand.Rand).Read always fills buf and never fails
	r.rnd.Read(buf)
}
