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


package checksum

import (
	"hash/adler32"
	"hash/crc32"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namePattern = regexp.MustCompile(`^\w[\w-]*$`)

func randomBytes(n int) []byte {
	buf := make([]byte, n)
	rand.New(rand.NewSource(int64(n))).Read(buf)
	return buf
}

func hashOnce(t *testing.T, name string, buf []byte) uint64 {
	h, err := New(name)
	require.NoError(t, err)
	h.Hash(buf)
	return h.Value()
}

func TestNamesAreStableAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range Names() {
		assert.Regexp(t, namePattern, name)
		assert.False(t, seen[name], "duplicate adapter name %s", name)
		seen[name] = true

		h, err := New(name)
		require.NoError(t, err)
		assert.Equal(t, name, h.Name())
	}
	assert.Equal(t, Names(), Names(), "order must be stable")
}

func TestUnknownHash(t *testing.T) {
	_, err := New("lz4-xxhash32")
	assert.ErrorIs(t, err, ErrUnknownHash)

	_, err = Select([]string{"go-adler32", "nope"})
	assert.ErrorIs(t, err, ErrUnknownHash)
}

func TestDeterministic(t *testing.T) {
	for _, size := range []int{32, 1024, 64 * 1024} {
		buf := randomBytes(size)
		for _, name := range Names() {
			assert.Equal(t, hashOnce(t, name, buf), hashOnce(t, name, buf), "%s over %d bytes", name, size)
		}
	}
}

func TestResetMatchesFreshAdapter(t *testing.T) {
	first := randomBytes(512)
	second := randomBytes(2048)

	hashes, err := All()
	require.NoError(t, err)
	for _, h := range hashes {
		h.Hash(first)
		require.NotZero(t, h.Value(), h.Name())
		h.Reset()

		h.Hash(second)
		assert.Equal(t, hashOnce(t, h.Name(), second), h.Value(), h.Name())
	}
}

func TestProvidersAgree(t *testing.T) {
	buf := randomBytes(4096)

	groups := [][]string{
		{"go-crc32", "klauspost-crc32"},
		{"go-crc32c", "klauspost-crc32c"},
		{"cespare-xxhash64", "oneofone-xxhash64", "pierrec-xxhash64"},
		{"oneofone-xxhash32", "pierrec-xxhash32"},
	}
	for _, group := range groups {
		want := hashOnce(t, group[0], buf)
		for _, name := range group[1:] {
			assert.Equal(t, want, hashOnce(t, name, buf), "%s disagrees with %s", name, group[0])
		}
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	buf := randomBytes(777)
	assert.Equal(t, uint64(adler32.Checksum(buf)), hashOnce(t, "go-adler32", buf))
	assert.Equal(t, uint64(crc32.ChecksumIEEE(buf)), hashOnce(t, "go-crc32", buf))
}

func TestEmptyInput(t *testing.T) {
	for _, name := range Names() {
		assert.NotPanics(t, func() { hashOnce(t, name, []byte{}) }, name)
	}

	assert.Equal(t, uint64(1), hashOnce(t, "go-adler32", nil))
	assert.Equal(t, uint64(0), hashOnce(t, "go-crc32", nil))
	assert.Equal(t, uint64(0xef46db3751d8e999), hashOnce(t, "cespare-xxhash64", nil))
	assert.Equal(t, uint64(0xef46db3751d8e999), hashOnce(t, "pierrec-xxhash64", nil))
	assert.Equal(t, uint64(0x02cc5d05), hashOnce(t, "oneofone-xxhash32", nil))
	assert.Equal(t, uint64(0x02cc5d05), hashOnce(t, "pierrec-xxhash32", nil))
}

func TestStreamAccumulatesUntilReset(t *testing.T) {
	buf := randomBytes(64)

	h, err := New("go-adler32")
	require.NoError(t, err)
	h.Hash(buf[:32])
	h.Hash(buf[32:])
	assert.Equal(t, hashOnce(t, "go-adler32", buf), h.Value())
}

func TestFuncReset(t *testing.T) {
	h, err := New("zeebo-xxh3")
	require.NoError(t, err)
	assert.Zero(t, h.Value(), "fresh adapter has no value")

	h.Hash(randomBytes(32))
	assert.NotZero(t, h.Value())
	h.Reset()
	assert.Zero(t, h.Value())
}
