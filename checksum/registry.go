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
	"errors"
	"fmt"
	stdadler32 "hash/adler32"
	stdcrc32 "hash/crc32"

	oneofone "github.com/OneOfOne/xxhash"
	cespare "github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/dgryski/go-farm"
	kpcrc32 "github.com/klauspost/crc32"
	"github.com/minio/highwayhash"
	"github.com/pierrec/xxHash/xxHash32"
	"github.com/pierrec/xxHash/xxHash64"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// ErrUnknownHash is returned by New for names that are not registered.
var ErrUnknownHash = errors.New("unknown checksum adapter")

// Keys for the keyed algorithms. They only need to be fixed so results are
// deterministic for identical input.
var (
	sipK0, sipK1 uint64 = 0x0706050403020100, 0x0f0e0d0c0b0a0908
	highwayKey          = []byte("hashbench-highwayhash-key-32byte")
)

type constructor struct {
	name string
	new  func() (Hash, error)
}

// registry lists every adapter in the order benchmarks run them.
var registry = []constructor{
	{"go-adler32", func() (Hash, error) {
		return newStream32("go-adler32", stdadler32.New()), nil
	}},
	{"go-crc32", func() (Hash, error) {
		return newStream32("go-crc32", stdcrc32.NewIEEE()), nil
	}},
	{"go-crc32c", func() (Hash, error) {
		return newStream32("go-crc32c", stdcrc32.New(stdcrc32.MakeTable(stdcrc32.Castagnoli))), nil
	}},
	{"klauspost-crc32", func() (Hash, error) {
		return newStream32("klauspost-crc32", kpcrc32.NewIEEE()), nil
	}},
	{"klauspost-crc32c", func() (Hash, error) {
		return newStream32("klauspost-crc32c", kpcrc32.New(kpcrc32.MakeTable(kpcrc32.Castagnoli))), nil
	}},
	{"cespare-xxhash64", func() (Hash, error) {
		return newStream64("cespare-xxhash64", cespare.New()), nil
	}},
	{"oneofone-xxhash32", func() (Hash, error) {
		return newFunc("oneofone-xxhash32", func(b []byte) uint64 {
			return uint64(oneofone.Checksum32(b))
		}), nil
	}},
	{"oneofone-xxhash64", func() (Hash, error) {
		return newFunc("oneofone-xxhash64", oneofone.Checksum64), nil
	}},
	{"pierrec-xxhash32", func() (Hash, error) {
		return newFunc("pierrec-xxhash32", func(b []byte) uint64 {
			return uint64(xxHash32.Checksum(b, 0))
		}), nil
	}},
	{"pierrec-xxhash64", func() (Hash, error) {
		return newFunc("pierrec-xxhash64", func(b []byte) uint64 {
			return xxHash64.Checksum(b, 0)
		}), nil
	}},
	{"zeebo-xxh3", func() (Hash, error) {
		return newFunc("zeebo-xxh3", xxh3.Hash), nil
	}},
	{"dgryski-farm32", func() (Hash, error) {
		return newFunc("dgryski-farm32", func(b []byte) uint64 {
			return uint64(farm.Fingerprint32(b))
		}), nil
	}},
	{"dgryski-farm64", func() (Hash, error) {
		return newFunc("dgryski-farm64", farm.Hash64), nil
	}},
	{"spaolacci-murmur3-32", func() (Hash, error) {
		return newStream32("spaolacci-murmur3-32", murmur3.New32()), nil
	}},
	{"spaolacci-murmur3-64", func() (Hash, error) {
		return newFunc("spaolacci-murmur3-64", murmur3.Sum64), nil
	}},
	{"dchest-siphash", func() (Hash, error) {
		return newFunc("dchest-siphash", func(b []byte) uint64 {
			return siphash.Hash(sipK0, sipK1, b)
		}), nil
	}},
	{"minio-highwayhash64", func() (Hash, error) {
		h, err := highwayhash.New64(highwayKey)
		if err != nil {
			return nil, err
		}
		return newStream64("minio-highwayhash64", h), nil
	}},
}

// Names returns the registered adapter names in benchmark order.
func Names() []string {
	names := make([]string, len(registry))
	for i, c := range registry {
		names[i] = c.name
	}
	return names
}

// New constructs the adapter registered under name.
func New(name string) (Hash, error) {
	for _, c := range registry {
		if c.name == name {
			h, err := c.new()
			if err != nil {
				return nil, fmt.Errorf("constructing %s: %w", name, err)
			}
			return h, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
}

// All constructs every registered adapter.
func All() ([]Hash, error) {
	return Select(Names())
}

// Select constructs the named adapters, in the order given.
func Select(names []string) ([]Hash, error) {
	hashes := make([]Hash, 0, len(names))
	for _, name := range names {
		h, err := New(name)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}
