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


package hashbench

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uber/hashbench/workload"
)

const (
	// DefaultIterations is the iteration count for in-memory buffers.
	DefaultIterations = 10000

	// DefaultFileIterations is the iteration count for files, which also pay
	// for I/O on every iteration.
	DefaultFileIterations = 100

	// DefaultChunkSize is how much of a file is read before each Update.
	DefaultChunkSize = 16 * 1024
)

// Configuration holds the fixed parameters of a run. It is read once when the
// benchmark starts; nothing adjusts it while measuring.
type Configuration struct {
	// Iterations per buffer size.
	Iterations int

	// FileIterations per file.
	FileIterations int

	// BufferSizes in bytes.
	BufferSizes []int

	// FileSizesKB are the sizes of the generated files in kilobytes.
	FileSizesKB []int64

	// ChunkSize is the read size used when streaming a file into a digest.
	ChunkSize int

	// IncludeIO times the whole open/read/update/finalize loop of a file
	// iteration instead of only the Update and Value calls.
	IncludeIO bool
}

// DefaultConfiguration returns a fresh copy of the default configuration.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Iterations:     DefaultIterations,
		FileIterations: DefaultFileIterations,
		BufferSizes:    append([]int(nil), workload.DefaultBufferSizes...),
		FileSizesKB:    append([]int64(nil), workload.DefaultFileSizesKB...),
		ChunkSize:      DefaultChunkSize,
	}
}

func (c *Configuration) validate() []error {
	var errs []error
	if c.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("iterations must be positive, got %d", c.Iterations))
	}
	if c.FileIterations <= 0 {
		errs = append(errs, fmt.Errorf("file iterations must be positive, got %d", c.FileIterations))
	}
	if c.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize))
	}
	for _, size := range c.BufferSizes {
		if size <= 0 {
			errs = append(errs, fmt.Errorf("buffer size must be positive, got %d", size))
		}
	}
	for _, kb := range c.FileSizesKB {
		if kb <= 0 {
			errs = append(errs, fmt.Errorf("file size must be positive, got %dKB", kb))
		}
	}
	return errs
}

// ParseSizes parses a comma-separated list of positive integers such as
// "32,1024,65536".
func ParseSizes(list string) ([]int64, error) {
	var sizes []int64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", field)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", list)
	}
	return sizes, nil
}
