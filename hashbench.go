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


// Package hashbench measures how fast different hash and digest libraries
// process the same workloads.
//
// A Benchmark drives one adapter at a time over a fixed list of workload
// sizes. Every iteration refreshes the workload, times only the hashing calls,
// checks the produced value and resets the adapter for reuse. After the last
// iteration of a size the mean time per iteration is emitted as a
// SampleEvent, which reporters in the report package turn into
// "<name>,<size>,<mean-ns>" lines.
//
// Everything runs on the calling goroutine, one size and one iteration at a
// time.
package hashbench

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/dustin/go-humanize"
	"github.com/uber-common/bark"
	"github.com/uber/hashbench/checksum"
	"github.com/uber/hashbench/digest"
	"github.com/uber/hashbench/events"
	"github.com/uber/hashbench/logging"
	"github.com/uber/hashbench/workload"
)

// Mode names the kind of workload a run measures.
type Mode string

const (
	// ModeBuffers measures in-memory buffers.
	ModeBuffers Mode = "bufs"
	// ModeFiles measures generated temporary files.
	ModeFiles Mode = "files"
)

// Benchmark is the measurement loop shared by every adapter kind.
type Benchmark struct {
	events.SyncEventEmitter

	config    *Configuration
	clock     clock.Clock
	logging   *logging.Facility
	logger    bark.Logger
	statter   bark.StatsReporter
	source    rand.Source
	generator workload.Generator

	refresher *workload.Refresher
	buffers   [][]byte
	chunk     []byte
	openFile  func(path string) (io.ReadCloser, error)
}

// New creates a Benchmark. Defaults are applied first, then opts.
func New(opts ...Option) (*Benchmark, error) {
	b := &Benchmark{}

	if err := applyOptions(b, defaultOptions); err != nil {
		panic(fmt.Errorf("error applying default options: %v", err))
	}
	if err := applyOptions(b, opts); err != nil {
		return nil, err
	}
	if errs := checkOptions(b); len(errs) != 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, errs)
	}

	b.refresher = workload.NewRefresher(b.source)
	b.buffers = workload.Buffers(b.config.BufferSizes)
	b.chunk = make([]byte, b.config.ChunkSize)
	b.openFile = openFile
	b.AddListener(newStatter(b.statter))
	return b, nil
}

// Configuration returns the configuration the benchmark runs with.
func (b *Benchmark) Configuration() Configuration {
	return *b.config
}

// Sample is the result of one (adapter, size) pair.
type Sample struct {
	Name       string
	Size       int64
	Iterations int
	Total      time.Duration
	Mean       time.Duration
}

// iteration performs one timed iteration and returns the time spent inside
// the timed region.
type iteration func() (time.Duration, error)

// measure runs iterations times and emits the resulting sample. An error
// aborts before anything is emitted for this pair.
func (b *Benchmark) measure(name string, size int64, iterations int, iterate iteration) (Sample, error) {
	logger := b.logger.WithFields(bark.Fields{"adapter": name, "size": size})
	logger.Debugf("measuring %d iterations over %s", iterations, humanize.IBytes(uint64(size)))

	var total time.Duration
	for i := 0; i < iterations; i++ {
		elapsed, err := iterate()
		if err != nil {
			logger.WithError(err).Errorf("iteration %d failed", i)
			return Sample{}, fmt.Errorf("%s over %d bytes, iteration %d: %w", name, size, i, err)
		}
		total += elapsed
		b.EmitEvent(events.IterationEvent{Name: name, Size: size, Duration: elapsed})
	}

	sample := Sample{
		Name:       name,
		Size:       size,
		Iterations: iterations,
		Total:      total,
		Mean:       total / time.Duration(iterations),
	}
	b.EmitEvent(events.SampleEvent(sample))
	return sample, nil
}

// RunChecksum measures h over every configured buffer size.
func (b *Benchmark) RunChecksum(h checksum.Hash) ([]Sample, error) {
	samples := make([]Sample, 0, len(b.buffers))
	for _, buf := range b.buffers {
		buf := buf
		sample, err := b.measure(h.Name(), int64(len(buf)), b.config.Iterations, func() (time.Duration, error) {
			b.refresher.Fill(buf)

			start := b.clock.Now()
			h.Hash(buf)
			value := h.Value()
			elapsed := b.clock.Now().Sub(start)

			if value == 0 {
				return 0, ErrZeroChecksum
			}
			h.Reset()
			return elapsed, nil
		})
		if err != nil {
			return samples, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// RunChecksums announces a buffer run and measures every hash in order.
func (b *Benchmark) RunChecksums(hashes []checksum.Hash) error {
	b.EmitEvent(events.RunStartedEvent{Mode: string(ModeBuffers), Iterations: b.config.Iterations})
	for _, h := range hashes {
		if _, err := b.RunChecksum(h); err != nil {
			return err
		}
	}
	return nil
}

// RunDigest measures d over every configured buffer size.
func (b *Benchmark) RunDigest(d digest.Digest) ([]Sample, error) {
	samples := make([]Sample, 0, len(b.buffers))
	for _, buf := range b.buffers {
		buf := buf
		sample, err := b.measure(d.Name(), int64(len(buf)), b.config.Iterations, func() (time.Duration, error) {
			b.refresher.Fill(buf)

			start := b.clock.Now()
			d.Hash(buf)
			value := d.Value()
			elapsed := b.clock.Now().Sub(start)

			if len(value) == 0 {
				return 0, ErrEmptyDigest
			}
			d.Reset()
			return elapsed, nil
		})
		if err != nil {
			return samples, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// RunDigests announces a buffer run and measures every digest in order.
func (b *Benchmark) RunDigests(digests []digest.Digest) error {
	b.EmitEvent(events.RunStartedEvent{Mode: string(ModeBuffers), Iterations: b.config.Iterations})
	for _, d := range digests {
		if _, err := b.RunDigest(d); err != nil {
			return err
		}
	}
	return nil
}

// PrepareFiles generates one file per configured size. It runs before any
// timing so generation cost never shows up in a sample.
func (b *Benchmark) PrepareFiles() ([]workload.File, error) {
	logger := b.logging.Logger("workload")

	files := make([]workload.File, 0, len(b.config.FileSizesKB))
	for _, kb := range b.config.FileSizesKB {
		start := b.clock.Now()
		f, err := workload.CreateFile(b.generator, kb)
		if err != nil {
			logger.WithError(err).Errorf("could not generate %dKB file", kb)
			return nil, err
		}
		elapsed := b.clock.Now().Sub(start)

		logger.WithField("path", f.Path).Debugf("generated %s file in %v", humanize.IBytes(uint64(f.Size)), elapsed)
		b.EmitEvent(events.FileGeneratedEvent{Path: f.Path, Size: f.Size, Duration: elapsed})
		files = append(files, f)
	}
	return files, nil
}

// RunFileDigest measures d over every file.
func (b *Benchmark) RunFileDigest(d digest.Digest, files []workload.File) ([]Sample, error) {
	samples := make([]Sample, 0, len(files))
	for _, f := range files {
		path := f.Path
		sample, err := b.measure(d.Name(), f.Size, b.config.FileIterations, func() (time.Duration, error) {
			return b.digestFile(d, path)
		})
		if err != nil {
			return samples, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// RunFileDigests announces a file run, generates the files and measures
// every digest over them.
func (b *Benchmark) RunFileDigests(digests []digest.Digest) error {
	b.EmitEvent(events.RunStartedEvent{Mode: string(ModeFiles), Iterations: b.config.FileIterations})

	files, err := b.PrepareFiles()
	if err != nil {
		return err
	}
	for _, d := range digests {
		if _, err := b.RunFileDigest(d, files); err != nil {
			return err
		}
	}
	return nil
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// digestFile streams one file through d in ChunkSize reads. Unless IncludeIO
// is set only the Update and Value calls are timed, so read latency between
// chunks stays out of the sample.
func (b *Benchmark) digestFile(d digest.Digest, path string) (time.Duration, error) {
	ioStart := b.clock.Now()

	f, err := b.openFile(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, 2*len(b.chunk))
	var elapsed time.Duration
	for {
		n, err := r.Read(b.chunk)
		if n > 0 {
			start := b.clock.Now()
			d.Update(b.chunk[:n])
			elapsed += b.clock.Now().Sub(start)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	start := b.clock.Now()
	value := d.Value()
	elapsed += b.clock.Now().Sub(start)

	if b.config.IncludeIO {
		elapsed = b.clock.Now().Sub(ioStart)
	}
	if len(value) == 0 {
		return 0, ErrEmptyDigest
	}
	d.Reset()
	return elapsed, nil
}
