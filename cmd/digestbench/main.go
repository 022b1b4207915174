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


// digestbench measures streaming digest libraries over in-memory buffers or,
// with the "files" argument, over generated temporary files.
//
//	digestbench [flags] [bufs|files]
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-common/bark"
	"github.com/uber/hashbench"
	"github.com/uber/hashbench/digest"
	"github.com/uber/hashbench/logging"
	"github.com/uber/hashbench/report"
	"github.com/uber/hashbench/workload"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run executes one benchmark. Stats are flushed before it returns, also on
// failure.
func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("digestbench", flag.ContinueOnError)
	flags.SetOutput(stderr)

	iterations := flags.Int("iterations", 0, "iterations per size (default 10000 for buffers, 100 for files)")
	sizes := flags.String("sizes", "", "comma separated buffer sizes in bytes (default 32 .. 65536)")
	fileSizes := flags.String("file-sizes", "", "comma separated file sizes in KB (default 4 .. 102400)")
	digests := flags.String("digest", "", "comma separated adapter names (default all): "+strings.Join(digest.Pairs(), ","))
	chunk := flags.Int("chunk", hashbench.DefaultChunkSize, "bytes read from a file before each update")
	includeIO := flags.Bool("include-io", false, "time file open and reads too, not just updates")
	generator := flags.String("generator", "dd", "how files are generated: dd or builtin")
	tmpdir := flags.String("tmpdir", "", "directory for generated files (default system temp dir)")
	seed := flags.Int64("seed", 0, "seed for buffer contents (default time based)")
	summary := flags.Bool("summary", false, "print a timing distribution summary to stderr when done")
	verbose := flags.Bool("verbose", false, "enable debug level logging")
	logLevels := flags.String("log-levels", "", "per logger levels, e.g. orchestrator=debug,workload=warn")
	statsFile := flags.String("stats-file", "", "enable stats emitting to a file.")
	statsUDP := flags.String("stats-udp", "", "enable stats emitting over udp.")

	if err := flags.Parse(args); err != nil {
		return err
	}

	levels, err := logging.ParseLevels(*logLevels)
	if err != nil {
		return fmt.Errorf("bad -log-levels: %w", err)
	}
	barkLogger := logging.NewLogrus(stderr, *verbose || logging.WantsDebug(levels))
	logging.SetLogger(barkLogger)
	if err := logging.SetLevels(levels); err != nil {
		return fmt.Errorf("bad -log-levels: %w", err)
	}
	logger := logging.Logger("cmd")

	mode := hashbench.ModeBuffers
	switch flags.Arg(0) {
	case "", string(hashbench.ModeBuffers):
	case string(hashbench.ModeFiles):
		mode = hashbench.ModeFiles
	default:
		return fmt.Errorf("unknown mode %q, want bufs or files", flags.Arg(0))
	}

	config := hashbench.DefaultConfiguration()
	config.ChunkSize = *chunk
	config.IncludeIO = *includeIO
	if *iterations != 0 {
		config.Iterations = *iterations
		config.FileIterations = *iterations
	}
	if *sizes != "" {
		parsed, err := hashbench.ParseSizes(*sizes)
		if err != nil {
			return fmt.Errorf("bad -sizes: %w", err)
		}
		config.BufferSizes = config.BufferSizes[:0]
		for _, size := range parsed {
			config.BufferSizes = append(config.BufferSizes, int(size))
		}
	}
	if *fileSizes != "" {
		parsed, err := hashbench.ParseSizes(*fileSizes)
		if err != nil {
			return fmt.Errorf("bad -file-sizes: %w", err)
		}
		config.FileSizesKB = parsed
	}

	var gen workload.Generator
	switch *generator {
	case "dd":
		gen = &workload.DDGenerator{Dir: *tmpdir}
	case "builtin":
		gen = &workload.ReaderGenerator{Dir: *tmpdir}
	default:
		return fmt.Errorf("unknown generator %q, want dd or builtin", *generator)
	}

	names := digest.Pairs()
	if *digests != "" {
		names = strings.Split(*digests, ",")
	}
	adapters, err := digest.Select(names)
	if err != nil {
		return fmt.Errorf("could not create digest adapters: %w", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	csv := report.NewCSVReporter(stdout, true)
	recorder := report.NewMetricsRecorder()
	options := []hashbench.Option{
		hashbench.Config(config),
		hashbench.Logger(barkLogger),
		hashbench.LogLevels(levels),
		hashbench.RandomSource(rand.NewSource(*seed)),
		hashbench.FileGenerator(gen),
		hashbench.Listener(csv),
		hashbench.Listener(recorder),
	}

	statter, closer, err := report.NewStatsReporter(*statsFile, *statsUDP)
	if err != nil {
		return err
	}
	if statter != nil {
		defer closer.Close()
		options = append(options, hashbench.Statter(statter))
	}

	b, err := hashbench.New(options...)
	if err != nil {
		return err
	}

	logger.WithFields(bark.Fields{"mode": mode, "seed": *seed}).Debugf("measuring %d adapters", len(adapters))
	if mode == hashbench.ModeFiles {
		err = b.RunFileDigests(adapters)
	} else {
		err = b.RunDigests(adapters)
	}
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}
	if err := csv.Err(); err != nil {
		return fmt.Errorf("could not write results: %w", err)
	}

	if *summary {
		if err := recorder.WriteSummary(stderr); err != nil {
			logger.WithError(err).Warn("could not write summary")
		}
	}
	return nil
}
