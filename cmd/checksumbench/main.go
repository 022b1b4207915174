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


// checksumbench measures whole-buffer checksum libraries over in-memory
// buffers and prints one "<name>,<size>,<mean-ns>" line per measurement.
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
	"github.com/uber/hashbench"
	"github.com/uber/hashbench/checksum"
	"github.com/uber/hashbench/logging"
	"github.com/uber/hashbench/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run executes one benchmark. Stats are flushed before it returns, also on
// failure.
func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("checksumbench", flag.ContinueOnError)
	flags.SetOutput(stderr)

	iterations := flags.Int("iterations", hashbench.DefaultIterations, "iterations per buffer size")
	sizes := flags.String("sizes", "", "comma separated buffer sizes in bytes (default 32 .. 65536)")
	hashes := flags.String("hash", "", "comma separated adapter names (default all): "+strings.Join(checksum.Names(), ","))
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

	config := hashbench.DefaultConfiguration()
	config.Iterations = *iterations
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

	names := checksum.Names()
	if *hashes != "" {
		names = strings.Split(*hashes, ",")
	}
	adapters, err := checksum.Select(names)
	if err != nil {
		return fmt.Errorf("could not create checksum adapters: %w", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	csv := report.NewCSVReporter(stdout, false)
	recorder := report.NewMetricsRecorder()
	options := []hashbench.Option{
		hashbench.Config(config),
		hashbench.Logger(barkLogger),
		hashbench.LogLevels(levels),
		hashbench.RandomSource(rand.NewSource(*seed)),
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

	logger.WithField("seed", *seed).Debugf("measuring %d adapters", len(adapters))
	if err := b.RunChecksums(adapters); err != nil {
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
