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


package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cactus/go-statsd-client/statsd"
	"github.com/uber-common/bark"
)

// ErrExclusiveStats is returned when both a stats file and a stats address
// are requested.
var ErrExclusiveStats = errors.New("stats file and stats address are mutually exclusive")

// FileSender is an adapter from io.WriteCloser to statsd.Sender. Every packet
// lands on its own line prefixed by a timestamp with nanosecond resolution.
type FileSender struct {
	bufWriter *bufio.Writer
	closer    io.Closer
	clock     clock.Clock
}

// NewFileSender returns a FileSender writing to wc.
func NewFileSender(wc io.WriteCloser, clk clock.Clock) *FileSender {
	if clk == nil {
		clk = clock.New()
	}
	return &FileSender{
		bufWriter: bufio.NewWriter(wc),
		closer:    wc,
		clock:     clk,
	}
}

// Send implements the statsd.Sender interface.
func (fs *FileSender) Send(data []byte) (int, error) {
	line := fmt.Sprintf("%s: %s\n", fs.clock.Now().UTC().Format(time.RFC3339Nano), data)
	// written must be len(data) on success even though the line is longer
	if _, err := fs.bufWriter.WriteString(line); err != nil {
		return 0, err
	}
	return len(data), nil
}

// Close implements the statsd.Sender interface.
func (fs *FileSender) Close() error {
	err := fs.bufWriter.Flush()
	if cerr := fs.closer.Close(); err == nil {
		err = cerr
	}
	return err
}

// NewFileStatsd returns a statsd.Statter that writes to the named file.
func NewFileStatsd(name string) (statsd.Statter, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return statsd.NewClientWithSender(NewFileSender(f, nil), "")
}

// NewStatsReporter builds a stats reporter from the command line stats flags.
// With neither set it returns a nil reporter and closer. The closer flushes
// buffered stats and must be called once the run is over.
func NewStatsReporter(statsFile, statsUDP string) (bark.StatsReporter, io.Closer, error) {
	if statsFile != "" && statsUDP != "" {
		return nil, nil, ErrExclusiveStats
	}

	var (
		client statsd.Statter
		err    error
	)
	switch {
	case statsUDP != "":
		client, err = statsd.NewClient(statsUDP, "")
		if err != nil {
			return nil, nil, fmt.Errorf("could not open stats connection: %w", err)
		}
	case statsFile != "":
		client, err = NewFileStatsd(statsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open stats file: %w", err)
		}
	default:
		return nil, nil, nil
	}

	return bark.NewStatsReporterFromCactus(client), client, nil
}
