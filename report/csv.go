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


// Package report turns benchmark events into output: CSV result lines, an
// in-memory metrics summary and statsd stats.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/uber/hashbench/events"
)

// Banner is the line announcing a run, e.g. "FILES BENCHMARK (iterations=100)".
func Banner(mode string, iterations int) string {
	return fmt.Sprintf("%s BENCHMARK (iterations=%d)", strings.ToUpper(mode), iterations)
}

// CSVReporter writes one "<name>,<size>,<mean-ns>" line per sample as soon as
// the sample completes. When banner is set, every run start is announced
// first.
type CSVReporter struct {
	w      io.Writer
	banner bool

	mu  sync.Mutex
	err error
}

// NewCSVReporter returns a reporter writing to w.
func NewCSVReporter(w io.Writer, banner bool) *CSVReporter {
	return &CSVReporter{w: w, banner: banner}
}

// HandleEvent implements events.EventListener.
func (r *CSVReporter) HandleEvent(event events.Event) {
	switch event := event.(type) {
	case events.RunStartedEvent:
		if r.banner {
			r.writef("%s\n", Banner(event.Mode, event.Iterations))
		}

	case events.SampleEvent:
		r.writef("%s,%d,%d\n", event.Name, event.Size, event.Mean.Nanoseconds())
	}
}

// writef keeps the first write error and drops everything after it.
func (r *CSVReporter) writef(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Err returns the first error hit while writing, if any.
func (r *CSVReporter) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
