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
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rcrowley/go-metrics"
	"github.com/uber/hashbench/events"
)

// reservoir bounds how many iteration timings are kept per sample.
const reservoir = 1028

type seriesKey struct {
	name string
	size int64
}

type series struct {
	timing metrics.Histogram
	mean   time.Duration
	done   bool
}

// MetricsRecorder keeps a histogram of iteration timings per (adapter, size)
// pair so a run can end with a distribution summary next to the means.
type MetricsRecorder struct {
	mu     sync.Mutex
	series map[seriesKey]*series
	order  []seriesKey
}

// NewMetricsRecorder returns an empty recorder.
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{series: make(map[seriesKey]*series)}
}

// HandleEvent implements events.EventListener.
func (m *MetricsRecorder) HandleEvent(event events.Event) {
	switch event := event.(type) {
	case events.IterationEvent:
		m.get(event.Name, event.Size).timing.Update(event.Duration.Nanoseconds())

	case events.SampleEvent:
		s := m.get(event.Name, event.Size)
		m.mu.Lock()
		s.mean = event.Mean
		s.done = true
		m.mu.Unlock()
	}
}

func (m *MetricsRecorder) get(name string, size int64) *series {
	k := seriesKey{name, size}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.series[k]
	if !ok {
		s = &series{timing: metrics.NewHistogram(metrics.NewUniformSample(reservoir))}
		m.series[k] = s
		m.order = append(m.order, k)
	}
	return s
}

// Histogram returns the iteration timings in nanoseconds recorded for an
// (adapter, size) pair, or nil if none were seen.
func (m *MetricsRecorder) Histogram(name string, size int64) metrics.Histogram {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.series[seriesKey{name, size}]
	if !ok {
		return nil
	}
	return s.timing
}

// WriteSummary writes one line per completed sample, sorted by adapter name
// and size, with throughput and timing percentiles.
func (m *MetricsRecorder) WriteSummary(w io.Writer) error {
	m.mu.Lock()
	keys := make([]seriesKey, 0, len(m.order))
	for _, k := range m.order {
		if m.series[k].done {
			keys = append(keys, k)
		}
	}
	m.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return keys[i].size < keys[j].size
	})

	for _, k := range keys {
		m.mu.Lock()
		s := m.series[k]
		mean := s.mean
		m.mu.Unlock()

		h := s.timing
		ps := h.Percentiles([]float64{0.5, 0.99})
		_, err := fmt.Fprintf(w, "%-32s %10s  n=%-6d mean=%-10v p50=%-10v p99=%-10v %s/s\n",
			k.name,
			humanize.IBytes(uint64(k.size)),
			h.Count(),
			mean,
			time.Duration(ps[0]),
			time.Duration(ps[1]),
			Throughput(k.size, mean),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Throughput formats size bytes processed every mean as a human readable
// rate without the "/s" suffix.
func Throughput(size int64, mean time.Duration) string {
	if mean <= 0 {
		return "inf"
	}
	perSecond := float64(size) * float64(time.Second) / float64(mean)
	return humanize.IBytes(uint64(perSecond))
}
