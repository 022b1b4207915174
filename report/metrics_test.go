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
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/hashbench/events"
)

func TestMetricsRecorderHistogram(t *testing.T) {
	m := NewMetricsRecorder()
	assert.Nil(t, m.Histogram("go-crc32", 32))

	for _, d := range []time.Duration{100, 200, 300} {
		m.HandleEvent(events.IterationEvent{Name: "go-crc32", Size: 32, Duration: d})
	}
	m.HandleEvent(events.IterationEvent{Name: "go-crc32", Size: 64, Duration: 50})

	h := m.Histogram("go-crc32", 32)
	require.NotNil(t, h)
	assert.Equal(t, int64(3), h.Count())
	assert.Equal(t, int64(100), h.Min())
	assert.Equal(t, int64(300), h.Max())
	assert.Equal(t, 200.0, h.Mean())

	assert.Equal(t, int64(1), m.Histogram("go-crc32", 64).Count())
}

func TestMetricsRecorderSummary(t *testing.T) {
	m := NewMetricsRecorder()

	m.HandleEvent(events.IterationEvent{Name: "zeebo-xxh3", Size: 1024, Duration: time.Microsecond})
	m.HandleEvent(events.SampleEvent{Name: "zeebo-xxh3", Size: 1024, Iterations: 1, Total: time.Microsecond, Mean: time.Microsecond})
	m.HandleEvent(events.IterationEvent{Name: "go-crc32", Size: 1024, Duration: time.Microsecond})
	m.HandleEvent(events.SampleEvent{Name: "go-crc32", Size: 1024, Iterations: 1, Total: time.Microsecond, Mean: time.Microsecond})
	// never completed, left out of the summary
	m.HandleEvent(events.IterationEvent{Name: "go-adler32", Size: 1024, Duration: time.Microsecond})

	var buf bytes.Buffer
	require.NoError(t, m.WriteSummary(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "go-crc32"))
	assert.True(t, strings.HasPrefix(lines[1], "zeebo-xxh3"))
	assert.Contains(t, lines[0], "1.0 KiB")
	assert.Contains(t, lines[0], "n=1")
	assert.Contains(t, lines[0], "977 MiB/s")
}

func TestThroughput(t *testing.T) {
	assert.Equal(t, "1.0 MiB", Throughput(1024*1024, time.Second))
	assert.Equal(t, "1000 KiB", Throughput(1024, time.Millisecond))
	assert.Equal(t, "inf", Throughput(1024, 0))
}
