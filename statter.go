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
	"strings"
	"sync"

	"github.com/uber-common/bark"
	"github.com/uber/hashbench/events"
)

// statter forwards measurement events to a stats reporter. Keys look like
// hashbench.<adapter>.<size>.<metric>, with dots in the adapter name replaced.
type statter struct {
	reporter bark.StatsReporter
	keys     map[statKey]string
	mutex    sync.RWMutex
}

type statKey struct {
	name   string
	size   int64
	metric string
}

func newStatter(reporter bark.StatsReporter) *statter {
	return &statter{
		reporter: reporter,
		keys:     make(map[statKey]string),
	}
}

// HandleEvent implements events.EventListener.
func (s *statter) HandleEvent(event events.Event) {
	switch event := event.(type) {
	case events.RunStartedEvent:
		s.reporter.IncCounter("hashbench.run."+event.Mode, nil, 1)

	case events.FileGeneratedEvent:
		s.reporter.IncCounter("hashbench.file.generated", nil, 1)
		s.reporter.RecordTimer("hashbench.file.generate", nil, event.Duration)

	case events.IterationEvent:
		s.reporter.IncCounter(s.key(event.Name, event.Size, "iterations"), nil, 1)
		s.reporter.RecordTimer(s.key(event.Name, event.Size, "iteration"), nil, event.Duration)

	case events.SampleEvent:
		s.reporter.UpdateGauge(s.key(event.Name, event.Size, "mean-ns"), nil, event.Mean.Nanoseconds())
	}
}

func (s *statter) key(name string, size int64, metric string) string {
	k := statKey{name, size, metric}

	s.mutex.RLock()
	key, ok := s.keys[k]
	s.mutex.RUnlock()

	if !ok {
		s.mutex.Lock()
		key, ok = s.keys[k]
		if !ok {
			key = fmt.Sprintf("%s%d.%s", toStatsPrefix(name), size, metric)
			s.keys[k] = key
		}
		s.mutex.Unlock()
	}

	return key
}

// toStatsPrefix turns an adapter name into a stats prefix.
// For example, from md-SHA3-256-crypto to hashbench.md-SHA3-256-crypto.
func toStatsPrefix(name string) string {
	prefix := strings.Replace(name, ".", "_", -1)
	prefix = strings.Replace(prefix, ":", "_", -1)
	return fmt.Sprintf("hashbench.%s.", prefix)
}
