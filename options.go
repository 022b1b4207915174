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
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/uber-common/bark"
	"github.com/uber/hashbench/events"
	"github.com/uber/hashbench/logging"
	"github.com/uber/hashbench/workload"
)

// Option configures a Benchmark. Options are applied in order after the
// defaults, so later options win.
type Option func(*Benchmark) error

// applyOptions applies options to the benchmark, stopping at the first error.
func applyOptions(b *Benchmark, opts []Option) error {
	for _, option := range opts {
		if err := option(b); err != nil {
			return err
		}
	}
	return nil
}

// checkOptions reports every problem with the configured benchmark.
func checkOptions(b *Benchmark) []error {
	var errs []error
	if b.config == nil {
		errs = append(errs, errNilOption("configuration"))
	} else {
		errs = append(errs, b.config.validate()...)
	}
	if b.clock == nil {
		errs = append(errs, errNilOption("clock"))
	}
	if b.source == nil {
		errs = append(errs, errNilOption("random source"))
	}
	if b.generator == nil {
		errs = append(errs, errNilOption("file generator"))
	}
	return errs
}

type errNilOption string

func (e errNilOption) Error() string { return string(e) + " is required" }

// Config sets the run configuration.
func Config(c *Configuration) Option {
	return func(b *Benchmark) error {
		b.config = c
		return nil
	}
}

// Clock sets the clock the timed regions are measured with.
func Clock(c clock.Clock) Option {
	return func(b *Benchmark) error {
		b.clock = c
		return nil
	}
}

// Logger sets the logger. The benchmark logs through the "orchestrator"
// named logger of a facility wrapping l. Levels set by an earlier LogLevels
// carry over.
func Logger(l bark.Logger) Option {
	return func(b *Benchmark) error {
		facility := logging.NewFacility(l)
		if b.logging != nil {
			if err := facility.SetLevels(b.logging.Levels()); err != nil {
				return err
			}
		}
		b.logging = facility
		b.logger = b.logging.Logger("orchestrator")
		return nil
	}
}

// LogLevels sets per-logger levels, e.g. "orchestrator" or "workload".
func LogLevels(levels map[string]logging.Level) Option {
	return func(b *Benchmark) error {
		return b.logging.SetLevels(levels)
	}
}

// Statter sets the stats reporter that receives per-sample stats.
func Statter(s bark.StatsReporter) Option {
	return func(b *Benchmark) error {
		b.statter = s
		return nil
	}
}

// RandomSource sets the source buffers are refilled from.
func RandomSource(src rand.Source) Option {
	return func(b *Benchmark) error {
		b.source = src
		return nil
	}
}

// FileGenerator sets how workload files are created.
func FileGenerator(g workload.Generator) Option {
	return func(b *Benchmark) error {
		b.generator = g
		return nil
	}
}

// Listener registers an event listener, e.g. a result reporter.
func Listener(l events.EventListener) Option {
	return func(b *Benchmark) error {
		b.AddListener(l)
		return nil
	}
}

// Default options

func defaultConfig(b *Benchmark) error {
	return Config(DefaultConfiguration())(b)
}

func defaultClock(b *Benchmark) error {
	return Clock(clock.New())(b)
}

func defaultLogger(b *Benchmark) error {
	return Logger(logging.NoLogger)(b)
}

func defaultStatter(b *Benchmark) error {
	return Statter(noopStatsReporter{})(b)
}

func defaultRandomSource(b *Benchmark) error {
	return RandomSource(rand.NewSource(time.Now().UnixNano()))(b)
}

func defaultFileGenerator(b *Benchmark) error {
	return FileGenerator(&workload.DDGenerator{})(b)
}

// defaultOptions are applied before the user's options.
var defaultOptions = []Option{
	defaultConfig,
	defaultClock,
	defaultLogger,
	defaultStatter,
	defaultRandomSource,
	defaultFileGenerator,
}

type noopStatsReporter struct{}

func (noopStatsReporter) IncCounter(name string, tags bark.Tags, value int64)      {}
func (noopStatsReporter) UpdateGauge(name string, tags bark.Tags, value int64)     {}
func (noopStatsReporter) RecordTimer(name string, tags bark.Tags, d time.Duration) {}
