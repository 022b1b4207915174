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


// Package logging provides the named loggers used across the benchmark
// harness. Every component asks the facility for a logger by name
// ("orchestrator", "workload", "cmd"), and the verbosity of each name can be
// tuned on its own without touching the underlying bark logger.
package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/uber-common/bark"
)

// Facility is a collection of named loggers that share one underlying
// bark.Logger.
type Facility struct {
	mu     sync.RWMutex
	logger bark.Logger
	levels map[string]Level
}

// NewFacility creates a facility that forwards to log. A nil log silences
// everything.
func NewFacility(log bark.Logger) *Facility {
	if log == nil {
		log = NoLogger
	}
	return &Facility{
		logger: log,
		levels: make(map[string]Level),
	}
}

// NewLogrus returns a bark.Logger backed by a logrus text logger writing to
// out. Diagnostics go to stderr so they never mix with result lines.
func NewLogrus(out io.Writer, verbose bool) bark.Logger {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	logger := logrus.New()
	logger.Out = out
	logger.Formatter = &logrus.TextFormatter{DisableColors: true}
	logger.Level = level
	return bark.NewLoggerFromLogrus(logger)
}

// SetLevel sets the minimum severity for a named logger. Levels above Fatal
// are rejected: Fatal and Panic stop the program and must never be silenced.
func (f *Facility) SetLevel(logName string, level Level) error {
	return f.SetLevels(map[string]Level{logName: level})
}

// SetLevels is SetLevel for several named loggers at once.
func (f *Facility) SetLevels(levels map[string]Level) error {
	for logName, level := range levels {
		if level < Fatal {
			return fmt.Errorf("cannot set a level above %s for %s", Fatal, logName)
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for logName, level := range levels {
		f.levels[logName] = level
	}
	return nil
}

// Levels returns a copy of the per-name levels set so far.
func (f *Facility) Levels() map[string]Level {
	f.mu.RLock()
	defer f.mu.RUnlock()
	levels := make(map[string]Level, len(f.levels))
	for name, level := range f.levels {
		levels[name] = level
	}
	return levels
}

// SetLogger replaces the underlying logger.
func (f *Facility) SetLogger(log bark.Logger) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logger = log
}

// Logger returns a bark.Logger bound to logName.
func (f *Facility) Logger(logName string) bark.Logger {
	return &namedLogger{name: logName, forwardTo: f}
}

// Log forwards msg to the underlying logger unless the named logger was
// configured with a level below wantLevel.
func (f *Facility) Log(logName string, wantLevel Level, fields bark.Fields, msg []interface{}) {
	if logger, ok := f.target(logName, wantLevel, fields); ok {
		switch wantLevel {
		case Debug:
			logger.Debug(msg...)
		case Info:
			logger.Info(msg...)
		case Warn:
			logger.Warn(msg...)
		case Error:
			logger.Error(msg...)
		case Fatal:
			logger.Fatal(msg...)
		case Panic:
			logger.Panic(msg...)
		}
	}
}

// Logf is Log with fmt.Printf-like formatting.
func (f *Facility) Logf(logName string, wantLevel Level, fields bark.Fields, format string, msg []interface{}) {
	if logger, ok := f.target(logName, wantLevel, fields); ok {
		switch wantLevel {
		case Debug:
			logger.Debugf(format, msg...)
		case Info:
			logger.Infof(format, msg...)
		case Warn:
			logger.Warnf(format, msg...)
		case Error:
			logger.Errorf(format, msg...)
		case Fatal:
			logger.Fatalf(format, msg...)
		case Panic:
			logger.Panicf(format, msg...)
		}
	}
}

// target resolves the logger a message should go to, or false when the
// message is silenced. Levels are ordered Panic=0 .. Debug=5, so a named
// logger set to Warn drops anything numerically greater than Warn.
func (f *Facility) target(logName string, wantLevel Level, fields bark.Fields) (bark.Logger, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if setLevel, ok := f.levels[logName]; ok && setLevel < wantLevel {
		return nil, false
	}
	logger := f.logger
	if len(fields) > 0 {
		logger = logger.WithFields(fields)
	}
	return logger, true
}
