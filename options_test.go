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
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/uber/hashbench/logging"
	"github.com/uber/hashbench/test/mocks"
	"github.com/uber/hashbench/workload"
)

type BenchmarkOptionsTestSuite struct {
	suite.Suite
}

// TestDefaults tests that the default options are applied when none are
// given.
func (s *BenchmarkOptionsTestSuite) TestDefaults() {
	b, err := New()
	s.Require().NoError(err)
	s.Require().NotNil(b)

	s.Equal(*DefaultConfiguration(), b.Configuration())
	s.NotNil(b.clock)
	s.NotNil(b.logger)
	s.NotNil(b.source)
	s.Equal(noopStatsReporter{}, b.statter)
	s.IsType(&workload.DDGenerator{}, b.generator)
	s.Len(b.buffers, len(workload.DefaultBufferSizes))
	s.Len(b.chunk, DefaultChunkSize)
}

func (s *BenchmarkOptionsTestSuite) TestDefaultConfigurationIsACopy() {
	a := DefaultConfiguration()
	a.BufferSizes[0] = 1
	s.Equal(workload.DefaultBufferSizes[0], DefaultConfiguration().BufferSizes[0])
}

func (s *BenchmarkOptionsTestSuite) TestInvalidConfiguration() {
	config := DefaultConfiguration()
	config.Iterations = 0
	config.ChunkSize = -1
	config.BufferSizes = []int{32, 0}

	b, err := New(Config(config))
	s.Nil(b)
	s.ErrorIs(err, ErrInvalidConfiguration)
	s.Contains(err.Error(), "iterations must be positive")
	s.Contains(err.Error(), "chunk size must be positive")
	s.Contains(err.Error(), "buffer size must be positive")
}

func (s *BenchmarkOptionsTestSuite) TestNilOptions() {
	b, err := New(Config(nil), Clock(nil), RandomSource(nil), FileGenerator(nil))
	s.Nil(b)
	s.ErrorIs(err, ErrInvalidConfiguration)
	s.Contains(err.Error(), "configuration is required")
	s.Contains(err.Error(), "clock is required")
	s.Contains(err.Error(), "random source is required")
	s.Contains(err.Error(), "file generator is required")
}

func (s *BenchmarkOptionsTestSuite) TestLogger() {
	mockLogger := &mocks.Logger{}
	for _, meth := range []string{"Debug", "Info", "Warn", "Error"} {
		mockLogger.On(meth, mock.Anything)
		mockLogger.On(meth+"f", mock.Anything, mock.Anything)
	}
	mockLogger.On("WithField", mock.Anything, mock.Anything).Return(mockLogger)
	mockLogger.On("WithFields", mock.Anything).Return(mockLogger)

	b, err := New(Logger(mockLogger))
	s.Require().NoError(err)
	s.NotNil(b.logging)
	s.NotNil(b.logger)
}

func (s *BenchmarkOptionsTestSuite) TestLoggerNilFallsBack() {
	b, err := New(Logger(nil))
	s.Require().NoError(err)
	s.NotPanics(func() {
		b.logger.Info("nothing")
		b.logger.WithField("size", 32).Debugf("still %s", "nothing")
	})
}

func (s *BenchmarkOptionsTestSuite) TestLogLevels() {
	mockLogger := &mocks.Logger{}

	b, err := New(Logger(mockLogger), LogLevels(map[string]logging.Level{"orchestrator": logging.Warn}))
	s.Require().NoError(err)

	// silenced before reaching the mock, which would fail on an unexpected call
	b.logger.Info("dropped")
	b.logger.Debugf("dropped %d", 1)
	mockLogger.AssertNotCalled(s.T(), "Info", mock.Anything)

	_, err = New(LogLevels(map[string]logging.Level{"orchestrator": logging.Panic}))
	s.Error(err)
}

// TestLogLevelsBeforeLogger tests that levels survive a later Logger option
// replacing the facility.
func (s *BenchmarkOptionsTestSuite) TestLogLevelsBeforeLogger() {
	mockLogger := &mocks.Logger{}
	mockLogger.On("Warn", mock.Anything)

	b, err := New(LogLevels(map[string]logging.Level{"orchestrator": logging.Warn}), Logger(mockLogger))
	s.Require().NoError(err)

	s.Equal(map[string]logging.Level{"orchestrator": logging.Warn}, b.logging.Levels())

	b.logger.Info("dropped")
	b.logger.Warn("kept")
	mockLogger.AssertNotCalled(s.T(), "Info", mock.Anything)
	mockLogger.AssertCalled(s.T(), "Warn", []interface{}{"kept"})
}

func (s *BenchmarkOptionsTestSuite) TestOptionsOverrideDefaults() {
	mockClock := clock.NewMock()
	src := rand.NewSource(9)
	g := &workload.ReaderGenerator{}

	b, err := New(Clock(mockClock), RandomSource(src), FileGenerator(g))
	s.Require().NoError(err)
	s.Equal(mockClock, b.clock)
	s.Equal(src, b.source)
	s.Equal(g, b.generator)
}

func (s *BenchmarkOptionsTestSuite) TestParseSizes() {
	sizes, err := ParseSizes("32, 1024,,65536")
	s.NoError(err)
	s.Equal([]int64{32, 1024, 65536}, sizes)

	for _, bad := range []string{"", ",", "32,x", "0", "-4"} {
		_, err := ParseSizes(bad)
		s.Error(err, "expected %q to be rejected", bad)
	}
}

func TestBenchmarkOptionsTestSuite(t *testing.T) {
	suite.Run(t, new(BenchmarkOptionsTestSuite))
}
