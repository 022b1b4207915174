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


package logging

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type LogLevelTestSuite struct {
	suite.Suite
}

// Test that level -> string -> level conversion produces the same level
func (s *LogLevelTestSuite) TestLevels() {
	customLevel := Debug + 10
	for _, level := range []Level{Panic, Fatal, Error, Warn, Info, Debug, customLevel} {
		got, err := Parse(level.String())
		s.NoError(err)
		s.Equal(level, got)
	}
}

func (s *LogLevelTestSuite) TestInvalidLevel() {
	for _, level := range []string{"", "1234", "abc", "-1"} {
		_, err := Parse(level)
		s.Error(err, "parsing %q should fail", level)
	}
}

func (s *LogLevelTestSuite) TestWantsDebug() {
	s.False(WantsDebug(nil))
	s.False(WantsDebug(map[string]Level{"workload": Warn, "cmd": Info}))
	s.True(WantsDebug(map[string]Level{"workload": Warn, "orchestrator": Debug}))
	s.True(WantsDebug(map[string]Level{"cmd": Debug + 2}))
}

func (s *LogLevelTestSuite) TestParseLevels() {
	levels, err := ParseLevels("orchestrator=debug, workload=2,,")
	s.NoError(err)
	s.Equal(map[string]Level{"orchestrator": Debug, "workload": Error}, levels)

	levels, err = ParseLevels("")
	s.NoError(err)
	s.Empty(levels)

	for _, bad := range []string{"orchestrator", "=debug", "cmd=loud"} {
		_, err := ParseLevels(bad)
		s.Error(err, "parsing %q should fail", bad)
	}
}

func TestLogLevelTestSuite(t *testing.T) {
	suite.Run(t, new(LogLevelTestSuite))
}
