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
	"fmt"
	"strconv"
	"strings"
)

// Level is the severity of a log message. Lower is more severe.
type Level uint8

const (
	Panic Level = iota
	Fatal
	Error
	Warn
	Info
	Debug
)

var levelNames = [...]string{"panic", "fatal", "error", "warn", "info", "debug"}

// String converts a level to its name, or to its number for custom levels
// beyond Debug.
func (lvl Level) String() string {
	if int(lvl) < len(levelNames) {
		return levelNames[lvl]
	}
	return strconv.Itoa(int(lvl))
}

// Parse converts a name or number to a Level.
func Parse(lvl string) (Level, error) {
	for i, name := range levelNames {
		if lvl == name {
			return Level(i), nil
		}
	}
	n, err := strconv.ParseUint(lvl, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid level value: %q", lvl)
	}
	return Level(n), nil
}

// ParseLevels parses a comma separated list of name=level pairs, e.g.
// "orchestrator=debug,workload=warn".
func ParseLevels(list string) (map[string]Level, error) {
	levels := make(map[string]Level)
	for _, pair := range strings.Split(list, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid log level %q, want name=level", pair)
		}
		lvl, err := Parse(value)
		if err != nil {
			return nil, err
		}
		levels[name] = lvl
	}
	return levels, nil
}

// WantsDebug reports whether any named logger asks for Debug or a more
// verbose custom level, so the underlying logger must not drop debug output.
func WantsDebug(levels map[string]Level) bool {
	for _, level := range levels {
		if level >= Debug {
			return true
		}
	}
	return false
}
