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


package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/hashbench/checksum"
)

func TestRunWritesRecordsAndStats(t *testing.T) {
	statsPath := filepath.Join(t.TempDir(), "stats.log")
	var stdout, stderr bytes.Buffer

	err := run([]string{
		"-iterations", "2",
		"-sizes", "32,1024",
		"-hash", "go-crc32,zeebo-xxh3",
		"-seed", "1",
		"-stats-file", statsPath,
	}, &stdout, &stderr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.Regexp(t, `^go-crc32,32,\d+$`, lines[0])
	assert.Regexp(t, `^go-crc32,1024,\d+$`, lines[1])
	assert.Regexp(t, `^zeebo-xxh3,32,\d+$`, lines[2])
	assert.Regexp(t, `^zeebo-xxh3,1024,\d+$`, lines[3])

	stats, err := os.ReadFile(statsPath)
	require.NoError(t, err)
	assert.Contains(t, string(stats), "hashbench.run.bufs:1|c")
	assert.Contains(t, string(stats), "hashbench.zeebo-xxh3.1024.mean-ns:")
}

func TestRunUnknownHash(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-hash", "nope"}, &stdout, &stderr)
	assert.ErrorIs(t, err, checksum.ErrUnknownHash)
	assert.Empty(t, stdout.String())
}

func TestRunDebugLevelWithoutVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-iterations", "1",
		"-sizes", "32",
		"-hash", "go-crc32",
		"-log-levels", "cmd=debug",
	}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "measuring 1 adapters")
}

func TestRunInfoLevelDropsDebug(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-iterations", "1",
		"-sizes", "32",
		"-hash", "go-crc32",
	}, &stdout, &stderr)
	require.NoError(t, err)
	assert.NotContains(t, stderr.String(), "measuring 1 adapters")
}
