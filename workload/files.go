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


package workload

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
)

// DefaultFileSizesKB are the generated file sizes, in kilobytes.
var DefaultFileSizesKB = []int64{
	4,
	8,
	16,
	32,
	64,
	128,
	256,
	512,
	1024,       // 1 MB
	1024 * 10,  // 10 MB
	1024 * 100, // 100 MB
}

const (
	tempPattern = "hash-perf-test*bin"
	blockSize   = 1024
)

var (
	// ErrGenerate is returned when the external generation step fails.
	ErrGenerate = errors.New("could not generate temp file")

	// ErrSizeMismatch is returned when a generated file does not have the
	// requested size.
	ErrSizeMismatch = errors.New("generated file has unexpected size")
)

// A Generator creates a file of random content and returns its path.
type Generator interface {
	Generate(sizeKB int64) (string, error)
}

// File is a generated workload file.
type File struct {
	Path string
	Size int64
}

// DDGenerator shells out to dd, reading from the OS random device.
type DDGenerator struct {
	// Command is the dd binary; defaults to "dd".
	Command string
	// Source is the input device; defaults to /dev/urandom.
	Source string
	// Dir is where files are created; empty means os.TempDir.
	Dir string
}

// Generate creates a temp file and fills it with sizeKB kilobytes from the
// random device. A non-zero exit status is returned as ErrGenerate.
func (g *DDGenerator) Generate(sizeKB int64) (string, error) {
	path, err := createTemp(g.Dir)
	if err != nil {
		return "", err
	}

	command, source := g.Command, g.Source
	if command == "" {
		command = "dd"
	}
	if source == "" {
		source = "/dev/urandom"
	}

	cmd := exec.Command(command,
		"if="+source,
		"of="+path,
		"bs="+strconv.Itoa(blockSize),
		"count="+strconv.FormatInt(sizeKB, 10),
	)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w. exit code=%d", ErrGenerate, exitErr.ExitCode())
		}
		return "", fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	return path, nil
}

// ReaderGenerator copies bytes from Source into the file, without an external
// process. A nil Source reads from crypto/rand.
type ReaderGenerator struct {
	Source io.Reader
	Dir    string
}

// Generate creates a temp file holding exactly sizeKB kilobytes of Source.
func (g *ReaderGenerator) Generate(sizeKB int64) (string, error) {
	src := g.Source
	if src == nil {
		src = rand.Reader
	}

	path, err := createTemp(g.Dir)
	if err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return "", err
	}
	if _, err := io.CopyN(f, src, sizeKB*blockSize); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	return path, f.Close()
}

// createTemp reserves a temp path. The harness never removes these files.
func createTemp(dir string) (string, error) {
	f, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return "", err
	}
	path := f.Name()
	return path, f.Close()
}

// CreateFile generates one file of sizeKB kilobytes and checks that it has
// exactly the requested size.
func CreateFile(g Generator, sizeKB int64) (File, error) {
	path, err := g.Generate(sizeKB)
	if err != nil {
		return File{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}
	if want := sizeKB * blockSize; info.Size() != want {
		return File{}, fmt.Errorf("%w: %s is %d bytes, want %d", ErrSizeMismatch, path, info.Size(), want)
	}
	return File{Path: path, Size: info.Size()}, nil
}
