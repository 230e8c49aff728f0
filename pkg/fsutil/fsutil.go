// Package fsutil loads scan input into memory.
// It handles the regular-file check, full reads, and error categorization.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinLabel is the provenance label used when input comes from standard input.
const StdinLabel = "stdin"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrOpen indicates the input could not be opened for another reason.
	ErrOpen = errors.New("open failed")

	// ErrStat indicates the open input could not be inspected.
	ErrStat = errors.New("stat failed")

	// ErrNotRegular indicates the input is not a regular file
	// (a directory, pipe, terminal or device).
	ErrNotRegular = errors.New("not a regular file")

	// ErrRead indicates the read itself failed.
	ErrRead = errors.New("read failed")

	// ErrShortRead indicates fewer bytes arrived than the file's reported size.
	ErrShortRead = errors.New("short read")
)

// Input is a fully materialized scan input.
type Input struct {
	// Label names the input for provenance: the path, or "stdin".
	Label string

	// Content is the whole input. Callers must not modify it.
	Content []byte

	// Size is the size reported by stat when the input was opened.
	Size int64
}

// ReadInput reads the file at path, or stdin when path is empty, fully into memory.
// The input must be a regular file and must yield exactly as many bytes as stat reports.
func ReadInput(ctx context.Context, path string, stdin *os.File) (*Input, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read input: %w", ctx.Err())
	default:
	}

	if path == "" {
		if stdin == nil {
			return nil, fmt.Errorf("%w: %s: no standard input", ErrOpen, StdinLabel)
		}
		return Read(stdin, StdinLabel)
	}

	file, err := os.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		case errors.Is(err, os.ErrPermission):
			return nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		default:
			return nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
		}
	}
	defer func() { _ = file.Close() }()

	return Read(file, path)
}

// StatReader is an open input: something that can report its file info and
// be read. *os.File satisfies it.
type StatReader interface {
	io.Reader
	Stat() (os.FileInfo, error)
}

// Read loads an already open input labeled label. The input must be a regular
// file and must yield exactly as many bytes as Stat reports.
func Read(file StatReader, label string) (*Input, error) {
	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStat, label, err)
	}

	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, label)
	}

	size := stat.Size()
	content := make([]byte, size)

	n, err := io.ReadFull(file, content)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: got %d of %d bytes", ErrShortRead, label, n, size)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, label, err)
	}

	return &Input{
		Label:   label,
		Content: content,
		Size:    size,
	}, nil
}
