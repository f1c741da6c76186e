package io

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadStream is what frame readers need from a stream: sequential reads plus
// seeking, which also provides tell via Seek(0, io.SeekCurrent).
type ReadStream interface {
	io.Reader
	io.Seeker
}

// WriteStream is what frame writers need from a stream. Writers only append.
type WriteStream interface {
	io.Writer
}

// Handle records who is responsible for closing a stream. A borrowed handle
// never closes the stream.
type Handle struct {
	name   string
	closer io.Closer
	owned  bool
}

// Borrowed returns a handle for a stream owned by the caller.
func Borrowed(name string) *Handle {
	return &Handle{name: name}
}

// Owned returns a handle that closes c on Close.
func Owned(name string, c io.Closer) *Handle {
	return &Handle{name: name, closer: c, owned: true}
}

// Name is the stream's path or a descriptive label.
func (h *Handle) Name() string {
	return h.name
}

// Owned reports whether Close releases the stream.
func (h *Handle) Owned() bool {
	return h.owned
}

// Close releases an owned stream once. It is a no-op for borrowed streams and
// on repeated calls.
func (h *Handle) Close() error {
	if !h.owned || h.closer == nil {
		return nil
	}
	c := h.closer
	h.closer = nil
	return c.Close()
}

// Tell returns the current offset of s.
func Tell(s io.Seeker) (int64, error) {
	return s.Seek(0, io.SeekCurrent)
}

// Size returns the length of s by seeking to its end and back to the offset
// it had before.
func Size(s io.Seeker) (int64, error) {
	pos, err := Tell(s)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := s.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

// StreamName returns a label for s: the file name for *os.File and
// types with a Name method, "<stream>" otherwise.
func StreamName(s any) string {
	if n, ok := s.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "<stream>"
}

// ResolvePath expands a leading "~" and makes path absolute.
func ResolvePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}
