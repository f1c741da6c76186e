package io

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange matches every *OutOfRangeError.
	ErrOutOfRange = errors.New("io: frame range out of bounds")
	// ErrMemoryBudgetExceeded matches every *MemoryBudgetError.
	ErrMemoryBudgetExceeded = errors.New("io: memory budget exceeded")
)

// InsufficientBufferError tells the caller that the buffer provided is not sufficient/big
// enough to hold the whole data/sample.
type InsufficientBufferError struct {
	RequiredSize int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("provided buffer doesn't meet the size requirement of length, %d", e.RequiredSize)
}

// OutOfRangeError is returned when Index+Count frames exceed the Total frames
// of a stream.
type OutOfRangeError struct {
	Name         string
	Index, Count int
	Total        int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cannot read %d frames at index %d from %q with length %d", e.Count, e.Index, e.Name, e.Total)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// MemoryBudgetError is returned before allocating a read buffer that would
// use more than the allowed share of available system memory.
type MemoryBudgetError struct {
	Name      string
	Count     int
	Required  uint64
	Available uint64
	Fraction  float64
}

func (e *MemoryBudgetError) Error() string {
	return fmt.Sprintf("the required memory (%d) to read %d frames from %q exceeds %.0f%% of the available system memory (%d)",
		e.Required, e.Count, e.Name, e.Fraction*100, e.Available)
}

func (e *MemoryBudgetError) Is(target error) bool {
	return target == ErrMemoryBudgetExceeded
}

// WriteError reports a failed append. Written bytes of the buffer reached
// the stream before Err, so the stream position has advanced by Written.
type WriteError struct {
	Name    string
	Written int
	Size    int
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write to %q failed after %d of %d bytes: %v", e.Name, e.Written, e.Size, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
