package video

import (
	"github.com/pion/yuvio/pkg/frame"
)

// FrameBuffer is a reusable byte buffer for packed frames.
type FrameBuffer struct {
	buffer []uint8
}

// NewFrameBuffer creates a new FrameBuffer instance and initialize internal buffer
// with initialSize
func NewFrameBuffer(initialSize int) *FrameBuffer {
	return &FrameBuffer{
		buffer: make([]uint8, 0, initialSize),
	}
}

// grow returns an empty slice of the internal buffer with at least neededSize
// capacity, reallocating only when the previous buffer is too small.
func (buff *FrameBuffer) grow(neededSize int) []uint8 {
	if cap(buff.buffer) < neededSize {
		buff.buffer = make([]uint8, 0, neededSize)
	}
	return buff.buffer[:0]
}

// StorePacked packs frames with f back to back and returns the filled part of
// the buffer. The result is valid until the next call.
func (buff *FrameBuffer) StorePacked(f *frame.Format, frames []*frame.Frame) ([]uint8, error) {
	dst := buff.grow(len(frames) * f.Size())
	for _, fr := range frames {
		var err error
		dst, err = f.AppendPack(dst, fr.Y, fr.U, fr.V)
		if err != nil {
			return nil, err
		}
	}
	buff.buffer = dst
	return dst, nil
}

// Bytes returns the buffer contents of the last StorePacked call.
func (buff *FrameBuffer) Bytes() []uint8 {
	return buff.buffer
}
