// Package video reads and writes raw, headerless frame streams.
package video

import (
	"fmt"

	"github.com/pion/yuvio/internal/logging"
	"github.com/pion/yuvio/pkg/frame"
)

var logger = logging.NewLogger("yuvio/io/video")

// FrameReader produces frames one at a time and returns io.EOF when the
// source is exhausted.
type FrameReader interface {
	Read() (*frame.Frame, error)
}

// FrameReaderFunc is a proxy type to make easier for users to implement FrameReader
type FrameReaderFunc func() (*frame.Frame, error)

func (rf FrameReaderFunc) Read() (*frame.Frame, error) {
	return rf()
}

// TransformFunc produces a new FrameReader that will produce transformed frames
type TransformFunc func(r FrameReader) FrameReader

// Merge merges transforms and produces a new TransformFunc that will execute
// transforms in order
func Merge(transforms ...TransformFunc) TransformFunc {
	return func(r FrameReader) FrameReader {
		for _, transform := range transforms {
			if transform == nil {
				continue
			}

			r = transform(r)
		}

		return r
	}
}

// Rebind re-labels every frame with format f without touching samples. The
// plane shapes of both formats must agree, e.g. yuyv422 and yuv422p or v210
// and yuv422p10le of the same size.
func Rebind(f *frame.Format) TransformFunc {
	return func(r FrameReader) FrameReader {
		return FrameReaderFunc(func() (*frame.Frame, error) {
			fr, err := r.Read()
			if err != nil {
				return nil, err
			}
			out, err := frame.NewFrame(f, fr.Y, fr.U, fr.V)
			if err != nil {
				return nil, fmt.Errorf("rebind %s to %s: %w", fr.Format(), f, err)
			}
			return out, nil
		})
	}
}
