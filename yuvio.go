// Package yuvio reads and writes raw YUV frame dumps.
//
// Formats are looked up by their ffmpeg pixel format name, e.g. "yuv420p",
// "yuv422p10le", "nv12", "uyvy422" or "v210", and bound to the frame size of
// the stream:
//
//	fr, err := yuvio.ReadFrame("clip.yuv", prop.Video{Width: 1920, Height: 1080, PixelFormat: "yuv420p"}, 0)
//
// The packages below provide the building blocks: pkg/frame for formats and
// their binary layout, pkg/colorspace for Y'CbCr/RGB conversion and
// pkg/io/video for frame indexed stream access.
package yuvio

import (
	"errors"

	"github.com/pion/yuvio/pkg/colorspace"
	"github.com/pion/yuvio/pkg/frame"
	"github.com/pion/yuvio/pkg/io/video"
	"github.com/pion/yuvio/pkg/prop"
)

// ErrNoFrames is returned by WriteFrames when there is no frame to take the
// format from.
var ErrNoFrames = errors.New("yuvio: no frames")

// NewReader opens path as a stream of p.PixelFormat frames. Close releases
// the file.
func NewReader(path string, p prop.Video, opts ...video.ReaderOption) (*video.Reader, error) {
	f, err := p.Format(nil)
	if err != nil {
		return nil, err
	}
	return video.OpenReader(path, f, opts...)
}

// NewWriter creates path for p.PixelFormat frames. Close releases the file.
func NewWriter(path string, p prop.Video, opts ...video.WriterOption) (*video.Writer, error) {
	f, err := p.Format(nil)
	if err != nil {
		return nil, err
	}
	return video.CreateWriter(path, f, opts...)
}

// ReadFrame reads the frame at index from path.
func ReadFrame(path string, p prop.Video, index int) (*frame.Frame, error) {
	r, err := NewReader(path, p)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.ReadFrame(index)
}

// ReadFrames reads count frames starting at index from path. A negative
// count reads every remaining frame.
func ReadFrames(path string, p prop.Video, index, count int) ([]*frame.Frame, error) {
	r, err := NewReader(path, p)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if count < 0 {
		count = max(r.Len()-index, 0)
	}
	return r.Read(index, count)
}

// WriteFrame writes fr to path, replacing its contents.
func WriteFrame(path string, fr *frame.Frame) error {
	return WriteFrames(path, []*frame.Frame{fr})
}

// WriteFrames writes frames to path, replacing its contents. The format of
// the first frame is used for all of them.
func WriteFrames(path string, frames []*frame.Frame) (err error) {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	w, err := video.CreateWriter(path, frames[0].Format())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return w.Write(frames...)
}

// NewFrame builds a frame of pixelFormat from planes, taking the frame size
// from y. u and v must be nil for monochrome formats.
func NewFrame(pixelFormat string, y, u, v *frame.Plane) (*frame.Frame, error) {
	if y == nil {
		return nil, frame.ErrShapeMismatch
	}
	f, err := frame.New(pixelFormat, y.Width, y.Height)
	if err != nil {
		return nil, err
	}
	return frame.NewFrame(f, y, u, v)
}

// Empty returns a frame of pixelFormat with zeroed samples. Go allocations
// are always zeroed, so Empty and Zeros are the same.
func Empty(width, height int, pixelFormat string) (*frame.Frame, error) {
	return Zeros(width, height, pixelFormat)
}

// Zeros returns a frame of pixelFormat with every sample set to 0.
func Zeros(width, height int, pixelFormat string) (*frame.Frame, error) {
	f, err := frame.New(pixelFormat, width, height)
	if err != nil {
		return nil, err
	}
	return frame.Blank(f), nil
}

// Ones returns a frame of pixelFormat with every sample set to 1.
func Ones(width, height int, pixelFormat string) (*frame.Frame, error) {
	fr, err := Zeros(width, height, pixelFormat)
	if err != nil {
		return nil, err
	}
	fr.Y.Fill(1)
	if fr.U != nil {
		fr.U.Fill(1)
		fr.V.Fill(1)
	}
	return fr, nil
}

// ToRGB converts a 4:4:4 or monochrome frame to RGB.
func ToRGB(fr *frame.Frame, spec colorspace.Specification, rng colorspace.Range) (*colorspace.RGB, error) {
	cs, err := colorspace.Lookup(spec, rng)
	if err != nil {
		return nil, err
	}
	return cs.FrameToRGB(fr)
}

// FromRGB converts rgb to a new frame of the 4:4:4 or monochrome pixelFormat.
func FromRGB(rgb *colorspace.RGB, pixelFormat string, spec colorspace.Specification, rng colorspace.Range) (*frame.Frame, error) {
	cs, err := colorspace.Lookup(spec, rng)
	if err != nil {
		return nil, err
	}
	f, err := frame.New(pixelFormat, rgb.Width, rgb.Height)
	if err != nil {
		return nil, err
	}
	return cs.FrameFromRGB(rgb, f)
}
