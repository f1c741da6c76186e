package video

import (
	"errors"
	"io"
	"os"

	"github.com/pion/yuvio/pkg/frame"
	mio "github.com/pion/yuvio/pkg/io"
)

// Writer appends packed frames to a stream. It never seeks. A Writer is not
// safe for concurrent use.
type Writer struct {
	stream mio.WriteStream
	handle *mio.Handle
	format *frame.Format
	buffer *FrameBuffer
}

// NewWriter writes frames of format f to w. The caller keeps ownership of w;
// Close does not close it.
func NewWriter(w mio.WriteStream, f *frame.Format, opts ...WriterOption) *Writer {
	return newWriter(w, mio.Borrowed(mio.StreamName(w)), f, opts)
}

// CreateWriter creates or truncates path and writes frames of format f to
// it. The file is owned by the Writer and released by Close.
func CreateWriter(path string, f *frame.Format, opts ...WriterOption) (*Writer, error) {
	resolved, err := mio.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Create(resolved)
	if err != nil {
		return nil, err
	}
	return newWriter(file, mio.Owned(resolved, file), f, opts), nil
}

func newWriter(w mio.WriteStream, h *mio.Handle, f *frame.Format, opts []WriterOption) *Writer {
	o := writerOptions{bufferSize: f.Size()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Writer{
		stream: w,
		handle: h,
		format: f,
		buffer: NewFrameBuffer(o.bufferSize),
	}
}

// Format returns the format frames are packed with.
func (w *Writer) Format() *frame.Format {
	return w.format
}

// Write packs frames in order into one buffer and appends it with a single
// write. Writing no frames does nothing. If packing fails nothing is written;
// if the append fails a *mio.WriteError tells how many bytes reached the
// stream.
func (w *Writer) Write(frames ...*frame.Frame) error {
	if len(frames) == 0 {
		return nil
	}

	data, err := w.buffer.StorePacked(w.format, frames)
	if err != nil {
		return err
	}

	n, err := w.stream.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &mio.WriteError{Name: w.handle.Name(), Written: n, Size: len(data), Err: err}
	}
	logger.Tracef("%q: appended %d frames (%d bytes)", w.handle.Name(), len(frames), n)
	return nil
}

// Copy writes every frame produced by src until io.EOF and returns the
// number of frames written.
func (w *Writer) Copy(src FrameReader) (int, error) {
	written := 0
	for {
		fr, err := src.Read()
		if errors.Is(err, io.EOF) {
			return written, nil
		}
		if err != nil {
			return written, err
		}
		if err := w.Write(fr); err != nil {
			return written, err
		}
		written++
	}
}

// Close releases the stream if the Writer created it.
func (w *Writer) Close() error {
	return w.handle.Close()
}
