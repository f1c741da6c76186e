package video

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/pion/yuvio/pkg/frame"
	mio "github.com/pion/yuvio/pkg/io"
)

// Reader gives random access to the frames of a raw stream. The number of
// frames is derived once from the stream length; a trailing partial frame is
// ignored. A Reader is not safe for concurrent use.
type Reader struct {
	stream mio.ReadStream
	handle *mio.Handle
	format *frame.Format
	length int
	opts   readerOptions
}

// NewReader reads frames of format f from s. The caller keeps ownership of
// s; Close does not close it.
func NewReader(s mio.ReadStream, f *frame.Format, opts ...ReaderOption) (*Reader, error) {
	return newReader(s, mio.Borrowed(mio.StreamName(s)), f, opts)
}

// OpenReader opens path and reads frames of format f from it. The file is
// owned by the Reader and released by Close.
func OpenReader(path string, f *frame.Format, opts ...ReaderOption) (*Reader, error) {
	resolved, err := mio.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(resolved)
	if err != nil {
		return nil, err
	}

	r, err := newReader(file, mio.Owned(resolved, file), f, opts)
	if err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

func newReader(s mio.ReadStream, h *mio.Handle, f *frame.Format, opts []ReaderOption) (*Reader, error) {
	r := &Reader{
		stream: s,
		handle: h,
		format: f,
		opts: readerOptions{
			probe:          SystemMemory,
			memoryFraction: DefaultMemoryFraction,
		},
	}
	for _, o := range opts {
		o(&r.opts)
	}

	size, err := mio.Size(s)
	if err != nil {
		return nil, fmt.Errorf("size of %q: %w", h.Name(), err)
	}
	frameSize := int64(f.Size())
	r.length = int(size / frameSize)
	if rest := size % frameSize; rest != 0 {
		logger.Warnf("%q: ignoring %d trailing bytes of a partial %s frame", h.Name(), rest, f)
	}
	logger.Debugf("%q: %d frames of %s (%d bytes each)", h.Name(), r.length, f, frameSize)
	return r, nil
}

// Len returns the number of complete frames in the stream.
func (r *Reader) Len() int {
	return r.length
}

// Format returns the format frames are decoded with.
func (r *Reader) Format() *frame.Format {
	return r.format
}

// Name returns the path or label of the underlying stream.
func (r *Reader) Name() string {
	return r.handle.Name()
}

// Read decodes count frames starting at frame index.
func (r *Reader) Read(index, count int) ([]*frame.Frame, error) {
	if err := r.checkRange(index, count); err != nil {
		return nil, err
	}
	if count == 0 {
		return []*frame.Frame{}, nil
	}
	if err := r.checkMemory(count); err != nil {
		return nil, err
	}

	buf := make([]byte, count*r.format.Size())
	if err := r.readAt(buf, index); err != nil {
		return nil, err
	}
	return r.format.UnpackFrames(buf, count)
}

// ReadFrame decodes the frame at index.
func (r *Reader) ReadFrame(index int) (*frame.Frame, error) {
	frames, err := r.Read(index, 1)
	if err != nil {
		return nil, err
	}
	return frames[0], nil
}

// ReadAll decodes every frame of the stream.
func (r *Reader) ReadAll() ([]*frame.Frame, error) {
	return r.Read(0, r.length)
}

// ReadRaw copies count packed frames starting at index into dst without
// decoding them and returns the number of bytes copied.
func (r *Reader) ReadRaw(dst []byte, index, count int) (int, error) {
	if err := r.checkRange(index, count); err != nil {
		return 0, err
	}
	n := count * r.format.Size()
	if len(dst) < n {
		return 0, &mio.InsufficientBufferError{RequiredSize: n}
	}
	if err := r.readAt(dst[:n], index); err != nil {
		return 0, err
	}
	return n, nil
}

// All iterates over every frame in order. Iteration stops after the first
// error, which is yielded with a nil frame.
func (r *Reader) All() iter.Seq2[*frame.Frame, error] {
	return func(yield func(*frame.Frame, error) bool) {
		for i := 0; i < r.length; i++ {
			fr, err := r.ReadFrame(i)
			if !yield(fr, err) || err != nil {
				return
			}
		}
	}
}

// Source returns a FrameReader yielding frames from start to the end of the
// stream, then io.EOF.
func (r *Reader) Source(start int) FrameReader {
	next := start
	return FrameReaderFunc(func() (*frame.Frame, error) {
		if next >= r.length {
			return nil, io.EOF
		}
		fr, err := r.ReadFrame(next)
		if err != nil {
			return nil, err
		}
		next++
		return fr, nil
	})
}

// Close releases the stream if the Reader opened it.
func (r *Reader) Close() error {
	return r.handle.Close()
}

func (r *Reader) checkRange(index, count int) error {
	if index < 0 || count < 0 || index > r.length || count > r.length-index {
		return &mio.OutOfRangeError{Name: r.handle.Name(), Index: index, Count: count, Total: r.length}
	}
	return nil
}

// checkMemory is advisory: a failing probe disables the guard for this call.
func (r *Reader) checkMemory(count int) error {
	if r.opts.probe == nil {
		return nil
	}
	available, err := r.opts.probe()
	if err != nil {
		logger.Warnf("memory guard skipped: %v", err)
		return nil
	}

	required := uint64(count) * uint64(r.format.Size())
	if float64(required) > float64(available)*r.opts.memoryFraction {
		logger.Warnf("%q: refusing to read %d frames (%d bytes, %d available)", r.handle.Name(), count, required, available)
		return &mio.MemoryBudgetError{
			Name:      r.handle.Name(),
			Count:     count,
			Required:  required,
			Available: available,
			Fraction:  r.opts.memoryFraction,
		}
	}
	return nil
}

func (r *Reader) readAt(dst []byte, index int) error {
	offset := int64(index) * int64(r.format.Size())
	if _, err := r.stream.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek %q to frame %d: %w", r.handle.Name(), index, err)
	}
	if _, err := io.ReadFull(r.stream, dst); err != nil {
		return fmt.Errorf("read %q at frame %d: %w", r.handle.Name(), index, err)
	}
	return nil
}
