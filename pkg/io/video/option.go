package video

type readerOptions struct {
	probe          MemoryProbe
	memoryFraction float64
}

// ReaderOption configures a Reader.
type ReaderOption func(*readerOptions)

// WithMemoryProbe replaces the system memory query used by the read guard.
func WithMemoryProbe(probe MemoryProbe) ReaderOption {
	return func(o *readerOptions) {
		o.probe = probe
	}
}

// WithMemoryFraction sets the share of available memory a single read may
// use. Values outside (0, 1] keep the default.
func WithMemoryFraction(fraction float64) ReaderOption {
	return func(o *readerOptions) {
		if fraction > 0 && fraction <= 1 {
			o.memoryFraction = fraction
		}
	}
}

type writerOptions struct {
	bufferSize int
}

// WriterOption configures a Writer.
type WriterOption func(*writerOptions)

// WithBufferSize preallocates the packing buffer with size bytes.
func WithBufferSize(size int) WriterOption {
	return func(o *writerOptions) {
		if size > 0 {
			o.bufferSize = size
		}
	}
}
