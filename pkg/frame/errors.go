package frame

import "errors"

var (
	// ErrDuplicateFormat is returned when a format identifier is registered twice
	// without allowing overwrite.
	ErrDuplicateFormat = errors.New("frame: duplicate format")
	// ErrUnknownFormat is returned when looking up an identifier nobody registered.
	ErrUnknownFormat = errors.New("frame: unknown format")
	// ErrInvalidDimensions is returned when width or height does not fit the
	// subsampling or packing granularity of a format.
	ErrInvalidDimensions = errors.New("frame: invalid dimensions")
	// ErrShapeMismatch is returned when planes or raw data disagree with the
	// shapes derived from a format.
	ErrShapeMismatch = errors.New("frame: shape mismatch")
	// ErrInvalidDescriptor is returned when a descriptor's constants contradict
	// its layout kind.
	ErrInvalidDescriptor = errors.New("frame: invalid descriptor")
)
