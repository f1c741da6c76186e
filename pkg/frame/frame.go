package frame

// Frame is a single picture split into its component planes. U and V are nil
// for monochrome formats.
type Frame struct {
	Y, U, V *Plane

	format *Format
}

// NewFrame binds planes to f after checking them against its derived shapes.
// The planes are not copied.
func NewFrame(f *Format, y, u, v *Plane) (*Frame, error) {
	if err := f.Validate(y, u, v); err != nil {
		return nil, err
	}
	return &Frame{Y: y, U: u, V: v, format: f}, nil
}

// Blank allocates a zeroed frame for f.
func Blank(f *Format) *Frame {
	fr := &Frame{Y: NewPlane(f.plan.width, f.plan.height), format: f}
	if f.HasChroma() {
		fr.U = NewPlane(f.plan.chromaW, f.plan.chromaH)
		fr.V = NewPlane(f.plan.chromaW, f.plan.chromaH)
	}
	return fr
}

// Format returns the format the frame was created for.
func (fr *Frame) Format() *Format {
	return fr.format
}

// Cb is an alias of U.
func (fr *Frame) Cb() *Plane { return fr.U }

// Cr is an alias of V.
func (fr *Frame) Cr() *Plane { return fr.V }

// Split returns the three planes in Y, U, V order.
func (fr *Frame) Split() (y, u, v *Plane) {
	return fr.Y, fr.U, fr.V
}

// Pack encodes the frame with its own format.
func (fr *Frame) Pack() ([]byte, error) {
	return fr.format.Pack(fr.Y, fr.U, fr.V)
}

// Clone returns a deep copy sharing only the format.
func (fr *Frame) Clone() *Frame {
	return &Frame{
		Y:      fr.Y.Clone(),
		U:      fr.U.Clone(),
		V:      fr.V.Clone(),
		format: fr.format,
	}
}

// Equal reports whether both frames have identical planes. Two nil frames
// are equal.
func (fr *Frame) Equal(o *Frame) bool {
	if fr == nil || o == nil {
		return fr == o
	}
	return fr.Y.Equal(o.Y) && fr.U.Equal(o.U) && fr.V.Equal(o.V)
}
