package frame

import (
	"encoding/binary"
	"fmt"
)

// Format is a Descriptor bound to concrete frame dimensions. It is immutable
// and safe to share.
type Format struct {
	desc Descriptor
	plan plan
}

// NewFormat binds d to width x height. Dimensions must be divisible by the
// chroma subsampling factors, and v210 widths by six. The v210 height is
// unconstrained since six-pixel groups never span rows.
func NewFormat(d Descriptor, width, height int) (*Format, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	p, err := newPlan(d, width, height)
	if err != nil {
		return nil, err
	}
	return &Format{desc: d, plan: p}, nil
}

func (f *Format) ID() string { return f.desc.ID }
func (f *Format) Descriptor() Descriptor { return f.desc }
func (f *Format) Layout() Layout { return f.desc.Layout }
func (f *Format) BitDepth() int { return f.desc.BitDepth }
func (f *Format) ByteOrder() binary.ByteOrder { return f.desc.ByteOrder }
func (f *Format) Width() int { return f.plan.width }
func (f *Format) Height() int { return f.plan.height }

// ChromaSubsampling returns the (width, height) subsampling factors. (0, 0)
// denotes a monochrome format.
func (f *Format) ChromaSubsampling() (int, int) {
	return f.desc.SubW, f.desc.SubH
}

// HasChroma reports whether frames of f carry U and V planes.
func (f *Format) HasChroma() bool {
	return !f.desc.Monochrome()
}

// Size is the number of bytes one packed frame occupies.
func (f *Format) Size() int {
	return f.plan.size
}

// LumaShape returns the width and height of the Y plane.
func (f *Format) LumaShape() (int, int) {
	return f.plan.width, f.plan.height
}

// ChromaShape returns the width and height of the U and V planes, or (0, 0)
// for monochrome formats.
func (f *Format) ChromaShape() (int, int) {
	return f.plan.chromaW, f.plan.chromaH
}

// IOInfo describes the component shapes, e.g.
// "y -> (height, width), u/Cb -> (height / 2, width / 2), v/Cr -> (height / 2, width / 2)".
func (f *Format) IOInfo() string {
	return ioInfo(f.desc)
}

func ioInfo(d Descriptor) string {
	if d.Monochrome() {
		return "y -> (height, width)"
	}
	return fmt.Sprintf("y -> (height, width), "+
		"u/Cb -> (height / %[2]d, width / %[1]d), "+
		"v/Cr -> (height / %[2]d, width / %[1]d)", d.SubW, d.SubH)
}

func (f *Format) String() string {
	return fmt.Sprintf("%s %dx%d", f.desc.ID, f.plan.width, f.plan.height)
}

type packFunc func(f *Format, dst []byte, y, u, v *Plane)

type unpackFunc func(f *Format, src []byte, y, u, v *Plane)

type layoutStrategy struct {
	pack   packFunc
	unpack unpackFunc
}

var strategies = [...]layoutStrategy{
	LayoutPlanar:     {packPlanar, unpackPlanar},
	LayoutSemiPlanar: {packSemiPlanar, unpackSemiPlanar},
	LayoutPacked422:  {packPacked422, unpackPacked422},
	LayoutV210:       {packV210, unpackV210},
}

// Pack encodes the planes into a newly allocated buffer of Size bytes.
func (f *Format) Pack(y, u, v *Plane) ([]byte, error) {
	return f.AppendPack(make([]byte, 0, f.plan.size), y, u, v)
}

// AppendPack encodes the planes and appends the result to dst. Samples are
// written as stored; values wider than a field are truncated only where the
// field itself is narrower than 16 bits.
func (f *Format) AppendPack(dst []byte, y, u, v *Plane) ([]byte, error) {
	if err := f.Validate(y, u, v); err != nil {
		return dst, err
	}

	n := len(dst)
	if cap(dst)-n < f.plan.size {
		grown := make([]byte, n, n+f.plan.size)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:n+f.plan.size]
	strategies[f.desc.Layout].pack(f, dst[n:], y, u, v)
	return dst, nil
}

// Unpack decodes exactly one frame of Size bytes into fresh planes. U and V
// are nil for monochrome formats.
func (f *Format) Unpack(data []byte) (y, u, v *Plane, err error) {
	if len(data) != f.plan.size {
		return nil, nil, nil, fmt.Errorf("%w: %s: got %d bytes, expected %d",
			ErrShapeMismatch, f, len(data), f.plan.size)
	}

	fr := Blank(f)
	strategies[f.desc.Layout].unpack(f, data, fr.Y, fr.U, fr.V)
	return fr.Y, fr.U, fr.V, nil
}

// UnpackFrame decodes one frame of Size bytes.
func (f *Format) UnpackFrame(data []byte) (*Frame, error) {
	y, u, v, err := f.Unpack(data)
	if err != nil {
		return nil, err
	}
	return &Frame{Y: y, U: u, V: v, format: f}, nil
}

// UnpackFrames decodes count consecutive frames from data.
func (f *Format) UnpackFrames(data []byte, count int) ([]*Frame, error) {
	if count < 0 || len(data) != count*f.plan.size {
		return nil, fmt.Errorf("%w: %s: got %d bytes for %d frames, expected %d",
			ErrShapeMismatch, f, len(data), count, count*f.plan.size)
	}

	frames := make([]*Frame, count)
	for i := range frames {
		off := i * f.plan.size
		fr, err := f.UnpackFrame(data[off : off+f.plan.size])
		if err != nil {
			return nil, err
		}
		frames[i] = fr
	}
	return frames, nil
}

// Validate checks planes against the shapes derived from f. Chroma planes
// must be nil for monochrome formats and present otherwise.
func (f *Format) Validate(y, u, v *Plane) error {
	if y == nil || !y.hasShape(f.plan.width, f.plan.height) {
		return fmt.Errorf("%w: %s: luma plane %s, expected %dx%d",
			ErrShapeMismatch, f, planeShape(y), f.plan.width, f.plan.height)
	}

	if !f.HasChroma() {
		if u != nil || v != nil {
			return fmt.Errorf("%w: %s: chroma planes must be absent", ErrShapeMismatch, f)
		}
		return nil
	}

	for _, c := range [...]struct {
		name string
		p    *Plane
	}{{"u", u}, {"v", v}} {
		if c.p == nil || !c.p.hasShape(f.plan.chromaW, f.plan.chromaH) {
			return fmt.Errorf("%w: %s: %s plane %s, expected %dx%d",
				ErrShapeMismatch, f, c.name, planeShape(c.p), f.plan.chromaW, f.plan.chromaH)
		}
	}
	return nil
}

func planeShape(p *Plane) string {
	if p == nil {
		return "absent"
	}
	return fmt.Sprintf("%dx%d (%d samples)", p.Width, p.Height, len(p.Pix))
}
