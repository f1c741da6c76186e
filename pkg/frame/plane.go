package frame

import "slices"

// Plane is one component of a frame. Samples are stored row-major in 16-bit
// cells regardless of the format's bit depth.
type Plane struct {
	Width, Height int
	Pix           []uint16
}

// NewPlane allocates a zeroed width x height plane.
func NewPlane(width, height int) *Plane {
	return &Plane{
		Width:  width,
		Height: height,
		Pix:    make([]uint16, width*height),
	}
}

// At returns the sample at column x, row y.
func (p *Plane) At(x, y int) uint16 {
	return p.Pix[y*p.Width+x]
}

// Set stores v at column x, row y.
func (p *Plane) Set(x, y int, v uint16) {
	p.Pix[y*p.Width+x] = v
}

// Fill sets every sample to v.
func (p *Plane) Fill(v uint16) {
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// Clone returns a deep copy of p.
func (p *Plane) Clone() *Plane {
	if p == nil {
		return nil
	}
	return &Plane{Width: p.Width, Height: p.Height, Pix: slices.Clone(p.Pix)}
}

// Equal reports whether p and o have the same shape and samples. Two nil
// planes are equal.
func (p *Plane) Equal(o *Plane) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Width == o.Width && p.Height == o.Height && slices.Equal(p.Pix, o.Pix)
}

func (p *Plane) hasShape(width, height int) bool {
	return p.Width == width && p.Height == height && len(p.Pix) == width*height
}
