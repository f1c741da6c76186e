// Package colorspace converts between Y'CbCr planes and RGB with 16.16
// fixed-point integer arithmetic.
package colorspace

import (
	"errors"
	"fmt"
	"math"

	"github.com/pion/yuvio/pkg/frame"
)

// ErrUnsupportedConversion is returned when a conversion is requested for a
// chroma subsampled format or for mismatching inputs.
var ErrUnsupportedConversion = errors.New("colorspace: unsupported conversion")

const (
	fix     = 16
	fixOne  = 1 << fix
	center8 = 128
)

// Coefficients are the luma weights of a Rec. matrix (A for R, B for G, C for
// B) and the chroma scale terms D = 2(1-C) and E = 2(1-A).
type Coefficients struct {
	A, B, C float64
	D, E    float64
}

// Colorspace is one (specification, range) conversion. All fixed-point
// coefficients are computed by New and never change afterwards.
type Colorspace struct {
	coefficients Coefficients
	yBase        [2]int
	cbcrBase     [2]int
	margin       int

	// to RGB
	yScaleTo int64
	dTo      int64 // Cb -> B
	eTo      int64 // Cr -> R
	aeBTo    int64 // Cr -> G
	cdBTo    int64 // Cb -> G

	// from RGB
	aFrom, bFrom, cFrom int64
	invDFrom, invEFrom  int64
	yScaleFrom          int64
	cbcrScaleFrom       int64
}

// New builds a colorspace. yBase and cbcrBase are the 8-bit code ranges of
// luma and chroma, margin is the 8-bit footroom/headroom kept free by FromRGB.
func New(c Coefficients, yBase, cbcrBase [2]int, margin int) *Colorspace {
	yLen := float64(yBase[1] - yBase[0])
	cLen := float64(cbcrBase[1] - cbcrBase[0])

	return &Colorspace{
		coefficients: c,
		yBase:        yBase,
		cbcrBase:     cbcrBase,
		margin:       margin,

		yScaleTo: toFixed(255 / yLen),
		dTo:      toFixed(c.D * 255 / cLen),
		eTo:      toFixed(c.E * 255 / cLen),
		aeBTo:    toFixed(c.A * c.E / c.B * 255 / cLen),
		cdBTo:    toFixed(c.C * c.D / c.B * 255 / cLen),

		aFrom:         toFixed(c.A),
		bFrom:         toFixed(c.B),
		cFrom:         toFixed(c.C),
		invDFrom:      toFixed(1 / c.D),
		invEFrom:      toFixed(1 / c.E),
		yScaleFrom:    toFixed(yLen / 255),
		cbcrScaleFrom: toFixed(cLen / 255),
	}
}

func toFixed(v float64) int64 {
	return int64(math.RoundToEven(v * fixOne))
}

// Coefficients returns the real-valued matrix terms c was built from.
func (c *Colorspace) Coefficients() Coefficients {
	return c.coefficients
}

func checkFormat(f *frame.Format) error {
	if !f.HasChroma() {
		return nil
	}
	if w, h := f.ChromaSubsampling(); w != 1 || h != 1 {
		return fmt.Errorf("%w: color conversion needs a 4:4:4 format, %q has chroma subsampling (%d, %d)",
			ErrUnsupportedConversion, f.ID(), w, h)
	}
	return nil
}

// ToRGB converts planes of format f to interleaved RGB at the same bit depth.
// f must not subsample chroma. For monochrome formats u and v must be nil and
// chroma is taken as neutral.
func (c *Colorspace) ToRGB(y, u, v *frame.Plane, f *frame.Format) (*RGB, error) {
	if err := checkFormat(f); err != nil {
		return nil, err
	}
	if err := f.Validate(y, u, v); err != nil {
		return nil, err
	}

	bitDepth := f.BitDepth()
	maxValue := int64(1)<<bitDepth - 1
	shift := bitDepth - 8
	yOffset := int64(c.yBase[0]) << shift
	chromaCenter := int64(center8) << shift

	dst := NewRGB(y.Width, y.Height, bitDepth)
	for i, ys := range y.Pix {
		var cb, cr int64
		if u != nil {
			cb = int64(u.Pix[i]) - chromaCenter
			cr = int64(v.Pix[i]) - chromaCenter
		}
		yy := (int64(ys) - yOffset) * c.yScaleTo

		r := (yy + c.eTo*cr) >> fix
		g := (yy - c.aeBTo*cr - c.cdBTo*cb) >> fix
		b := (yy + c.dTo*cb) >> fix

		px := dst.Pix[3*i : 3*i+3 : 3*i+3]
		px[0] = uint16(clamp(r, 0, maxValue))
		px[1] = uint16(clamp(g, 0, maxValue))
		px[2] = uint16(clamp(b, 0, maxValue))
	}
	return dst, nil
}

// FromRGB converts rgb to planes of format f. f must not subsample chroma;
// for monochrome formats only luma is returned. Results are clipped to the
// studio guard band [margin, max-margin] scaled to the bit depth.
func (c *Colorspace) FromRGB(rgb *RGB, f *frame.Format) (y, u, v *frame.Plane, err error) {
	if err := checkFormat(f); err != nil {
		return nil, nil, nil, err
	}
	if w, h := f.LumaShape(); rgb.Width != w || rgb.Height != h || len(rgb.Pix) != 3*w*h {
		return nil, nil, nil, fmt.Errorf("%w: rgb %dx%d does not match %s",
			frame.ErrShapeMismatch, rgb.Width, rgb.Height, f)
	}
	if rgb.BitDepth != f.BitDepth() {
		return nil, nil, nil, fmt.Errorf("%w: %d-bit rgb into %d-bit %q",
			ErrUnsupportedConversion, rgb.BitDepth, f.BitDepth(), f.ID())
	}

	bitDepth := f.BitDepth()
	shift := bitDepth - 8
	yLow := int64(c.yBase[0]) << shift
	chromaCenter := int64(center8) << shift
	clipLow := int64(c.margin) << shift
	clipHigh := int64(1)<<bitDepth - 1 - clipLow

	y = frame.NewPlane(rgb.Width, rgb.Height)
	if f.HasChroma() {
		u = frame.NewPlane(rgb.Width, rgb.Height)
		v = frame.NewPlane(rgb.Width, rgb.Height)
	}

	for i := range y.Pix {
		px := rgb.Pix[3*i : 3*i+3 : 3*i+3]
		r, g, b := int64(px[0]), int64(px[1]), int64(px[2])

		// luma in 16.16
		yy := c.aFrom*r + c.bFrom*g + c.cFrom*b
		y.Pix[i] = uint16(clamp((yy*c.yScaleFrom)>>(2*fix)+yLow, clipLow, clipHigh))
		if u == nil {
			continue
		}

		cb := ((b<<fix - yy) * c.invDFrom) >> fix
		cr := ((r<<fix - yy) * c.invEFrom) >> fix
		u.Pix[i] = uint16(clamp((cb*c.cbcrScaleFrom)>>(2*fix)+chromaCenter, clipLow, clipHigh))
		v.Pix[i] = uint16(clamp((cr*c.cbcrScaleFrom)>>(2*fix)+chromaCenter, clipLow, clipHigh))
	}
	return y, u, v, nil
}

// FrameToRGB converts a whole frame with its own format.
func (c *Colorspace) FrameToRGB(fr *frame.Frame) (*RGB, error) {
	return c.ToRGB(fr.Y, fr.U, fr.V, fr.Format())
}

// FrameFromRGB converts rgb into a new frame of format f.
func (c *Colorspace) FrameFromRGB(rgb *RGB, f *frame.Format) (*frame.Frame, error) {
	y, u, v, err := c.FromRGB(rgb, f)
	if err != nil {
		return nil, err
	}
	return frame.NewFrame(f, y, u, v)
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
