package colorspace

import (
	"image"
	"image/color"
)

// RGB is an interleaved R, G, B buffer with BitDepth significant bits per
// channel. The pixel at (x, y) starts at Pix[3*(y*Width+x)].
type RGB struct {
	Width, Height int
	BitDepth      int
	Pix           []uint16
}

// NewRGB allocates a black width x height buffer.
func NewRGB(width, height, bitDepth int) *RGB {
	return &RGB{
		Width:    width,
		Height:   height,
		BitDepth: bitDepth,
		Pix:      make([]uint16, 3*width*height),
	}
}

// At returns the channels of the pixel at (x, y).
func (p *RGB) At(x, y int) (r, g, b uint16) {
	i := 3 * (y*p.Width + x)
	s := p.Pix[i : i+3 : i+3]
	return s[0], s[1], s[2]
}

// Set stores the channels of the pixel at (x, y).
func (p *RGB) Set(x, y int, r, g, b uint16) {
	i := 3 * (y*p.Width + x)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = r, g, b
}

// Image returns an opaque copy of p as *image.RGBA for 8-bit data and as
// *image.RGBA64 for deeper data, scaled to the full 16-bit range.
func (p *RGB) Image() image.Image {
	r := image.Rect(0, 0, p.Width, p.Height)
	if p.BitDepth <= 8 {
		dst := image.NewRGBA(r)
		for i, j := 0, 0; i < len(p.Pix); i, j = i+3, j+4 {
			dst.Pix[j+0] = uint8(p.Pix[i+0])
			dst.Pix[j+1] = uint8(p.Pix[i+1])
			dst.Pix[j+2] = uint8(p.Pix[i+2])
			dst.Pix[j+3] = 0xFF
		}
		return dst
	}

	maxValue := uint32(1)<<p.BitDepth - 1
	scale := func(v uint16) uint16 {
		return uint16((uint32(v)*0xFFFF + maxValue/2) / maxValue)
	}
	dst := image.NewRGBA64(r)
	for yi := 0; yi < p.Height; yi++ {
		for xi := 0; xi < p.Width; xi++ {
			cr, cg, cb := p.At(xi, yi)
			dst.SetRGBA64(xi, yi, color.RGBA64{R: scale(cr), G: scale(cg), B: scale(cb), A: 0xFFFF})
		}
	}
	return dst
}

// RGBFromImage samples src into a buffer with bitDepth bits per channel.
// Alpha is ignored.
func RGBFromImage(src image.Image, bitDepth int) *RGB {
	bounds := src.Bounds()
	dst := NewRGB(bounds.Dx(), bounds.Dy(), bitDepth)
	maxValue := uint32(1)<<bitDepth - 1
	scale := func(v uint32) uint16 {
		return uint16((v*maxValue + 0x7FFF) / 0xFFFF)
	}

	if rgba, ok := src.(*image.RGBA); ok && bitDepth == 8 {
		for yi := 0; yi < dst.Height; yi++ {
			row := rgba.Pix[yi*rgba.Stride:]
			for xi := 0; xi < dst.Width; xi++ {
				dst.Set(xi, yi, uint16(row[4*xi]), uint16(row[4*xi+1]), uint16(row[4*xi+2]))
			}
		}
		return dst
	}

	for yi := 0; yi < dst.Height; yi++ {
		for xi := 0; xi < dst.Width; xi++ {
			r, g, b, _ := src.At(bounds.Min.X+xi, bounds.Min.Y+yi).RGBA()
			dst.Set(xi, yi, scale(r), scale(g), scale(b))
		}
	}
	return dst
}
