package colorspace

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
)

// Scaler represents scaling algorithm
type Scaler draw.Scaler

// List of scaling algorithms
var (
	ScalerNearestNeighbor = Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = Scaler(draw.BiLinear)
	ScalerCatmullRom      = Scaler(draw.CatmullRom)
)

var errInvalidScale = errors.New("colorspace: both scale dimensions are non-positive")

// Scale returns a resized copy of p at the same bit depth.
// Setting scaler=nil to use default scaler. (ScalerNearestNeighbor)
// A non-positive width or height keeps the aspect ratio of p.
func (p *RGB) Scale(width, height int, scaler Scaler) (*RGB, error) {
	if scaler == nil {
		scaler = ScalerNearestNeighbor
	}

	switch {
	case width <= 0 && height <= 0:
		return nil, errInvalidScale
	case height <= 0:
		height = max(p.Height*width/p.Width, 1)
	case width <= 0:
		width = max(p.Width*height/p.Height, 1)
	}

	src := p.Image()
	rect := image.Rect(0, 0, width, height)
	var dst draw.Image
	if p.BitDepth <= 8 {
		dst = image.NewRGBA(rect)
	} else {
		dst = image.NewRGBA64(rect)
	}
	scaler.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)

	return RGBFromImage(dst, p.BitDepth), nil
}
