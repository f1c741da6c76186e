package frame

import "fmt"

// plan is the byte layout of one frame, derived once per Format.
type plan struct {
	width, height    int
	chromaW, chromaH int

	sampleBytes int
	lumaBytes   int
	chromaBytes int // one chroma component

	// planar offsets of the second and third block
	uOffset, vOffset int

	// packed layouts: number of 2-pixel (4:2:2) or 6-pixel (v210) groups
	groups int

	size int
}

// v210 packs six luma samples into one 16-byte group.
const (
	v210GroupPixels = 6
	v210GroupBytes  = 16
)

func newPlan(d Descriptor, width, height int) (plan, error) {
	if width <= 0 || height <= 0 {
		return plan{}, fmt.Errorf("%w: %s: %dx%d", ErrInvalidDimensions, d.ID, width, height)
	}

	p := plan{
		width:       width,
		height:      height,
		sampleBytes: d.SampleBytes(),
	}

	if !d.Monochrome() {
		if width%d.SubW != 0 || height%d.SubH != 0 {
			return plan{}, fmt.Errorf("%w: %s: %dx%d not divisible by chroma subsampling (%d, %d)",
				ErrInvalidDimensions, d.ID, width, height, d.SubW, d.SubH)
		}
		p.chromaW = width / d.SubW
		p.chromaH = height / d.SubH
	}

	p.lumaBytes = width * height * p.sampleBytes
	p.chromaBytes = p.chromaW * p.chromaH * p.sampleBytes

	switch d.Layout {
	case LayoutPlanar, LayoutSemiPlanar:
		p.uOffset = p.lumaBytes
		p.vOffset = p.lumaBytes + p.chromaBytes
		p.size = p.lumaBytes + 2*p.chromaBytes
	case LayoutPacked422:
		p.groups = width / 2 * height
		p.size = 4 * p.groups
	case LayoutV210:
		if width%v210GroupPixels != 0 {
			return plan{}, fmt.Errorf("%w: %s: width %d not divisible by %d",
				ErrInvalidDimensions, d.ID, width, v210GroupPixels)
		}
		p.groups = width * height / v210GroupPixels
		p.size = v210GroupBytes * p.groups
	}
	return p, nil
}
