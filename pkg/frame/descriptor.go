package frame

import (
	"encoding/binary"
	"fmt"
)

// Layout selects the pack/unpack algorithm of a format.
type Layout int

const (
	// LayoutPlanar stores every component as its own contiguous block.
	LayoutPlanar Layout = iota
	// LayoutSemiPlanar stores luma in one block and both chroma components
	// interleaved element by element in a second block.
	LayoutSemiPlanar
	// LayoutPacked422 interleaves 8-bit samples of two horizontal pixels in
	// four consecutive bytes.
	LayoutPacked422
	// LayoutV210 packs six 10-bit pixels into four little-endian 32-bit words.
	LayoutV210
)

func (l Layout) String() string {
	switch l {
	case LayoutPlanar:
		return "planar"
	case LayoutSemiPlanar:
		return "semi-planar"
	case LayoutPacked422:
		return "packed-422"
	case LayoutV210:
		return "packed-10bit-quadword"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Sample names one slot of a packed or interleaved group.
type Sample uint8

const (
	SampleNone Sample = iota
	SampleY0
	SampleY1
	SampleU
	SampleV
)

// Descriptor holds the constants of one pixel format. It carries no frame
// dimensions; bind it to a width and height with NewFormat.
type Descriptor struct {
	// ID is the ffmpeg style pixel format name, e.g. "yuv420p10le".
	ID string
	// BitDepth is the number of significant bits per sample.
	BitDepth int
	// ByteOrder of multi-byte samples. Ignored for samples of one byte.
	ByteOrder binary.ByteOrder
	// SubW and SubH are the chroma subsampling factors. (0, 0) means the
	// format has no chroma planes.
	SubW, SubH int
	Layout     Layout
	// Packing is the slot order of one group. LayoutPacked422 uses all four
	// entries, LayoutSemiPlanar uses the first two to order the chroma pair.
	Packing [4]Sample
}

// Monochrome reports whether the format carries luma only.
func (d Descriptor) Monochrome() bool {
	return d.SubW == 0 && d.SubH == 0
}

// SampleBytes is the storage width of one planar sample.
func (d Descriptor) SampleBytes() int {
	if d.BitDepth <= 8 {
		return 1
	}
	return 2
}

func (d Descriptor) validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidDescriptor)
	}
	if d.BitDepth < 8 || d.BitDepth > 16 {
		return fmt.Errorf("%w: %s: bit depth %d out of [8, 16]", ErrInvalidDescriptor, d.ID, d.BitDepth)
	}
	if d.SubW < 0 || d.SubH < 0 || (d.SubW == 0) != (d.SubH == 0) {
		return fmt.Errorf("%w: %s: chroma subsampling (%d, %d)", ErrInvalidDescriptor, d.ID, d.SubW, d.SubH)
	}
	if d.SampleBytes() > 1 && d.ByteOrder == nil {
		return fmt.Errorf("%w: %s: byte order required for %d-bit samples", ErrInvalidDescriptor, d.ID, d.BitDepth)
	}

	switch d.Layout {
	case LayoutPlanar:
	case LayoutSemiPlanar:
		if d.Monochrome() {
			return fmt.Errorf("%w: %s: semi-planar layout needs chroma", ErrInvalidDescriptor, d.ID)
		}
		if !isChromaPair(d.Packing[0], d.Packing[1]) {
			return fmt.Errorf("%w: %s: chroma order %v", ErrInvalidDescriptor, d.ID, d.Packing[:2])
		}
	case LayoutPacked422:
		if d.BitDepth != 8 || d.SubW != 2 || d.SubH != 1 {
			return fmt.Errorf("%w: %s: packed 4:2:2 must be 8-bit with (2, 1) subsampling", ErrInvalidDescriptor, d.ID)
		}
		var seen [5]bool
		for _, s := range d.Packing {
			if s == SampleNone || int(s) >= len(seen) || seen[s] {
				return fmt.Errorf("%w: %s: packing %v", ErrInvalidDescriptor, d.ID, d.Packing)
			}
			seen[s] = true
		}
	case LayoutV210:
		if d.BitDepth != 10 || d.SubW != 2 || d.SubH != 1 {
			return fmt.Errorf("%w: %s: v210 must be 10-bit with (2, 1) subsampling", ErrInvalidDescriptor, d.ID)
		}
	default:
		return fmt.Errorf("%w: %s: unknown layout %v", ErrInvalidDescriptor, d.ID, d.Layout)
	}
	return nil
}

func isChromaPair(a, b Sample) bool {
	return (a == SampleU && b == SampleV) || (a == SampleV && b == SampleU)
}
