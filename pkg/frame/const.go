package frame

import (
	"encoding/binary"
	"fmt"
)

// Identifiers of the formats with a fixed bit depth and byte order.
const (
	FormatGray    = "gray"
	FormatYUV420P = "yuv420p"
	FormatYUV422P = "yuv422p"
	FormatYUV444P = "yuv444p"
	FormatNV12    = "nv12"
	FormatNV21    = "nv21"
	FormatNV16    = "nv16"
	FormatNV24    = "nv24"
	FormatNV42    = "nv42"
	FormatYUYV422 = "yuyv422"
	FormatUYVY422 = "uyvy422"
	FormatYVYU422 = "yvyu422"
	FormatV210    = "v210"
)

// FormatYUY2 is an alias of FormatYUYV422
const FormatYUY2 = FormatYUYV422

// FormatI420 is an alias of FormatYUV420P
const FormatI420 = FormatYUV420P

// planarFamily is one row of the planar format table. Each family is expanded
// to an 8-bit base identifier plus little and big endian high bit depth
// variants, e.g. yuv420p, yuv420p10le, yuv420p10be.
type planarFamily struct {
	name       string
	subW, subH int
}

var planarFamilies = []planarFamily{
	{"gray", 0, 0},
	{"yuv420p", 2, 2},
	{"yuv422p", 2, 1},
	{"yuv444p", 1, 1},
}

var highBitDepths = []int{9, 10, 12, 14, 16}

func planarDescriptors() []Descriptor {
	var ds []Descriptor
	for _, fam := range planarFamilies {
		ds = append(ds, Descriptor{
			ID:        fam.name,
			BitDepth:  8,
			ByteOrder: binary.LittleEndian,
			SubW:      fam.subW,
			SubH:      fam.subH,
			Layout:    LayoutPlanar,
		})
		for _, depth := range highBitDepths {
			for _, e := range []struct {
				suffix string
				order  binary.ByteOrder
			}{{"le", binary.LittleEndian}, {"be", binary.BigEndian}} {
				ds = append(ds, Descriptor{
					ID:        fmt.Sprintf("%s%d%s", fam.name, depth, e.suffix),
					BitDepth:  depth,
					ByteOrder: e.order,
					SubW:      fam.subW,
					SubH:      fam.subH,
					Layout:    LayoutPlanar,
				})
			}
		}
	}
	return ds
}

func semiPlanar(id string, subW, subH int, first, second Sample) Descriptor {
	return Descriptor{
		ID:        id,
		BitDepth:  8,
		ByteOrder: binary.LittleEndian,
		SubW:      subW,
		SubH:      subH,
		Layout:    LayoutSemiPlanar,
		Packing:   [4]Sample{first, second},
	}
}

func packed422(id string, order [4]Sample) Descriptor {
	return Descriptor{
		ID:        id,
		BitDepth:  8,
		ByteOrder: binary.LittleEndian,
		SubW:      2,
		SubH:      1,
		Layout:    LayoutPacked422,
		Packing:   order,
	}
}

// builtinDescriptors lists every format registered in DefaultRegistry.
func builtinDescriptors() []Descriptor {
	ds := planarDescriptors()
	return append(ds,
		semiPlanar(FormatNV12, 2, 2, SampleU, SampleV),
		semiPlanar(FormatNV21, 2, 2, SampleV, SampleU),
		semiPlanar(FormatNV16, 2, 1, SampleU, SampleV),
		semiPlanar(FormatNV24, 1, 1, SampleU, SampleV),
		semiPlanar(FormatNV42, 1, 1, SampleV, SampleU),
		packed422(FormatYUYV422, [4]Sample{SampleY0, SampleU, SampleY1, SampleV}),
		packed422(FormatUYVY422, [4]Sample{SampleU, SampleY0, SampleV, SampleY1}),
		packed422(FormatYVYU422, [4]Sample{SampleY0, SampleV, SampleY1, SampleU}),
		Descriptor{
			ID:        FormatV210,
			BitDepth:  10,
			ByteOrder: binary.LittleEndian,
			SubW:      2,
			SubH:      1,
			Layout:    LayoutV210,
		},
	)
}
