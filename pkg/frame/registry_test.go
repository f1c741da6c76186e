package frame

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	first := Descriptor{ID: "custom", BitDepth: 8, SubW: 2, SubH: 2, Layout: LayoutPlanar}
	second := Descriptor{ID: "custom", BitDepth: 10, ByteOrder: binary.BigEndian, SubW: 1, SubH: 1, Layout: LayoutPlanar}

	require.NoError(t, r.Register(first, false))
	assert.ErrorIs(t, r.Register(second, false), ErrDuplicateFormat)

	d, err := r.Lookup("custom")
	require.NoError(t, err)
	assert.Equal(t, first, d)

	require.NoError(t, r.Register(second, true))
	d, err = r.Lookup("custom")
	require.NoError(t, err)
	assert.Equal(t, second, d)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryUnknown(t *testing.T) {
	_, err := NewRegistry().Lookup("yuv420p")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = New("does-not-exist", 2, 2)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRegistryRejectsInvalidDescriptor(t *testing.T) {
	r := NewRegistry()
	cases := map[string]Descriptor{
		"empty id":       {BitDepth: 8, Layout: LayoutPlanar},
		"bit depth":      {ID: "a", BitDepth: 17, Layout: LayoutPlanar},
		"half mono":      {ID: "b", BitDepth: 8, SubW: 0, SubH: 2, Layout: LayoutPlanar},
		"no byte order":  {ID: "c", BitDepth: 10, SubW: 1, SubH: 1, Layout: LayoutPlanar},
		"semi mono":      {ID: "d", BitDepth: 8, Layout: LayoutSemiPlanar, Packing: [4]Sample{SampleU, SampleV}},
		"semi order":     {ID: "e", BitDepth: 8, SubW: 2, SubH: 2, Layout: LayoutSemiPlanar},
		"packed depth":   {ID: "f", BitDepth: 10, ByteOrder: binary.LittleEndian, SubW: 2, SubH: 1, Layout: LayoutPacked422, Packing: [4]Sample{SampleY0, SampleU, SampleY1, SampleV}},
		"packed repeats": {ID: "g", BitDepth: 8, SubW: 2, SubH: 1, Layout: LayoutPacked422, Packing: [4]Sample{SampleY0, SampleU, SampleY0, SampleV}},
		"v210 subsample": {ID: "h", BitDepth: 10, ByteOrder: binary.LittleEndian, SubW: 2, SubH: 2, Layout: LayoutV210},
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, r.Register(d, false), ErrInvalidDescriptor)
		})
	}
	assert.Zero(t, r.Len())
}

func TestDefaultRegistry(t *testing.T) {
	for _, id := range []string{
		"gray", "gray9le", "gray16be",
		"yuv420p", "yuv420p10le", "yuv420p10be", "yuv420p16le",
		"yuv422p", "yuv422p12be", "yuv444p", "yuv444p14le",
		"nv12", "nv21", "yuyv422", "uyvy422", "yvyu422", "v210",
	} {
		assert.True(t, DefaultRegistry.Contains(id), id)
	}
	// 4 families x (1 + 5 depths x 2 byte orders) + 5 semi-planar + 3 packed + v210
	assert.Equal(t, 4*11+5+3+1, DefaultRegistry.Len())

	d, err := Lookup(FormatV210)
	require.NoError(t, err)
	assert.Equal(t, LayoutV210, d.Layout)
}
