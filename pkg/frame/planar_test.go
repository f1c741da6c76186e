package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemiPlanarInterleave(t *testing.T) {
	const width, height = 4, 2
	input := []byte{
		// Y
		0x10, 0x11, 0x12, 0x13,
		0x14, 0x15, 0x16, 0x17,
		// interleaved chroma, one row of width/2 pairs
		0xa0, 0xb0, 0xa1, 0xb1,
	}

	cases := map[string]struct {
		u, v []uint16
	}{
		FormatNV12: {u: []uint16{0xa0, 0xa1}, v: []uint16{0xb0, 0xb1}},
		FormatNV21: {u: []uint16{0xb0, 0xb1}, v: []uint16{0xa0, 0xa1}},
	}
	for id, c := range cases {
		t.Run(id, func(t *testing.T) {
			f, err := New(id, width, height)
			require.NoError(t, err)

			y, u, v, err := f.Unpack(input)
			require.NoError(t, err)
			assert.Equal(t, []uint16{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17}, y.Pix)
			assert.Equal(t, c.u, u.Pix)
			assert.Equal(t, c.v, v.Pix)
			assert.Equal(t, 2, u.Width)
			assert.Equal(t, 1, u.Height)

			packed, err := f.Pack(y, u, v)
			require.NoError(t, err)
			assert.Equal(t, input, packed)
		})
	}
}

func TestPlanarBlocks(t *testing.T) {
	f, err := New(FormatYUV420P, 2, 2)
	require.NoError(t, err)

	fr, err := NewFrame(f,
		&Plane{Width: 2, Height: 2, Pix: []uint16{1, 2, 3, 4}},
		&Plane{Width: 1, Height: 1, Pix: []uint16{5}},
		&Plane{Width: 1, Height: 1, Pix: []uint16{6}},
	)
	require.NoError(t, err)

	packed, err := fr.Pack()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, packed)
}

func TestPlaneHelpers(t *testing.T) {
	p := NewPlane(3, 2)
	p.Set(2, 1, 42)
	assert.Equal(t, uint16(42), p.At(2, 1))
	assert.Equal(t, uint16(42), p.Pix[5])

	c := p.Clone()
	assert.True(t, p.Equal(c))
	c.Set(0, 0, 1)
	assert.False(t, p.Equal(c))

	var a, b *Plane
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(p))
}

func TestFrameEqualNil(t *testing.T) {
	f, err := New(FormatYUV420P, 4, 2)
	require.NoError(t, err)
	fr := Blank(f)

	var none *Frame
	assert.False(t, fr.Equal(nil))
	assert.False(t, none.Equal(fr))
	assert.True(t, none.Equal(nil))
	assert.True(t, fr.Equal(fr.Clone()))
}
