package video

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/yuvio/pkg/frame"
	mio "github.com/pion/yuvio/pkg/io"
)

func TestReaderLength(t *testing.T) {
	f, err := frame.New(frame.FormatYUV420P, 4, 4)
	require.NoError(t, err)
	data := packed(t, numbered(t, f, 3))

	cases := map[string]struct {
		data     []byte
		expected int
	}{
		"Exact":        {data, 3},
		"TrailingHalf": {append(bytes.Clone(data), make([]byte, f.Size()/2)...), 3},
		"Empty":        {nil, 0},
		"PartialOnly":  {make([]byte, f.Size()-1), 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewReader(bytes.NewReader(c.data), f, WithMemoryProbe(plentyOfMemory))
			require.NoError(t, err)
			assert.Equal(t, c.expected, r.Len())
		})
	}
}

func TestReaderRead(t *testing.T) {
	for _, id := range []string{frame.FormatGray, frame.FormatYUV420P, "yuv422p10be", frame.FormatNV12, frame.FormatUYVY422, frame.FormatV210} {
		t.Run(id, func(t *testing.T) {
			f, err := frame.New(id, 6, 2)
			require.NoError(t, err)
			src := numbered(t, f, 4)

			r, err := NewReader(bytes.NewReader(packed(t, src)), f, WithMemoryProbe(plentyOfMemory))
			require.NoError(t, err)
			require.Equal(t, 4, r.Len())

			frames, err := r.Read(1, 2)
			require.NoError(t, err)
			require.Len(t, frames, 2)
			assert.True(t, src[1].Equal(frames[0]))
			assert.True(t, src[2].Equal(frames[1]))
			assert.Same(t, f, frames[0].Format())

			all, err := r.ReadAll()
			require.NoError(t, err)
			require.Len(t, all, 4)
			for i := range all {
				assert.True(t, src[i].Equal(all[i]), "frame %d", i)
			}
		})
	}
}

func TestReaderOutOfRange(t *testing.T) {
	f, err := frame.New(frame.FormatGray, 2, 2)
	require.NoError(t, err)
	r, err := NewReader(bytes.NewReader(packed(t, numbered(t, f, 3))), f, WithMemoryProbe(plentyOfMemory))
	require.NoError(t, err)

	_, err = r.Read(2, 2)
	require.ErrorIs(t, err, mio.ErrOutOfRange)

	var rangeErr *mio.OutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 2, rangeErr.Index)
	assert.Equal(t, 2, rangeErr.Count)
	assert.Equal(t, 3, rangeErr.Total)

	_, err = r.Read(-1, 1)
	assert.ErrorIs(t, err, mio.ErrOutOfRange)
	_, err = r.ReadFrame(3)
	assert.ErrorIs(t, err, mio.ErrOutOfRange)

	frames, err := r.Read(3, 0)
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestReaderOutOfRangeOverflow(t *testing.T) {
	f, err := frame.New(frame.FormatGray, 2, 2)
	require.NoError(t, err)
	failingProbe := func() (uint64, error) { return 0, errors.New("no meminfo") }

	for _, probe := range []MemoryProbe{plentyOfMemory, failingProbe} {
		r, err := NewReader(bytes.NewReader(packed(t, numbered(t, f, 3))), f, WithMemoryProbe(probe))
		require.NoError(t, err)

		cases := [][2]int{{1, math.MaxInt}, {math.MaxInt, 1}, {math.MaxInt, math.MaxInt}, {4, 0}}
		for _, c := range cases {
			_, err = r.Read(c[0], c[1])
			assert.ErrorIs(t, err, mio.ErrOutOfRange, "Read(%d, %d)", c[0], c[1])

			_, err = r.ReadRaw(make([]byte, 16), c[0], c[1])
			assert.ErrorIs(t, err, mio.ErrOutOfRange, "ReadRaw(%d, %d)", c[0], c[1])
		}
	}
}

func TestReaderMemoryGuard(t *testing.T) {
	f, err := frame.New(frame.FormatGray, 10, 10)
	require.NoError(t, err)
	data := packed(t, numbered(t, f, 4))

	probed := 0
	scarce := func() (uint64, error) {
		probed++
		return 250, nil
	}
	r, err := NewReader(bytes.NewReader(data), f, WithMemoryProbe(scarce))
	require.NoError(t, err)

	// 200 bytes fit into 90% of 250
	_, err = r.Read(0, 2)
	require.NoError(t, err)

	_, err = r.Read(0, 3)
	require.ErrorIs(t, err, mio.ErrMemoryBudgetExceeded)
	var budgetErr *mio.MemoryBudgetError
	require.True(t, errors.As(err, &budgetErr))
	assert.Equal(t, uint64(300), budgetErr.Required)
	assert.Equal(t, uint64(250), budgetErr.Available)
	assert.Equal(t, 2, probed)

	strict, err := NewReader(bytes.NewReader(data), f, WithMemoryProbe(scarce), WithMemoryFraction(0.5))
	require.NoError(t, err)
	_, err = strict.Read(0, 2)
	assert.ErrorIs(t, err, mio.ErrMemoryBudgetExceeded)

	broken := func() (uint64, error) { return 0, errors.New("no meminfo") }
	lenient, err := NewReader(bytes.NewReader(data), f, WithMemoryProbe(broken))
	require.NoError(t, err)
	_, err = lenient.Read(0, 4)
	assert.NoError(t, err)
}

func TestReaderSystemMemory(t *testing.T) {
	f, err := frame.New(frame.FormatGray, 2, 2)
	require.NoError(t, err)
	r, err := NewReader(bytes.NewReader(packed(t, numbered(t, f, 1))), f)
	require.NoError(t, err)

	fr, err := r.ReadFrame(0)
	require.NoError(t, err)
	assert.Equal(t, uint16(10), fr.Y.At(1, 1))
}

func TestReaderIteration(t *testing.T) {
	f, err := frame.New(frame.FormatYUV444P, 2, 2)
	require.NoError(t, err)
	src := numbered(t, f, 5)
	r, err := NewReader(bytes.NewReader(packed(t, src)), f, WithMemoryProbe(plentyOfMemory))
	require.NoError(t, err)

	i := 0
	for fr, err := range r.All() {
		require.NoError(t, err)
		assert.True(t, src[i].Equal(fr))
		i++
	}
	assert.Equal(t, 5, i)

	source := r.Source(3)
	for _, expected := range src[3:] {
		fr, err := source.Read()
		require.NoError(t, err)
		assert.True(t, expected.Equal(fr))
	}
	_, err = source.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderReadRaw(t *testing.T) {
	f, err := frame.New(frame.FormatYUYV422, 2, 1)
	require.NoError(t, err)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	r, err := NewReader(bytes.NewReader(data), f, WithMemoryProbe(plentyOfMemory))
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	_, err = r.ReadRaw(make([]byte, 4), 1, 2)
	var bufErr *mio.InsufficientBufferError
	require.True(t, errors.As(err, &bufErr))
	assert.Equal(t, 8, bufErr.RequiredSize)

	dst := make([]byte, 8)
	n, err := r.ReadRaw(dst, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, data[4:], dst)
}

func TestReaderOwnership(t *testing.T) {
	f, err := frame.New(frame.FormatGray, 2, 2)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "gray.yuv")
	require.NoError(t, os.WriteFile(path, packed(t, numbered(t, f, 2)), 0o644))

	t.Run("Owned", func(t *testing.T) {
		r, err := OpenReader(path, f, WithMemoryProbe(plentyOfMemory))
		require.NoError(t, err)
		assert.Equal(t, 2, r.Len())
		assert.Equal(t, path, r.Name())
		require.NoError(t, r.Close())

		_, err = r.ReadFrame(0)
		assert.ErrorIs(t, err, os.ErrClosed)
	})

	t.Run("Borrowed", func(t *testing.T) {
		file, err := os.Open(path)
		require.NoError(t, err)
		defer file.Close()

		r, err := NewReader(file, f, WithMemoryProbe(plentyOfMemory))
		require.NoError(t, err)
		require.NoError(t, r.Close())

		fr, err := r.ReadFrame(1)
		require.NoError(t, err)
		assert.Equal(t, uint16(11), fr.Y.At(0, 0))
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := OpenReader(filepath.Join(t.TempDir(), "missing.yuv"), f)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
