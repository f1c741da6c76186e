package video

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pion/yuvio/pkg/frame"
)

// numbered returns count frames of f whose samples encode the frame number.
func numbered(t *testing.T, f *frame.Format, count int) []*frame.Frame {
	t.Helper()
	frames := make([]*frame.Frame, count)
	for i := range frames {
		fr := frame.Blank(f)
		fr.Y.Fill(uint16(10 + i))
		if fr.U != nil {
			fr.U.Fill(uint16(100 + i))
			fr.V.Fill(uint16(200 + i))
		}
		frames[i] = fr
	}
	return frames
}

func packed(t *testing.T, frames []*frame.Frame) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, fr := range frames {
		data, err := fr.Pack()
		require.NoError(t, err)
		buf.Write(data)
	}
	return buf.Bytes()
}

func plentyOfMemory() (uint64, error) {
	return 1 << 40, nil
}
