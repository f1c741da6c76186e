package frame

import "encoding/binary"

const v210Mask = 0x3ff

// A v210 group is four little-endian words holding six luma and three samples
// of each chroma component:
//
//	word0: V0 << 20 | Y0 << 10 | U0
//	word1: Y2 << 20 | U1 << 10 | Y1
//	word2: U2 << 20 | Y3 << 10 | V1
//	word3: Y5 << 20 | V2 << 10 | Y4
//
// Groups follow each other in raster order of the luma plane.

func packV210(f *Format, dst []byte, y, u, v *Plane) {
	le := binary.LittleEndian
	for g := 0; g < f.plan.groups; g++ {
		ys := y.Pix[6*g : 6*g+6 : 6*g+6]
		us := u.Pix[3*g : 3*g+3 : 3*g+3]
		vs := v.Pix[3*g : 3*g+3 : 3*g+3]
		w := dst[v210GroupBytes*g : v210GroupBytes*(g+1)]

		le.PutUint32(w[0:], v210Word(vs[0], ys[0], us[0]))
		le.PutUint32(w[4:], v210Word(ys[2], us[1], ys[1]))
		le.PutUint32(w[8:], v210Word(us[2], ys[3], vs[1]))
		le.PutUint32(w[12:], v210Word(ys[5], vs[2], ys[4]))
	}
}

func unpackV210(f *Format, src []byte, y, u, v *Plane) {
	le := binary.LittleEndian
	for g := 0; g < f.plan.groups; g++ {
		ys := y.Pix[6*g : 6*g+6 : 6*g+6]
		us := u.Pix[3*g : 3*g+3 : 3*g+3]
		vs := v.Pix[3*g : 3*g+3 : 3*g+3]
		w := src[v210GroupBytes*g : v210GroupBytes*(g+1)]

		vs[0], ys[0], us[0] = v210Fields(le.Uint32(w[0:]))
		ys[2], us[1], ys[1] = v210Fields(le.Uint32(w[4:]))
		us[2], ys[3], vs[1] = v210Fields(le.Uint32(w[8:]))
		ys[5], vs[2], ys[4] = v210Fields(le.Uint32(w[12:]))
	}
}

func v210Word(hi, mid, lo uint16) uint32 {
	return (uint32(hi)&v210Mask)<<20 | (uint32(mid)&v210Mask)<<10 | uint32(lo)&v210Mask
}

func v210Fields(w uint32) (hi, mid, lo uint16) {
	return uint16(w >> 20 & v210Mask), uint16(w >> 10 & v210Mask), uint16(w & v210Mask)
}
