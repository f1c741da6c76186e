package frame

import "encoding/binary"

func packPlanar(f *Format, dst []byte, y, u, v *Plane) {
	p := &f.plan
	putSamples(dst[:p.lumaBytes], y.Pix, p.sampleBytes, f.desc.ByteOrder)
	if !f.HasChroma() {
		return
	}
	putSamples(dst[p.uOffset:p.vOffset], u.Pix, p.sampleBytes, f.desc.ByteOrder)
	putSamples(dst[p.vOffset:p.size], v.Pix, p.sampleBytes, f.desc.ByteOrder)
}

func unpackPlanar(f *Format, src []byte, y, u, v *Plane) {
	p := &f.plan
	getSamples(y.Pix, src[:p.lumaBytes], p.sampleBytes, f.desc.ByteOrder)
	if !f.HasChroma() {
		return
	}
	getSamples(u.Pix, src[p.uOffset:p.vOffset], p.sampleBytes, f.desc.ByteOrder)
	getSamples(v.Pix, src[p.vOffset:p.size], p.sampleBytes, f.desc.ByteOrder)
}

// The chroma block of a semi-planar frame holds chromaW*chromaH pairs; even
// positions carry the first component of Packing, odd positions the second.
func packSemiPlanar(f *Format, dst []byte, y, u, v *Plane) {
	p := &f.plan
	putSamples(dst[:p.lumaBytes], y.Pix, p.sampleBytes, f.desc.ByteOrder)

	first, second := chromaPair(f, u, v)
	n := p.sampleBytes
	stride := 2 * n
	chroma := dst[p.lumaBytes:p.size]
	for i := range first.Pix {
		putSample(chroma[i*stride:], first.Pix[i], n, f.desc.ByteOrder)
		putSample(chroma[i*stride+n:], second.Pix[i], n, f.desc.ByteOrder)
	}
}

func unpackSemiPlanar(f *Format, src []byte, y, u, v *Plane) {
	p := &f.plan
	getSamples(y.Pix, src[:p.lumaBytes], p.sampleBytes, f.desc.ByteOrder)

	first, second := chromaPair(f, u, v)
	n := p.sampleBytes
	stride := 2 * n
	chroma := src[p.lumaBytes:p.size]
	for i := range first.Pix {
		first.Pix[i] = getSample(chroma[i*stride:], n, f.desc.ByteOrder)
		second.Pix[i] = getSample(chroma[i*stride+n:], n, f.desc.ByteOrder)
	}
}

func chromaPair(f *Format, u, v *Plane) (first, second *Plane) {
	if f.desc.Packing[0] == SampleV {
		return v, u
	}
	return u, v
}

func putSamples(dst []byte, src []uint16, n int, order binary.ByteOrder) {
	if n == 1 {
		for i, s := range src {
			dst[i] = uint8(s)
		}
		return
	}
	for i, s := range src {
		order.PutUint16(dst[2*i:], s)
	}
}

func getSamples(dst []uint16, src []byte, n int, order binary.ByteOrder) {
	if n == 1 {
		for i := range dst {
			dst[i] = uint16(src[i])
		}
		return
	}
	for i := range dst {
		dst[i] = order.Uint16(src[2*i:])
	}
}

func putSample(dst []byte, s uint16, n int, order binary.ByteOrder) {
	if n == 1 {
		dst[0] = uint8(s)
		return
	}
	order.PutUint16(dst, s)
}

func getSample(src []byte, n int, order binary.ByteOrder) uint16 {
	if n == 1 {
		return uint16(src[0])
	}
	return order.Uint16(src)
}
