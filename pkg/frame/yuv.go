package frame

// Packed 4:2:2 frames are a sequence of 4-byte groups, each covering two
// horizontally adjacent pixels. Packing names the sample in every byte slot.

func packPacked422(f *Format, dst []byte, y, u, v *Plane) {
	order := f.desc.Packing
	fast := 0
	for slow := 0; slow < f.plan.groups; slow++ {
		group := dst[4*slow : 4*slow+4 : 4*slow+4]
		for i, s := range order {
			switch s {
			case SampleY0:
				group[i] = uint8(y.Pix[fast])
			case SampleY1:
				group[i] = uint8(y.Pix[fast+1])
			case SampleU:
				group[i] = uint8(u.Pix[slow])
			case SampleV:
				group[i] = uint8(v.Pix[slow])
			}
		}
		fast += 2
	}
}

func unpackPacked422(f *Format, src []byte, y, u, v *Plane) {
	order := f.desc.Packing
	fast := 0
	for slow := 0; slow < f.plan.groups; slow++ {
		group := src[4*slow : 4*slow+4 : 4*slow+4]
		for i, s := range order {
			switch s {
			case SampleY0:
				y.Pix[fast] = uint16(group[i])
			case SampleY1:
				y.Pix[fast+1] = uint16(group[i])
			case SampleU:
				u.Pix[slow] = uint16(group[i])
			case SampleV:
				v.Pix[slow] = uint16(group[i])
			}
		}
		fast += 2
	}
}
