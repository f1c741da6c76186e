// Package prop describes the properties of a raw video stream.
package prop

import (
	"fmt"
	"reflect"

	"github.com/pion/yuvio/pkg/colorspace"
	"github.com/pion/yuvio/pkg/frame"
)

// Video represents the properties needed to interpret a raw video stream:
// frame dimensions, pixel format and the colorspace of its samples.
type Video struct {
	Width, Height int
	PixelFormat   string
	Specification colorspace.Specification
	Range         colorspace.Range
}

// Defaults returns the properties assumed for anything left unset.
func Defaults() Video {
	return Video{
		PixelFormat:   frame.FormatYUV420P,
		Specification: colorspace.BT709,
		Range:         colorspace.Limited,
	}
}

// Merge merges all the field values from o to p, except zero values.
func (p *Video) Merge(o Video) {
	rp := reflect.ValueOf(p).Elem()
	ro := reflect.ValueOf(o)

	for i := 0; i < rp.NumField(); i++ {
		fieldB := ro.Field(i)
		if fieldB.IsZero() {
			continue
		}
		rp.Field(i).Set(fieldB)
	}
}

// WithDefaults returns p with every unset field taken from Defaults.
func (p Video) WithDefaults() Video {
	v := Defaults()
	v.Merge(p)
	return v
}

// Format resolves the pixel format in reg and binds it to the dimensions.
func (p Video) Format(reg *frame.Registry) (*frame.Format, error) {
	if reg == nil {
		reg = frame.DefaultRegistry
	}
	return reg.New(p.PixelFormat, p.Width, p.Height)
}

// Colorspace resolves the (specification, range) pair in t.
func (p Video) Colorspace(t *colorspace.Table) (*colorspace.Colorspace, error) {
	if t == nil {
		t = colorspace.DefaultTable
	}
	return t.Lookup(p.Specification, p.Range)
}

func (p Video) String() string {
	return fmt.Sprintf("%dx%d %s %s/%s", p.Width, p.Height, p.PixelFormat, p.Specification, p.Range)
}
