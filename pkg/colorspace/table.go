package colorspace

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Specification names an ITU-R recommendation.
type Specification string

const (
	BT601  Specification = "bt601"
	BT709  Specification = "bt709"
	BT2020 Specification = "bt2020"
	BT2100 Specification = "bt2100"
)

// Range selects limited (studio) or full value range.
type Range string

const (
	Limited Range = "limited"
	Full    Range = "full"
)

// ErrUnknownColorspace is returned by Table.Lookup for an unregistered key.
var ErrUnknownColorspace = errors.New("colorspace: unknown colorspace")

// Key identifies one entry of a Table.
type Key struct {
	Specification Specification
	Range         Range
}

func (k Key) String() string {
	return fmt.Sprintf("(%s, %s)", k.Specification, k.Range)
}

// Table maps (specification, range) to a Colorspace. It is read-only once
// built.
type Table struct {
	entries map[Key]*Colorspace
}

// Matrix coefficients, see ITU-R BT.601, BT.709, BT.2020 and BT.2100.
var (
	coefficientsBT601  = Coefficients{A: 0.299, B: 0.587, C: 0.114, D: 1.772, E: 1.402}
	coefficientsBT709  = Coefficients{A: 0.2126, B: 0.7152, C: 0.0722, D: 1.8556, E: 1.5748}
	coefficientsBT2020 = Coefficients{A: 0.2627, B: 0.6780, C: 0.0593, D: 1.8814, E: 1.4746}
)

// 8-bit code ranges
var (
	limitedY    = [2]int{16, 235}
	limitedCbCr = [2]int{16, 240}
	fullY       = [2]int{0, 255}
	fullCbCr    = [2]int{1, 255}
)

const guardMargin = 1

// NewTable builds the table of the four supported specifications in limited
// and full range.
func NewTable() *Table {
	t := &Table{entries: make(map[Key]*Colorspace)}
	for spec, c := range map[Specification]Coefficients{
		BT601:  coefficientsBT601,
		BT709:  coefficientsBT709,
		BT2020: coefficientsBT2020,
		BT2100: coefficientsBT2020,
	} {
		t.entries[Key{spec, Limited}] = New(c, limitedY, limitedCbCr, guardMargin)
		t.entries[Key{spec, Full}] = New(c, fullY, fullCbCr, guardMargin)
	}
	return t
}

// DefaultTable is built at package initialisation.
var DefaultTable = NewTable()

// Lookup returns the colorspace for spec and rng.
func (t *Table) Lookup(spec Specification, rng Range) (*Colorspace, error) {
	c, ok := t.entries[Key{spec, rng}]
	if !ok {
		return nil, fmt.Errorf("%w: (%s, %s), expected one of %s", ErrUnknownColorspace, spec, rng, t)
	}
	return c, nil
}

// Keys returns all keys in a stable order.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		if c := strings.Compare(string(a.Specification), string(b.Specification)); c != 0 {
			return c
		}
		return strings.Compare(string(a.Range), string(b.Range))
	})
	return keys
}

func (t *Table) String() string {
	keys := t.Keys()
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = k.String()
	}
	return strings.Join(s, ", ")
}

// Lookup resolves spec and rng in DefaultTable.
func Lookup(spec Specification, rng Range) (*Colorspace, error) {
	return DefaultTable.Lookup(spec, rng)
}
