package implant

import "github.com/orthoplan/stemplan/pkg/types"

// Family is one contiguous run of stem labels sharing a neck geometry,
// for example the standard or the lateralized offset row of a product
// line. Sizes inside a family are addressed by zero-based index.
type Family struct {
	Name   string      // Short row name from the vendor catalog, e.g. "STD".
	First  types.Label // Label of the smallest size.
	Count  int         // Number of sizes in the row.
	Marker types.Label // Range marker label, LabelNone when the product has none.
}

// At returns the stem label at the given size index. Indexes outside
// the row are clamped to the nearest valid size.
func (f *Family) At(i int) types.Label {
	if i < 0 {
		i = 0
	}
	if i >= f.Count {
		i = f.Count - 1
	}
	return f.First + types.Label(i)
}

// Last returns the largest stem label in the row.
func (f *Family) Last() types.Label {
	return f.First + types.Label(f.Count-1)
}

// Contains reports whether l is a stem label of this row.
func (f *Family) Contains(l types.Label) bool {
	return l >= f.First && l <= f.Last()
}

// IndexOf returns the zero-based size index of l, or -1 when l is not
// part of the row.
func (f *Family) IndexOf(l types.Label) int {
	if !f.Contains(l) {
		return -1
	}
	return int(l - f.First)
}
