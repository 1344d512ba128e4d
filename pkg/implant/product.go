package implant

import (
	"errors"
	"fmt"

	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/types"
)

// RefPoints are the calibrated reference points of a single stem, in
// the stem's local coordinate system.
type RefPoints struct {
	Neck      geom.Vec3 // Neck resection reference (RES01 on the data sheets).
	Reference geom.Vec3 // Distal alignment reference (RES02).
	HeadSeat  geom.Vec3 // Head taper seat (TPR01).
}

// pointRow bundles the reference point tables of one stem row, indexed
// by size. Rows sharing a neck geometry reuse the same tables.
type pointRow struct {
	neck, ref, seat []geom.Vec3
}

// Product is one supported stem product line: its label block layout
// plus the calibration tables driving every geometric operation. All
// fields are populated by the per-product constructors in this
// package; a Product is immutable after construction.
type Product struct {
	Name   string      // Registry name, e.g. "optimys".
	Vendor string      // Manufacturer display name.
	Base   types.Label // First label of the product's block.

	Families []Family      // Stem rows in catalog order.
	CutPlane types.Label   // Resection plane label.
	Heads    []types.Label // Modular head labels, shortest neck first.

	// headTravel gives the signed travel along the neck axis for each
	// head label. headExtra adds a per-row correction on top of it.
	headTravel map[types.Label]float64
	headExtra  map[string]float64

	DefaultStem     types.Label // Stem preselected by the validator.
	DefaultStemLeft types.Label // Left-side override, LabelNone when sides share stems.
	DefaultHead     types.Label

	// Anatomical products have side-specific geometry, so a validated
	// config carries the requested side as the implant side.
	Anatomical bool

	collared        map[string]bool // Rows carrying a resection collar.
	collarCutOffset float64         // Plane shift along its normal for collared rows.

	headRot   geom.Mat4 // Head orientation relative to the stem.
	cutRot    geom.Mat4 // Resection plane orientation.
	normalRot geom.Mat4 // Canal axis frame.

	cutBounds       geom.Box // Resection clipping box.
	cutBoundsAtNeck bool     // Box is translated to the neck point when set.
	offsetVec       geom.Vec3

	shaftAngle  float64            // Distal shaft angle in degrees.
	shaftAngles map[string]float64 // Per-row overrides.

	points     map[types.Label]RefPoints
	similarity map[familyPair]similarityRule
	display    map[types.Label]string
	meshIDs    map[types.Label]string

	// Hooks for product lines whose geometry deviates from the
	// table-driven defaults. Nil means use the default.
	headToStemFn func(p *Product, stem, head types.Label) geom.Mat4
	cutPlaneFn   func(p *Product, stem types.Label) geom.Plane
	cutBoundsFn  func(p *Product, stem types.Label) geom.Box
	normalFn     func(p *Product, stem types.Label) geom.Mat4
	offsetFn     func(p *Product, stem types.Label) geom.Vec3
	shiftFn      func(p *Product, origin, target types.Label) geom.Mat4
}

// Calibration table errors reported by validate.
var (
	ErrNoFamilies      = errors.New("product has no stem families")
	ErrFamilyOverlap   = errors.New("stem families overlap")
	ErrDefaultNotStem  = errors.New("default stem is not a stem label")
	ErrDefaultNotHead  = errors.New("default head is not a head label")
	ErrUnknownFamily   = errors.New("similarity rule names unknown family")
	ErrPointsWrongSlot = errors.New("reference points keyed by non-stem label")
)

// validate checks the compiled-in tables for internal consistency.
func (p *Product) validate() error {
	if len(p.Families) == 0 {
		return ErrNoFamilies
	}
	for i := range p.Families {
		for j := i + 1; j < len(p.Families); j++ {
			a, b := &p.Families[i], &p.Families[j]
			if a.Contains(b.First) || b.Contains(a.First) {
				return fmt.Errorf("%w: %s and %s", ErrFamilyOverlap, a.Name, b.Name)
			}
		}
	}
	if !p.IsStem(p.DefaultStem) {
		return fmt.Errorf("%w: %d", ErrDefaultNotStem, p.DefaultStem)
	}
	if p.DefaultStemLeft.IsSet() && !p.IsStem(p.DefaultStemLeft) {
		return fmt.Errorf("%w: %d", ErrDefaultNotStem, p.DefaultStemLeft)
	}
	if !p.IsHead(p.DefaultHead) {
		return fmt.Errorf("%w: %d", ErrDefaultNotHead, p.DefaultHead)
	}
	for pair := range p.similarity {
		if _, ok := p.FamilyByName(pair.from); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownFamily, pair.from)
		}
		if _, ok := p.FamilyByName(pair.to); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownFamily, pair.to)
		}
	}
	for l := range p.points {
		if !p.IsStem(l) {
			return fmt.Errorf("%w: %d", ErrPointsWrongSlot, l)
		}
	}
	return nil
}

// mustBuild validates a constructed product and panics on a malformed
// table. The tables are compiled in, so a failure here is a programming
// error, not an input error.
func mustBuild(p *Product) *Product {
	if err := p.validate(); err != nil {
		panic(fmt.Sprintf("implant: bad %s calibration: %v", p.Name, err))
	}
	return p
}

// IsStem reports whether l is a stem label of this product.
func (p *Product) IsStem(l types.Label) bool {
	_, ok := p.FamilyOf(l)
	return ok
}

// IsHead reports whether l is a modular head label of this product.
func (p *Product) IsHead(l types.Label) bool {
	for _, h := range p.Heads {
		if h == l {
			return true
		}
	}
	return false
}

// IsCutPlane reports whether l is the product's resection plane label.
func (p *Product) IsCutPlane(l types.Label) bool {
	return l == p.CutPlane
}

// IsMarker reports whether l is one of the product's range markers.
func (p *Product) IsMarker(l types.Label) bool {
	for i := range p.Families {
		if m := p.Families[i].Marker; m.IsSet() && m == l {
			return true
		}
	}
	return false
}

// Contains reports whether l belongs to this product's label block in
// any role.
func (p *Product) Contains(l types.Label) bool {
	return p.IsStem(l) || p.IsHead(l) || p.IsCutPlane(l) || p.IsMarker(l)
}

// FamilyOf returns the stem row containing l.
func (p *Product) FamilyOf(l types.Label) (*Family, bool) {
	for i := range p.Families {
		if p.Families[i].Contains(l) {
			return &p.Families[i], true
		}
	}
	return nil, false
}

// FamilyByName returns the stem row with the given catalog name.
func (p *Product) FamilyByName(name string) (*Family, bool) {
	for i := range p.Families {
		if p.Families[i].Name == name {
			return &p.Families[i], true
		}
	}
	return nil, false
}

// FamilyByMarker returns the stem row announced by the given range
// marker label.
func (p *Product) FamilyByMarker(marker types.Label) (*Family, bool) {
	for i := range p.Families {
		if m := p.Families[i].Marker; m.IsSet() && m == marker {
			return &p.Families[i], true
		}
	}
	return nil, false
}

// SizeOf returns the zero-based size index of a stem label within its
// row. It panics when l is not a stem label.
func (p *Product) SizeOf(l types.Label) int {
	f := p.mustFamily(l)
	return f.IndexOf(l)
}

// Next returns the next larger stem in the same row. At the top of the
// row the input is returned unchanged, so repeated stepping is safe.
// Panics when l is not a stem label.
func (p *Product) Next(l types.Label) types.Label {
	f := p.mustFamily(l)
	if l == f.Last() {
		return l
	}
	return l + 1
}

// Prev returns the next smaller stem in the same row, or the input
// unchanged at the bottom of the row. Panics when l is not a stem
// label.
func (p *Product) Prev(l types.Label) types.Label {
	f := p.mustFamily(l)
	if l == f.First {
		return l
	}
	return l - 1
}

// mustFamily resolves the row of a stem label, panicking on labels
// outside the stem ranges. Callers passing head, marker or cut plane
// labels here have broken the labelling contract.
func (p *Product) mustFamily(l types.Label) *Family {
	f, ok := p.FamilyOf(l)
	if !ok {
		panic(fmt.Sprintf("implant: label %d is not a %s stem", l, p.Name))
	}
	return f
}

// Points returns the calibrated reference points for a stem. Stems
// inside a known row without a calibration entry yield the zero
// points. Panics when l is not a stem label.
func (p *Product) Points(l types.Label) RefPoints {
	p.mustFamily(l)
	return p.points[l]
}

// DisplayName returns the catalog display name for a label, or the
// empty string when no name is recorded.
func (p *Product) DisplayName(l types.Label) string {
	return p.display[l]
}

// MeshID returns the vendor mesh resource identifier for a label, or
// the empty string when the component has no mesh.
func (p *Product) MeshID(l types.Label) string {
	return p.meshIDs[l]
}

// ShaftAngle returns the distal shaft angle in degrees for a stem.
// Panics when l is not a stem label.
func (p *Product) ShaftAngle(l types.Label) float64 {
	f := p.mustFamily(l)
	if a, ok := p.shaftAngles[f.Name]; ok {
		return a
	}
	return p.shaftAngle
}

// headRow returns n consecutive head labels starting at first.
func headRow(first types.Label, n int) []types.Label {
	heads := make([]types.Label, n)
	for i := range heads {
		heads[i] = first + types.Label(i)
	}
	return heads
}

// Stems returns all stem labels of the product in catalog order.
func (p *Product) Stems() []types.Label {
	var out []types.Label
	for i := range p.Families {
		f := &p.Families[i]
		for s := 0; s < f.Count; s++ {
			out = append(out, f.First+types.Label(s))
		}
	}
	return out
}
