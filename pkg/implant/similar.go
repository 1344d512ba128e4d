package implant

import (
	"fmt"

	"github.com/orthoplan/stemplan/pkg/types"
)

// familyPair keys a similarity rule by source and target row name.
type familyPair struct {
	from, to string
}

// similarityRule describes how sizes of one stem row correspond to
// sizes of another. The vendor sizing charts express this as a fixed
// index shift, occasionally corrected by explicit per-size remaps, with
// some sizes declared to have no counterpart at all.
type similarityRule struct {
	delta   int          // Index shift applied when no remap entry matches.
	remap   map[int]int  // Per-size index overrides.
	noMatch map[int]bool // Source sizes without a counterpart.
}

// Similar maps a stem label onto the row announced by the given range
// marker. A stem already in the target row maps to itself. Sizes the
// vendor chart declares incomparable come back unchanged; everything
// else is shifted per the chart and clamped into the target row.
// Panics when stem is not a stem label or marker is not a range marker
// of this product.
func (p *Product) Similar(stem, marker types.Label) types.MapResult {
	src := p.mustFamily(stem)
	tgt, ok := p.FamilyByMarker(marker)
	if !ok {
		panic(fmt.Sprintf("implant: label %d is not a %s range marker", marker, p.Name))
	}
	return p.mapInto(stem, src, tgt)
}

// mapInto applies the similarity rule carrying a stem from row src to
// row tgt.
func (p *Product) mapInto(stem types.Label, src, tgt *Family) types.MapResult {
	if src.Name == tgt.Name {
		return types.Mapped(stem)
	}

	idx := src.IndexOf(stem)
	rule := p.similarity[familyPair{from: src.Name, to: tgt.Name}]
	if rule.noMatch[idx] {
		return types.Unchanged(stem)
	}
	if mapped, ok := rule.remap[idx]; ok {
		idx = mapped
	} else {
		idx += rule.delta
	}
	return types.Mapped(tgt.At(idx))
}

// mapIntoNamed is mapInto addressed by target row name, for internal
// cross-row geometry that chains through intermediate rows.
func (p *Product) mapIntoNamed(stem types.Label, target string) types.Label {
	src := p.mustFamily(stem)
	tgt, _ := p.FamilyByName(target)
	return p.mapInto(stem, src, tgt).Label
}
