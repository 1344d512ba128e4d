package implant

import (
	"fmt"

	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/types"
)

// basePlane is the untransformed resection plane every product starts
// from: the XZ plane through the origin.
var basePlane = geom.Plane{Normal: geom.V(0, 1, 0)}

// HeadToStem returns the transform placing the given modular head on a
// stem. The head sits on the neck axis, which runs from the neck point
// through the taper seat, displaced along it by the head's calibrated
// travel. Panics when stem is not a stem label or head is not a head
// label.
func (p *Product) HeadToStem(stem, head types.Label) geom.Mat4 {
	f := p.mustFamily(stem)
	if !p.IsHead(head) {
		panic(fmt.Sprintf("implant: label %d is not a %s head", head, p.Name))
	}
	if p.headToStemFn != nil {
		return p.headToStemFn(p, stem, head)
	}
	pts := p.points[stem]
	axis := pts.HeadSeat.Sub(pts.Neck).Unit()
	travel := p.headTravel[head] + p.headExtra[f.Name]
	seat := pts.HeadSeat.Add(axis.Scale(travel))
	return geom.Translate(seat).Mul(p.headRot)
}

// CutPlaneFor returns the neck resection plane for a stem. The plane
// is anchored at the stem's neck point with the product's resection
// orientation; collared rows shift it along the normal to clear the
// collar. Panics when stem is not a stem label.
func (p *Product) CutPlaneFor(stem types.Label) geom.Plane {
	f := p.mustFamily(stem)
	if p.cutPlaneFn != nil {
		return p.cutPlaneFn(p, stem)
	}
	m := geom.Translate(p.points[stem].Neck).Mul(p.cutRot)
	plane := basePlane.Transform(m)
	if p.collared[f.Name] {
		plane = plane.Offset(p.collarCutOffset)
	}
	return plane
}

// CutPlaneBounds returns the clipping box limiting the resection plane
// for display. Panics when stem is not a stem label.
func (p *Product) CutPlaneBounds(stem types.Label) geom.Box {
	p.mustFamily(stem)
	if p.cutBoundsFn != nil {
		return p.cutBoundsFn(p, stem)
	}
	if p.cutBoundsAtNeck {
		return p.cutBounds.Translate(p.points[stem].Neck)
	}
	return p.cutBounds
}

// NormalFrame returns the canal axis frame for a stem. Panics when
// stem is not a stem label.
func (p *Product) NormalFrame(stem types.Label) geom.Mat4 {
	p.mustFamily(stem)
	if p.normalFn != nil {
		return p.normalFn(p, stem)
	}
	return p.normalRot
}

// OffsetFF returns the femur-first planning offset vector for a stem.
// Panics when stem is not a stem label.
func (p *Product) OffsetFF(stem types.Label) geom.Vec3 {
	p.mustFamily(stem)
	if p.offsetFn != nil {
		return p.offsetFn(p, stem)
	}
	return p.offsetVec
}

// StemToStem returns the transform carrying the origin configuration's
// stem position over to the target configuration's stem, so a size or
// row change keeps the implant seated. Both configs must select stems
// of this product; panics otherwise.
func (p *Product) StemToStem(origin, target types.ImplantConfig) geom.Mat4 {
	return p.stemShift(origin.Stem, target.Stem)
}

// stemShift is the label-level stem reseating transform.
func (p *Product) stemShift(origin, target types.Label) geom.Mat4 {
	p.mustFamily(origin)
	p.mustFamily(target)
	if p.shiftFn != nil {
		return p.shiftFn(p, origin, target)
	}
	return geom.Translate(p.points[origin].Reference.Sub(p.points[target].Reference))
}
