package implant

import (
	"fmt"

	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/types"
)

// Fit block layout, relative to the base label. Fit ships mirrored
// stems, so the right and left variants are separate rows and there
// are no range markers.
const (
	fitBase   types.Label = 60_750
	fitRight              = fitBase
	fitLeft               = fitBase + 7
	fitCut                = fitBase + 14
	fitHeadM4             = fitBase + 15
)

// Resection depth along the canal axis per size.
var fitCutDepth = [7]float64{-34.4, -36.5, -38.0, -39.5, -41.5, -43.4, -45.6}

// Planning offset per size.
var fitOffset = [7]float64{15.0, 16.1, 16.6, 17.1, 18.1, 19.0, 20.2}

var fit = mustBuild(newFit())

// Fit returns the Lima fit product line.
func Fit() *Product { return fit }

func newFit() *Product {
	p := &Product{
		Name:   "fit",
		Vendor: "Lima",
		Base:   fitBase,
		Families: []Family{
			{Name: "R", First: fitRight, Count: 7},
			{Name: "L", First: fitLeft, Count: 7},
		},
		CutPlane: fitCut,
		Heads:    headRow(fitHeadM4, 4),
		headTravel: map[types.Label]float64{
			fitHeadM4:     -8,
			fitHeadM4 + 1: -4,
			fitHeadM4 + 2: 0,
			fitHeadM4 + 3: 4.3,
		},
		DefaultStem:     fitRight + 6,
		DefaultStemLeft: fitLeft + 6,
		DefaultHead:     fitHeadM4 + 1,
		Anatomical:      true,

		headRot:   geom.Identity(),
		cutRot:    geom.Identity(),
		normalRot: geom.Identity(),
		cutBounds: geom.Box{Min: geom.V(-25, -25, -25), Max: geom.V(25, 25, 25)},

		shaftAngle: 45,

		points:  make(map[types.Label]RefPoints),
		display: make(map[types.Label]string),
		meshIDs: make(map[types.Label]string),
	}

	for _, f := range p.Families {
		for i := 0; i < f.Count; i++ {
			l := f.First + types.Label(i)
			p.points[l] = RefPoints{}
			p.display[l] = fmt.Sprintf("%d", i+1)
		}
	}
	for _, lbl := range []struct {
		l    types.Label
		name string
	}{
		{fitHeadM4, "-4"}, {fitHeadM4 + 1, "0"}, {fitHeadM4 + 2, "+4"}, {fitHeadM4 + 3, "+8"},
	} {
		p.display[lbl.l] = lbl.name
	}
	for i := 0; i < 7; i++ {
		p.meshIDs[fitRight+types.Label(i)] = fmt.Sprintf("4211_25_%d", 110+10*i)
		p.meshIDs[fitLeft+types.Label(i)] = fmt.Sprintf("4211_25_0%d", 10+10*i)
	}

	// The fit geometry runs along the canal axis, so every frame is a
	// per-size lookup instead of a reference point construction.
	p.headToStemFn = func(p *Product, stem, head types.Label) geom.Mat4 {
		return geom.TranslateXYZ(p.headTravel[head], 0, 0)
	}
	p.cutPlaneFn = func(p *Product, stem types.Label) geom.Plane {
		d := fitCutDepth[p.SizeOf(stem)]
		return geom.Plane{Origin: geom.V(d, 0, 0), Normal: geom.V(1, 0, 0)}
	}
	p.cutBoundsFn = func(p *Product, stem types.Label) geom.Box {
		return p.cutBounds.Translate(geom.V(fitCutDepth[p.SizeOf(stem)], 0, 0))
	}
	p.normalFn = func(p *Product, stem types.Label) geom.Mat4 {
		tilt := 5.0
		if f := p.mustFamily(stem); f.Name == "L" {
			tilt = -5.0
		}
		d := -fitCutDepth[p.SizeOf(stem)]
		return geom.RotY(4).
			Mul(geom.RotX(tilt)).
			Mul(geom.RotY(-45)).
			Mul(geom.RotX(90)).
			Mul(geom.TranslateXYZ(d, 0, 0))
	}
	p.offsetFn = func(p *Product, stem types.Label) geom.Vec3 {
		return geom.V(fitOffset[p.SizeOf(stem)], 0, 0)
	}
	return p
}
