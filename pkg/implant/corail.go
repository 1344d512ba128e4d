package implant

import (
	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/types"
)

// Corail block layout, relative to the base label. The anatomical and
// standard collar variants of each neck geometry are separate rows.
const (
	corailBase    types.Label = 160_090
	corailKHOA                = corailBase
	corailKS                  = corailBase + 10
	corailKA                  = corailBase + 21
	corailKHOS                = corailBase + 32
	corailKLA                 = corailBase + 42
	corailSTD125S             = corailBase + 52
	corailSTD125A             = corailBase + 56
	corailSNS                 = corailBase + 64
	corailSNA                 = corailBase + 68
	corailCut                 = corailBase + 76
	corailHeadM4              = corailBase + 77
	corailRangeKS             = corailBase + 81
)

var corailPointsKS = pointRow{
	neck: []geom.Vec3{
		geom.V(-11.07, 0, 11.07), geom.V(-11.57, 0, 11.57), geom.V(-12.32, 0, 12.32),
		geom.V(-13.07, 0, 13.07), geom.V(-13.8, 0, 13.8), geom.V(-14.44, 0, 14.44),
		geom.V(-15.07, 0, 15.07), geom.V(-15.82, 0, 15.82), geom.V(-16.57, 0, 16.57),
		geom.V(-17.57, 0, 17.57), geom.V(-18.57, 0, 18.57),
	},
	ref: []geom.Vec3{
		geom.V(-19.5, 0, 2.64), geom.V(-20.0, 0, 3.14), geom.V(-20.75, 0, 3.89),
		geom.V(-21.5, 0, 4.64), geom.V(-22.25, 0, 5.36), geom.V(-22.87, 0, 6.01),
		geom.V(-23.5, 0, 6.64), geom.V(-24.25, 0, 7.39), geom.V(-25.0, 0, 8.14),
		geom.V(-26.0, 0, 9.14), geom.V(-27.0, 0, 10.14),
	},
	seat: []geom.Vec3{
		geom.V(-38.29, 0, 38.29), geom.V(-38.79, 0, 38.79), geom.V(-39.54, 0, 39.54),
		geom.V(-40.29, 0, 40.29), geom.V(-41.03, 0, 41.03), geom.V(-41.67, 0, 41.67),
		geom.V(-42.29, 0, 42.29), geom.V(-43.04, 0, 43.04), geom.V(-43.79, 0, 43.79),
		geom.V(-44.78, 0, 44.78), geom.V(-45.79, 0, 45.79),
	},
}

var corailPointsKHO = pointRow{
	neck: []geom.Vec3{
		geom.V(-15.1, 0, 15.1), geom.V(-15.85, 0, 15.85), geom.V(-16.6, 0, 16.6),
		geom.V(-17.35, 0, 17.35), geom.V(-17.98, 0, 17.98), geom.V(-18.6, 0, 18.6),
		geom.V(-19.35, 0, 19.35), geom.V(-20.1, 0, 20.1), geom.V(-21.1, 0, 21.1),
		geom.V(-22.1, 0, 22.1),
	},
	ref: []geom.Vec3{
		geom.V(-20.0, 0, 10.21), geom.V(-20.75, 0, 10.96), geom.V(-21.5, 0, 11.71),
		geom.V(-22.25, 0, 12.46), geom.V(-22.87, 0, 13.08), geom.V(-23.5, 0, 13.71),
		geom.V(-24.25, 0, 14.46), geom.V(-25.0, 0, 15.21), geom.V(-26.0, 0, 16.21),
		geom.V(-27.0, 0, 17.21),
	},
	seat: []geom.Vec3{
		geom.V(-45.65, 0, 45.65), geom.V(-46.4, 0, 46.4), geom.V(-47.15, 0, 47.15),
		geom.V(-47.9, 0, 47.9), geom.V(-48.53, 0, 48.53), geom.V(-49.15, 0, 49.15),
		geom.V(-49.9, 0, 49.9), geom.V(-50.65, 0, 50.65), geom.V(-51.83, 0, 51.83),
		geom.V(-52.86, 0, 52.86),
	},
}

var corailPointsKLA = pointRow{
	neck: []geom.Vec3{
		geom.V(-12.62, 0, 8.84), geom.V(-13.37, 0, 9.36), geom.V(-14.12, 0, 9.89),
		geom.V(-14.86, 0, 10.4), geom.V(-15.5, 0, 10.85), geom.V(-16.12, 0, 11.29),
		geom.V(-16.87, 0, 11.81), geom.V(-17.62, 0, 12.34), geom.V(-18.58, 0, 13.01),
		geom.V(-19.59, 0, 13.72),
	},
	ref: []geom.Vec3{
		geom.V(-19.99, 0, 1.46), geom.V(-20.74, 0, 1.99), geom.V(-21.5, 0, 2.51),
		geom.V(-22.26, 0, 3.0), geom.V(-22.88, 0, 3.47), geom.V(-23.49, 0, 3.92),
		geom.V(-24.21, 0, 4.47), geom.V(-24.96, 0, 5.01), geom.V(-25.85, 0, 5.74),
		geom.V(-26.78, 0, 6.53),
	},
	seat: []geom.Vec3{
		geom.V(-45.59, 0, 31.92), geom.V(-46.35, 0, 32.45), geom.V(-47.09, 0, 32.98),
		geom.V(-47.83, 0, 33.49), geom.V(-48.46, 0, 33.93), geom.V(-49.08, 0, 34.37),
		geom.V(-49.83, 0, 34.89), geom.V(-50.58, 0, 35.41), geom.V(-51.78, 0, 36.26),
		geom.V(-52.79, 0, 36.97),
	},
}

var corailPointsSTD125A = pointRow{
	neck: []geom.Vec3{
		geom.V(-8.76, 0, 6.13), geom.V(-9.26, 0, 6.48), geom.V(-9.76, 0, 6.83),
		geom.V(-10.51, 0, 7.36), geom.V(-11.26, 0, 7.88), geom.V(-12.01, 0, 8.41),
		geom.V(-12.63, 0, 8.84), geom.V(-13.26, 0, 9.28),
	},
	ref: []geom.Vec3{
		geom.V(-19.0, 0, -4.11), geom.V(-19.5, 0, -3.76), geom.V(-20.0, 0, -3.41),
		geom.V(-20.75, 0, -2.89), geom.V(-21.5, 0, -2.36), geom.V(-22.25, 0, -1.84),
		geom.V(-22.87, 0, -1.4), geom.V(-23.5, 0, -0.96),
	},
	seat: []geom.Vec3{
		geom.V(-37.87, 0, 26.52), geom.V(-38.37, 0, 26.87), geom.V(-38.87, 0, 27.22),
		geom.V(-39.62, 0, 27.74), geom.V(-40.37, 0, 28.27), geom.V(-41.12, 0, 28.79),
		geom.V(-41.74, 0, 29.23), geom.V(-42.37, 0, 29.67),
	},
}

var corailPointsSNA = pointRow{
	neck: []geom.Vec3{
		geom.V(-10.21, 0, 10.21), geom.V(-10.71, 0, 10.71), geom.V(-11.21, 0, 11.21),
		geom.V(-11.96, 0, 11.96), geom.V(-12.71, 0, 12.71), geom.V(-13.46, 0, 13.46),
		geom.V(-14.09, 0, 14.09), geom.V(-14.71, 0, 14.71),
	},
	ref: []geom.Vec3{
		geom.V(-19.0, 0, 1.43), geom.V(-19.5, 0, 1.93), geom.V(-20.0, 0, 2.43),
		geom.V(-20.75, 0, 3.18), geom.V(-21.5, 0, 3.93), geom.V(-22.25, 0, 4.68),
		geom.V(-22.87, 0, 5.3), geom.V(-23.5, 0, 5.93),
	},
	seat: []geom.Vec3{
		geom.V(-32.49, 0, 32.49), geom.V(-32.99, 0, 32.99), geom.V(-33.49, 0, 33.49),
		geom.V(-34.24, 0, 34.24), geom.V(-34.99, 0, 34.99), geom.V(-35.74, 0, 35.74),
		geom.V(-36.36, 0, 36.36), geom.V(-36.99, 0, 36.99),
	},
}

// The standard collar short rows reuse the anatomical tables truncated
// to four sizes, except the SN neck point at the smallest size.
var corailPointsSNS = pointRow{
	neck: append([]geom.Vec3{geom.V(-10.22, 0, 10.22)}, corailPointsSNA.neck[1:4]...),
	ref:  corailPointsSNA.ref[:4],
	seat: corailPointsSNA.seat[:4],
}

var corailPointsSTD125S = pointRow{
	neck: corailPointsSTD125A.neck[:4],
	ref:  corailPointsSTD125A.ref[:4],
	seat: corailPointsSTD125A.seat[:4],
}

var corailPointRows = map[string]pointRow{
	"KS":       corailPointsKS,
	"KA":       corailPointsKS,
	"KHO_S":    corailPointsKHO,
	"KHO_A":    corailPointsKHO,
	"KLA":      corailPointsKLA,
	"STD125_S": corailPointsSTD125S,
	"STD125_A": corailPointsSTD125A,
	"SN_S":     corailPointsSNS,
	"SN_A":     corailPointsSNA,
}

// Size interoperability groups from the vendor sizing chart. Rows in
// the same group share size indexes; crossing groups shifts the index
// by the accumulated group distance.
var corailSizeGroup = map[string]int{
	"KS": 0, "KA": 0,
	"KHO_S": 1, "KHO_A": 1, "KLA": 1,
	"STD125_S": 2, "STD125_A": 2, "SN_S": 2, "SN_A": 2,
}

// corailGroupDelta gives the size index shift when moving from group a
// to group b.
var corailGroupDelta = [3][3]int{
	{0, -1, 1},
	{1, 0, 2},
	{-1, -2, 0},
}

// Catalog display prefixes and size name runs per row.
var corailDisplay = map[string]struct {
	prefix string
	sizes  []string
}{
	"KS":       {"KS 135 deg", corailSizes135},
	"KA":       {"KA 135 deg", corailSizes135},
	"KHO_S":    {"KHO S 135 deg", corailSizesKHO},
	"KHO_A":    {"KHO A 135 deg", corailSizesKHO},
	"KLA":      {"KLA 125 deg", corailSizesKHO},
	"STD125_S": {"STD S 125 deg", corailSizesShort[:4]},
	"STD125_A": {"STD A 125 deg", corailSizesShort},
	"SN_S":     {"SN S 135 deg", corailSizesShort[:4]},
	"SN_A":     {"SN A 135 deg", corailSizesShort},
}

var (
	corailSizes135   = []string{"8", "9", "10", "11", "12", "13", "14", "15", "16", "18", "20"}
	corailSizesKHO   = []string{"9", "10", "11", "12", "13", "14", "15", "16", "18", "20"}
	corailSizesShort = []string{"7", "8", "9", "10", "11", "12", "13", "14"}
)

var corailMeshes = map[string][]string{
	"KS": {
		"103427643_1", "103427644_1", "103427646_1", "103427648_1", "103427649_1",
		"103427650_1", "103427651_1", "103427652_1", "103427653_1", "103427654_1", "103427657_1",
	},
	"KA": {
		"103414240_1", "103414964_1", "103414966_1", "103414967_1", "103414968_1",
		"103414969_1", "103414970_1", "103414971_1", "103427630_1", "103427639_1", "103427658_1",
	},
	"KHO_S": {
		"103607083_1", "103607086_1", "103607087_1", "103607088_1", "103607091_1",
		"103607092_1", "103607093_1", "103607094_1", "103607095_1", "103607099_1",
	},
	"KHO_A": {
		"103550471_1", "103550472_1", "103550473_1", "103550474_1", "103550475_1",
		"103550476_1", "103550477_1", "103550478_1", "103550481_1", "103550482_1",
	},
	"KLA": {
		"103610427_1", "103610428_1", "103610429_1", "103610430_1", "103610431_1",
		"103610432_1", "103610433_1", "103610434_1", "103610435_1", "103610436_1",
	},
	"STD125_S": {"103548905_1", "103550468_1", "103550469_1", "103550470_1"},
	"STD125_A": {
		"103548903_1", "103550462_1", "103550463_1", "103550464_1",
		"103550908_1", "103550915_1", "103550917_1", "103550918_1",
	},
	"SN_S": {"103548906_1", "103550465_1", "103550466_1", "103550467_1"},
	"SN_A": {
		"103548904_1", "103550459_1", "103550460_1", "103550461_1",
		"103550919_1", "103550920_1", "103550921_1", "103550922_1",
	},
}

var corail = mustBuild(newCorail())

// Corail returns the Johnson & Johnson corail product line.
func Corail() *Product { return corail }

func newCorail() *Product {
	p := &Product{
		Name:   "corail",
		Vendor: "Johnson & Johnson",
		Base:   corailBase,
		Families: []Family{
			{Name: "KHO_A", First: corailKHOA, Count: 10, Marker: corailRangeKS + 3},
			{Name: "KS", First: corailKS, Count: 11, Marker: corailRangeKS},
			{Name: "KA", First: corailKA, Count: 11, Marker: corailRangeKS + 1},
			{Name: "KHO_S", First: corailKHOS, Count: 10, Marker: corailRangeKS + 2},
			{Name: "KLA", First: corailKLA, Count: 10, Marker: corailRangeKS + 4},
			{Name: "STD125_S", First: corailSTD125S, Count: 4, Marker: corailRangeKS + 5},
			{Name: "STD125_A", First: corailSTD125A, Count: 8, Marker: corailRangeKS + 6},
			{Name: "SN_S", First: corailSNS, Count: 4, Marker: corailRangeKS + 7},
			{Name: "SN_A", First: corailSNA, Count: 8, Marker: corailRangeKS + 8},
		},
		CutPlane: corailCut,
		Heads:    headRow(corailHeadM4, 4),
		headTravel: map[types.Label]float64{
			corailHeadM4:     -3.5,
			corailHeadM4 + 1: 0,
			corailHeadM4 + 2: 3.5,
			corailHeadM4 + 3: 7,
		},
		DefaultStem: corailKA + 5,
		DefaultHead: corailHeadM4 + 1,

		collared: map[string]bool{
			"KHO_A": true, "KA": true, "KLA": true, "STD125_A": true, "SN_A": true,
		},
		collarCutOffset: -0.1,

		headRot:   geom.Identity(),
		cutRot:    geom.RotY(-45).Mul(geom.RotX(90)),
		normalRot: geom.RotZ(180),
		cutBounds: geom.Box{Min: geom.V(-25, -25, -25), Max: geom.V(25, 25, 25)},

		shaftAngle:  45,
		shaftAngles: map[string]float64{"KLA": 55},

		similarity: make(map[familyPair]similarityRule),
		points:     make(map[types.Label]RefPoints),
		display:    make(map[types.Label]string),
		meshIDs:    make(map[types.Label]string),
	}

	// Planning offset follows the neck point projected through the
	// canal frame; only the lateral component is kept.
	p.offsetFn = func(p *Product, stem types.Label) geom.Vec3 {
		d := p.normalRot.ApplyVec(p.points[stem].Neck.Sub(geom.V(0, 0, -25)))
		return geom.V(d.X, 0, 0)
	}

	for _, f := range p.Families {
		row := corailPointRows[f.Name]
		disp := corailDisplay[f.Name]
		mesh := corailMeshes[f.Name]
		for i := 0; i < f.Count; i++ {
			l := f.First + types.Label(i)
			p.points[l] = RefPoints{Neck: row.neck[i], Reference: row.ref[i], HeadSeat: row.seat[i]}
			p.display[l] = disp.prefix + " " + disp.sizes[i]
			p.meshIDs[l] = mesh[i]
		}
	}

	for from, ga := range corailSizeGroup {
		for to, gb := range corailSizeGroup {
			if from == to || ga == gb {
				continue
			}
			p.similarity[familyPair{from: from, to: to}] = similarityRule{delta: corailGroupDelta[ga][gb]}
		}
	}
	return p
}
