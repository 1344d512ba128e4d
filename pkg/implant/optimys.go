package implant

import (
	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/types"
)

// Optimys block layout, relative to the base label.
const (
	optimysBase  types.Label = 130_500
	optimysSTD               = optimysBase
	optimysLAT               = optimysBase + 14
	optimysCut               = optimysBase + 28
	optimysHeadM4            = optimysBase + 29
	optimysRangeSTD          = optimysBase + 33
	optimysRangeLAT          = optimysBase + 34
)

// Head taper seat heights along the neck meridian, per size. The STD
// and LAT rows share sizes but sit on different meridians.
var optimysHeadTop = map[string][14]float64{
	"STD": {27.0, 28.05, 29.1, 30.15, 31.2, 32.25, 33.9, 35.05, 36.2, 38.25, 39.5, 40.75, 42.0, 43.25},
	"LAT": {31.0, 32.05, 33.1, 34.15, 35.2, 36.25, 37.9, 39.05, 40.2, 42.25, 43.5, 44.75, 46.0, 47.25},
}

// Meridian abscissa per row.
var optimysMeridianX = map[string]float64{"STD": -12.5, "LAT": -8.5}

var optimysMeshSTD = [14]string{
	"52_34_1165_50024772_V02", "52_34_1166_50028325_V03",
	"52_34_0191_10092331_V01", "52_34_0192_10092332_V01",
	"52_34_0193_10092333_V01", "52_34_0194_10092334_V01",
	"52_34_0195_10092335_V01", "52_34_0196_10092336_V01",
	"52_34_0197_10092337_V01", "52_34_0198_10092338_V01",
	"52_34_0199_10092339_V01", "52_34_0200_10092340_V01",
	"52_34_0211_10092351_V03", "52_34_0212_10092352_V03",
}

var optimysMeshLAT = [14]string{
	"52_34_1167_50028427_V02", "52_34_1168_50028426_V02",
	"52_34_0201_10092341_V01", "52_34_0202_10092342_V01",
	"52_34_0203_10092343_V01", "52_34_0204_10092344_V01",
	"52_34_0205_10092345_V01", "52_34_0206_10092346_V01",
	"52_34_0207_10092347_V01", "52_34_0208_10092348_V01",
	"52_34_0209_10092349_V01", "52_34_0210_10092350_V01",
	"52_34_0221_10092361_V03", "52_34_0222_10092362_V03",
}

// Catalog size names shared by both rows: XS then 0 through 12.
var optimysSizeNames = [14]string{"XS", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

var optimys = mustBuild(newOptimys())

// Optimys returns the Mathys optimys product line.
func Optimys() *Product { return optimys }

func newOptimys() *Product {
	p := &Product{
		Name:   "optimys",
		Vendor: "Mathys",
		Base:   optimysBase,
		Families: []Family{
			{Name: "STD", First: optimysSTD, Count: 14, Marker: optimysRangeSTD},
			{Name: "LAT", First: optimysLAT, Count: 14, Marker: optimysRangeLAT},
		},
		CutPlane: optimysCut,
		Heads:    headRow(optimysHeadM4, 4),
		headTravel: map[types.Label]float64{
			optimysHeadM4:     -8,
			optimysHeadM4 + 1: -4,
			optimysHeadM4 + 2: 0,
			optimysHeadM4 + 3: 4,
		},
		DefaultStem: optimysSTD + 6,
		DefaultHead: optimysHeadM4 + 1,

		headRot:         geom.RotZ(-45),
		cutRot:          geom.RotZ(-45),
		normalRot:       geom.RotX(90),
		cutBounds:       geom.Box{Min: geom.V(-30, -25, -25), Max: geom.V(30, 25, 25)},
		cutBoundsAtNeck: true,

		shaftAngle: 45,

		points:  make(map[types.Label]RefPoints),
		display: make(map[types.Label]string),
		meshIDs: make(map[types.Label]string),
	}

	// Both rows keep their reference points on a 45 degree meridian;
	// the published coordinates are the rotated meridian points. The
	// distal reference stays at the origin, so every size change
	// reseats as identity.
	tilt := geom.RotZ(-45)
	for _, f := range p.Families {
		x := optimysMeridianX[f.Name]
		tops := optimysHeadTop[f.Name]
		for i := 0; i < f.Count; i++ {
			l := f.First + types.Label(i)
			p.points[l] = RefPoints{
				Neck:     tilt.Apply(geom.V(x, 0, 0)),
				HeadSeat: tilt.Apply(geom.V(x, tops[i], 0)),
			}
			p.display[l] = f.Name + " " + optimysSizeNames[i]
		}
	}
	for i, id := range optimysMeshSTD {
		p.meshIDs[optimysSTD+types.Label(i)] = id
	}
	for i, id := range optimysMeshLAT {
		p.meshIDs[optimysLAT+types.Label(i)] = id
	}
	return p
}
