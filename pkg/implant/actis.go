package implant

import (
	"strconv"

	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/types"
)

// Actis block layout, relative to the base label.
const (
	actisBase  types.Label = 161_340
	actisSTD               = actisBase
	actisHO                = actisBase + 13
	actisCut               = actisBase + 26
	actisHeadM4            = actisBase + 27
	actisRangeSTD          = actisBase + 31
	actisRangeHO           = actisBase + 32
)

var actisPointRows = map[string]pointRow{
	"STD": {
		neck: []geom.Vec3{
			geom.V(11.94, 0, 10.02), geom.V(12.47, 0, 10.46), geom.V(13.27, 0, 11.14),
			geom.V(13.05, 0, 10.95), geom.V(13.56, 0, 11.38), geom.V(13.58, 0, 11.40),
			geom.V(14.12, 0, 11.85), geom.V(14.14, 0, 11.87), geom.V(14.68, 0, 12.32),
			geom.V(14.70, 0, 12.34), geom.V(15.29, 0, 12.83), geom.V(15.64, 0, 13.12),
			geom.V(16.04, 0, 13.46),
		},
		ref: []geom.Vec3{
			geom.V(20.01, 0, 3.17), geom.V(21.01, 0, 3.30), geom.V(21.81, 0, 3.98),
			geom.V(22.51, 0, 3.01), geom.V(23.30, 0, 3.21), geom.V(24.10, 0, 2.57),
			geom.V(24.81, 0, 2.89), geom.V(25.61, 0, 2.25), geom.V(26.31, 0, 2.57),
			geom.V(27.11, 0, 1.93), geom.V(27.91, 0, 2.24), geom.V(28.61, 0, 2.24),
			geom.V(29.41, 0, 2.24),
		},
		seat: []geom.Vec3{
			geom.V(36.29, 0, 30.45), geom.V(36.44, 0, 30.58), geom.V(38.44, 0, 32.26),
			geom.V(38.24, 0, 32.09), geom.V(39.85, 0, 33.44), geom.V(39.66, 0, 33.28),
			geom.V(41.66, 0, 34.96), geom.V(41.66, 0, 34.96), geom.V(43.66, 0, 36.64),
			geom.V(43.66, 0, 36.64), geom.V(45.66, 0, 38.32), geom.V(45.66, 0, 38.32),
			geom.V(45.66, 0, 38.32),
		},
	},
	"HO": {
		neck: []geom.Vec3{
			geom.V(15.10, 0, 12.67), geom.V(15.47, 0, 12.98), geom.V(16.27, 0, 13.65),
			geom.V(16.05, 0, 13.46), geom.V(17.57, 0, 14.74), geom.V(17.58, 0, 14.76),
			geom.V(18.12, 0, 15.21), geom.V(18.14, 0, 15.22), geom.V(18.68, 0, 15.68),
			geom.V(18.70, 0, 15.69), geom.V(19.29, 0, 16.19), geom.V(19.64, 0, 16.48),
			geom.V(20.04, 0, 16.82),
		},
		ref: []geom.Vec3{
			geom.V(20.21, 0, 8.39), geom.V(21.01, 0, 8.33), geom.V(21.81, 0, 9.01),
			geom.V(22.51, 0, 8.04), geom.V(23.31, 0, 9.92), geom.V(24.11, 0, 9.28),
			geom.V(24.82, 0, 9.59), geom.V(25.61, 0, 8.96), geom.V(26.31, 0, 9.28),
			geom.V(27.11, 0, 8.64), geom.V(27.91, 0, 8.96), geom.V(28.61, 0, 8.96),
			geom.V(29.41, 0, 8.96),
		},
		seat: []geom.Vec3{
			geom.V(42.44, 0, 35.61), geom.V(42.44, 0, 35.61), geom.V(44.44, 0, 37.29),
			geom.V(44.24, 0, 37.12), geom.V(47.85, 0, 40.15), geom.V(47.66, 0, 39.99),
			geom.V(49.66, 0, 41.67), geom.V(49.66, 0, 41.67), geom.V(51.66, 0, 43.35),
			geom.V(51.66, 0, 43.35), geom.V(53.66, 0, 45.03), geom.V(53.66, 0, 45.03),
			geom.V(53.66, 0, 45.03),
		},
	},
}

var actisMeshes = map[string][]string{
	"STD": {
		"103794036 Rev 1", "103533729_1", "103534115_1", "103534118_1", "103534120_1",
		"103534121_1", "103534123_1", "103534124_1", "103534125_1", "103534127_1",
		"103534129_1", "103534132_1", "103534133_1",
	},
	"HO": {
		"103794037 Rev 1", "103534134_1", "103534135_1", "103534138_1", "103534139_1",
		"103534144_1", "103534146_1", "103534147_1", "103534972_1", "103534973_1",
		"103534974_1", "103534976_1", "103534977_1",
	},
}

var actisDisplayPrefix = map[string]string{"STD": "COLLARED STD", "HO": "COLLARED HIGH"}

var actis = mustBuild(newActis())

// Actis returns the Johnson & Johnson actis product line.
func Actis() *Product { return actis }

func newActis() *Product {
	p := &Product{
		Name:   "actis",
		Vendor: "Johnson & Johnson",
		Base:   actisBase,
		Families: []Family{
			{Name: "STD", First: actisSTD, Count: 13, Marker: actisRangeSTD},
			{Name: "HO", First: actisHO, Count: 13, Marker: actisRangeHO},
		},
		CutPlane: actisCut,
		Heads:    headRow(actisHeadM4, 4),
		headTravel: map[types.Label]float64{
			actisHeadM4:     -3.5,
			actisHeadM4 + 1: 0,
			actisHeadM4 + 2: 3.5,
			actisHeadM4 + 3: 7,
		},
		DefaultStem: actisSTD + 6,
		DefaultHead: actisHeadM4 + 1,
		Anatomical:  true,

		headRot:         geom.Identity(),
		cutRot:          geom.RotY(40).Mul(geom.RotX(90)),
		normalRot:       geom.Identity(),
		cutBounds:       geom.Box{Min: geom.V(-50, -25, -25), Max: geom.V(50, 25, 25)},
		cutBoundsAtNeck: true,
		offsetVec:       geom.V(15, 0, 5),

		shaftAngle: 45,

		points:  make(map[types.Label]RefPoints),
		display: make(map[types.Label]string),
		meshIDs: make(map[types.Label]string),
	}

	for _, f := range p.Families {
		row := actisPointRows[f.Name]
		mesh := actisMeshes[f.Name]
		for i := 0; i < f.Count; i++ {
			l := f.First + types.Label(i)
			p.points[l] = RefPoints{Neck: row.neck[i], Reference: row.ref[i], HeadSeat: row.seat[i]}
			p.display[l] = actisDisplayPrefix[f.Name] + " " + strconv.Itoa(i)
			p.meshIDs[l] = mesh[i]
		}
	}
	return p
}
