package implant

import (
	"fmt"

	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/types"
)

// Amistem block layout, relative to the base label. The collarless
// rows come first, the short-neck (SN) revisions after.
const (
	amistemBase  types.Label = 100_800
	amistemSTD               = amistemBase
	amistemLAT               = amistemBase + 11
	amistemSTDSN             = amistemBase + 20
	amistemLATSN             = amistemBase + 31
	amistemCut               = amistemBase + 40
	amistemHeadM4            = amistemBase + 41
	amistemRange             = amistemBase + 46
)

// Neck and head seat points lie on the 45 degree meridian through the
// YZ plane; the tables carry the (y, z) pair per size.
var amistemNecks = map[string][][2]float64{
	"STD": {
		{14.52, 14.52}, {14.78, 14.78}, {15.49, 15.49}, {16.19, 16.19}, {16.9, 16.9},
		{17.54, 17.54}, {18.17, 18.17}, {18.8, 18.8}, {19.37, 19.37}, {20.07, 20.07}, {20.78, 20.78},
	},
	"LAT": {
		{13.99, 10.54}, {14.7, 11.08}, {15.4, 11.61}, {16.35, 12.32}, {16.76, 12.63},
		{17.38, 13.1}, {17.88, 13.55}, {18.59, 14.01}, {19.2, 14.47},
	},
	"STD_SN": {
		{14.51, 14.51}, {14.77, 14.77}, {15.48, 15.48}, {16.19, 16.19}, {16.9, 16.9},
		{17.53, 17.53}, {18.17, 18.17}, {18.8, 18.8}, {19.36, 19.36}, {20.07, 20.07}, {20.78, 20.78},
	},
	"LAT_SN": {
		{13.99, 10.54}, {14.7, 11.08}, {15.4, 11.61}, {16.35, 12.32}, {16.76, 12.63},
		{17.38, 13.1}, {17.98, 13.55}, {18.59, 14.01}, {19.2, 14.47},
	},
}

var amistemSeats = map[string][][2]float64{
	"STD": {
		{41.5, 41.5}, {41.95, 41.95}, {43.19, 43.19}, {44.44, 44.44}, {45.7, 45.7},
		{46.84, 46.84}, {48.0, 48.0}, {49.18, 49.18}, {50.25, 50.25}, {51.48, 51.48}, {52.87, 52.87},
	},
	"LAT": {
		{43.73, 32.96}, {45.13, 34.01}, {46.54, 35.07}, {47.94, 36.13}, {49.3, 37.15},
		{50.61, 38.14}, {51.91, 39.12}, {53.26, 40.13}, {54.41, 41.0},
	},
	"STD_SN": {
		{37.96, 37.96}, {38.42, 38.42}, {39.65, 39.65}, {40.91, 40.91}, {42.16, 42.16},
		{43.3, 43.3}, {44.46, 44.46}, {45.64, 45.64}, {46.72, 46.72}, {47.94, 47.94}, {49.33, 49.33},
	},
	"LAT_SN": {
		{43.73, 32.96}, {45.13, 34.01}, {45.64, 35.07}, {47.94, 36.13}, {49.3, 37.15},
		{50.61, 38.14}, {51.91, 39.12}, {53.26, 40.13}, {54.41, 41.0},
	},
}

// Lateralization shifts along Z between the standard and lateralized
// rows, keyed by source size. Sizes without an entry shift by zero.
var (
	amistemSTDToLAT = map[int]float64{
		1: 5.89, 2: 6.03, 3: 6.22, 4: 6.39, 5: 6.55, 6: 6.71, 7: 6.85, 8: 7.0, 9: 7.26,
	}
	amistemLATToSTD = map[int]float64{
		0: 5.89, 1: 6.03, 2: 6.22, 3: 6.39, 4: 6.55, 5: 6.71, 6: 6.85, 7: 7.0, 8: 7.26,
	}
	amistemSNToLATSN = map[int]float64{
		1: 5.01, 2: 5.19, 3: 5.38, 4: 5.58, 5: 5.69, 6: 5.87, 7: 6.07, 8: 6.13, 9: 6.48,
	}
	amistemLATSNToSN = map[int]float64{
		0: 5.01, 1: 5.19, 2: 5.38, 3: 5.58, 4: 5.69, 5: 5.87, 6: 6.07, 7: 6.13, 8: 6.48,
	}
)

// Head travel step along the neck axis. The lateralized collarless row
// carries an extra correction on top of the per-head travel.
const (
	amistemHeadStep      = 3.5355
	amistemLATCorrection = 0.9 + amistemHeadStep
)

var amistem = mustBuild(newAmistem())

// Amistem returns the Medacta amistem product line.
func Amistem() *Product { return amistem }

func newAmistem() *Product {
	p := &Product{
		Name:   "amistem",
		Vendor: "Medacta",
		Base:   amistemBase,
		Families: []Family{
			{Name: "STD", First: amistemSTD, Count: 11, Marker: amistemRange},
			{Name: "LAT", First: amistemLAT, Count: 9, Marker: amistemRange + 1},
			{Name: "STD_SN", First: amistemSTDSN, Count: 11, Marker: amistemRange + 2},
			{Name: "LAT_SN", First: amistemLATSN, Count: 9, Marker: amistemRange + 3},
		},
		CutPlane: amistemCut,
		Heads:    headRow(amistemHeadM4, 5),
		headTravel: map[types.Label]float64{
			amistemHeadM4:     -2 * amistemHeadStep,
			amistemHeadM4 + 1: -amistemHeadStep,
			amistemHeadM4 + 2: 0,
			amistemHeadM4 + 3: amistemHeadStep,
			amistemHeadM4 + 4: 2 * amistemHeadStep,
		},
		headExtra:   map[string]float64{"LAT": amistemLATCorrection},
		DefaultStem: amistemSTD + 5,
		DefaultHead: amistemHeadM4 + 1,

		headRot:         geom.Identity(),
		cutRot:          geom.RotX(45),
		normalRot:       geom.RotZ(-90),
		cutBounds:       geom.Box{Min: geom.V(-40, -80, -40), Max: geom.V(40, 80, 40)},
		cutBoundsAtNeck: true,
		offsetVec:       geom.V(12, 0, 0),

		shaftAngle: 45,

		similarity: make(map[familyPair]similarityRule),
		points:     make(map[types.Label]RefPoints),
		display:    make(map[types.Label]string),
		meshIDs:    make(map[types.Label]string),
	}

	for _, f := range p.Families {
		necks := amistemNecks[f.Name]
		seats := amistemSeats[f.Name]
		for i := 0; i < f.Count; i++ {
			l := f.First + types.Label(i)
			p.points[l] = RefPoints{
				Neck:     geom.V(0, necks[i][0], necks[i][1]),
				HeadSeat: geom.V(0, seats[i][0], seats[i][1]),
			}
			p.display[l] = amistemDisplay(f.Name, i)
		}
	}
	for i := 0; i < 11; i++ {
		p.meshIDs[amistemSTD+types.Label(i)] = fmt.Sprintf("01_18_%d", 399+i)
		p.meshIDs[amistemSTDSN+types.Label(i)] = fmt.Sprintf("01_18_%d", 459+i)
	}
	for i := 0; i < 9; i++ {
		p.meshIDs[amistemLAT+types.Label(i)] = fmt.Sprintf("01_18_%d", 410+i)
		p.meshIDs[amistemLATSN+types.Label(i)] = fmt.Sprintf("01_18_%d", 470+i)
	}

	// The top and bottom standard sizes have no lateralized
	// counterpart; mapping them reports no correspondence instead of
	// clamping into the lateralized row.
	stdEdge := map[int]bool{0: true, 10: true}
	for _, lat := range []string{"LAT", "LAT_SN"} {
		p.similarity[familyPair{from: "STD", to: lat}] = similarityRule{delta: -1, noMatch: stdEdge}
		p.similarity[familyPair{from: "STD_SN", to: lat}] = similarityRule{delta: -1, noMatch: stdEdge}
	}
	for _, std := range []string{"STD", "STD_SN"} {
		p.similarity[familyPair{from: "LAT", to: std}] = similarityRule{delta: 1}
		p.similarity[familyPair{from: "LAT_SN", to: std}] = similarityRule{delta: 1}
	}

	p.shiftFn = amistemShift
	return p
}

func amistemDisplay(family string, size int) string {
	switch family {
	case "STD":
		if size == 0 {
			return "STD 00"
		}
		return fmt.Sprintf("STD %d", size-1)
	case "STD_SN":
		if size == 0 {
			return "SN STD 00"
		}
		return fmt.Sprintf("SN STD %d", size-1)
	case "LAT":
		return fmt.Sprintf("LAT %d", size)
	default:
		return fmt.Sprintf("SN LAT %d", size)
	}
}

// amistemShiftVec is the single-hop reseat shift. Moving within the
// standard rows, or within one lateralized row, follows the neck
// points; crossing between a standard row and its lateralized partner
// uses the calibrated Z shifts.
func amistemShiftVec(p *Product, origin, target types.Label) geom.Vec3 {
	if origin == target {
		return geom.Vec3{}
	}
	from := p.mustFamily(origin).Name
	to := p.mustFamily(target).Name
	neckDiff := func() geom.Vec3 {
		return p.points[origin].Neck.Sub(p.points[target].Neck)
	}

	isStd := func(name string) bool { return name == "STD" || name == "STD_SN" }
	if isStd(from) && isStd(to) {
		return neckDiff()
	}
	if from == to {
		return neckDiff()
	}

	size := p.SizeOf(origin)
	switch {
	case from == "STD" && to == "LAT":
		return geom.V(0, 0, amistemSTDToLAT[size])
	case from == "LAT" && to == "STD":
		return geom.V(0, 0, -amistemLATToSTD[size])
	case from == "STD_SN" && to == "LAT_SN":
		return geom.V(0, 0, amistemSNToLATSN[size])
	case from == "LAT_SN" && to == "STD_SN":
		return geom.V(0, 0, -amistemLATSNToSN[size])
	}
	return neckDiff()
}

// amistemShift reseats across rows. Combinations without a direct
// calibrated shift chain through the row similarity chart so each hop
// uses calibrated data.
func amistemShift(p *Product, origin, target types.Label) geom.Mat4 {
	from := p.mustFamily(origin).Name
	to := p.mustFamily(target).Name

	hop := func(labels ...types.Label) geom.Mat4 {
		var sum geom.Vec3
		for i := 0; i+1 < len(labels); i++ {
			sum = sum.Add(amistemShiftVec(p, labels[i], labels[i+1]))
		}
		return geom.Translate(sum)
	}

	switch {
	case from == "STD" && to == "LAT_SN":
		sn := p.mapIntoNamed(origin, "STD_SN")
		return hop(origin, sn, target)
	case from == "LAT_SN" && to == "STD":
		sn := p.mapIntoNamed(target, "STD_SN")
		return hop(origin, sn, target)
	case from == "LAT_SN" && to == "LAT":
		sn := p.mapIntoNamed(origin, "STD_SN")
		std := p.mapIntoNamed(target, "STD")
		return hop(origin, sn, std, target)
	case from == "STD_SN" && to == "LAT":
		std := p.mapIntoNamed(origin, "STD")
		return hop(origin, std, target)
	case from == "LAT" && to == "STD_SN":
		std := p.mapIntoNamed(origin, "STD")
		return hop(origin, std, target)
	case from == "LAT" && to == "LAT_SN":
		std := p.mapIntoNamed(origin, "STD")
		sn := p.mapIntoNamed(target, "STD_SN")
		return hop(origin, std, sn, target)
	}
	return hop(origin, target)
}
