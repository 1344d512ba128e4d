package implant

import (
	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/types"
)

// Ecofit block layout, relative to the base label.
const (
	ecofitBase   types.Label = 310_840
	ecofitSTD133             = ecofitBase
	ecofitLAT133             = ecofitBase + 12
	ecofitSTD138             = ecofitBase + 24
	ecofitLAT138             = ecofitBase + 34
	ecofitCV                 = ecofitBase + 44
	ecofitCut                = ecofitBase + 54
	ecofitHeadM4             = ecofitBase + 55
	ecofitRange              = ecofitBase + 59
)

// All ecofit stems share the neck point at the local origin; only the
// distal reference and head seat vary, and they are constant per row.
var ecofitRowPoints = map[string]struct{ ref, seat geom.Vec3 }{
	"STD_133": {geom.V(10.69, -9.21, 0), geom.V(25.09, 23.39, 0)},
	"LAT_133": {geom.V(6.55, -5.9, 0), geom.V(29.25, 27.28, 0)},
	"STD_138": {geom.V(10.5, -9.45, 0), geom.V(23.02, 25.56, 0)},
	"LAT_138": {geom.V(6.54, -5.89, 0), geom.V(26.77, 29.74, 0)},
	"CV":      {geom.V(10.27, -9.93, 0), geom.V(27.12, 17.61, 0)},
}

// Catalog size names. The long rows carry twelve sizes, the short rows
// skip 16,25 and 18,75. The decimal comma follows the vendor catalog;
// the lone decimal point in the lateral row is faithful to the vendor
// data sheet.
var (
	ecofitSizesLong = []string{
		"6,25", "7,5", "8,75", "10", "11,25", "12,5",
		"13,75", "15", "16,25", "17,5", "18,75", "20",
	}
	ecofitSizesShort = []string{
		"6,25", "7,5", "8,75", "10", "11,25", "12,5", "13,75", "15", "17,5", "20",
	}
)

// Mesh resource number stems per size position for the long rows and
// the short rows.
var (
	ecofitNumsLong  = []string{"062", "075", "087", "100", "112", "125", "137", "150", "162", "175", "187", "200"}
	ecofitNumsShort = []string{"062", "075", "087", "100", "112", "125", "137", "150", "175", "200"}
)

var ecofit = mustBuild(newEcofit())

// Ecofit returns the Implantcast ecofit product line.
func Ecofit() *Product { return ecofit }

func newEcofit() *Product {
	p := &Product{
		Name:   "ecofit",
		Vendor: "Implantcast",
		Base:   ecofitBase,
		Families: []Family{
			{Name: "STD_133", First: ecofitSTD133, Count: 12, Marker: ecofitRange},
			{Name: "LAT_133", First: ecofitLAT133, Count: 12, Marker: ecofitRange + 1},
			{Name: "STD_138", First: ecofitSTD138, Count: 10, Marker: ecofitRange + 2},
			{Name: "LAT_138", First: ecofitLAT138, Count: 10, Marker: ecofitRange + 3},
			{Name: "CV", First: ecofitCV, Count: 10, Marker: ecofitRange + 4},
		},
		CutPlane: ecofitCut,
		Heads:    headRow(ecofitHeadM4, 4),
		headTravel: map[types.Label]float64{
			ecofitHeadM4:     -3.53,
			ecofitHeadM4 + 1: 0,
			ecofitHeadM4 + 2: 3.53,
			ecofitHeadM4 + 3: 7.1,
		},
		DefaultStem: ecofitSTD133 + 5,
		DefaultHead: ecofitHeadM4 + 1,
		Anatomical:  true,

		headRot:         geom.Identity(),
		cutRot:          geom.RotZ(-42),
		normalRot:       geom.RotX(90),
		cutBounds:       geom.Box{Min: geom.V(-25, -25, -25), Max: geom.V(25, 25, 25)},
		cutBoundsAtNeck: true,
		offsetVec:       geom.V(15, 0, 10),

		shaftAngle: 45,

		similarity: make(map[familyPair]similarityRule),
		points:     make(map[types.Label]RefPoints),
		display:    make(map[types.Label]string),
		meshIDs:    make(map[types.Label]string),
	}

	type rowMeta struct {
		displayPrefix string
		meshPrefix    string
		meshSuffix    string
		sizes         []string
		nums          []string
	}
	meta := map[string]rowMeta{
		"STD_133": {"133 STD", "30363", "_133", ecofitSizesLong, ecofitNumsLong},
		"LAT_133": {"133 LAT", "30364", "_133Lat", ecofitSizesLong, ecofitNumsLong},
		"STD_138": {"138 STD", "30383", "_138", ecofitSizesShort, ecofitNumsShort},
		"LAT_138": {"138 LAT", "30384", "_138Lat", ecofitSizesShort, ecofitNumsShort},
		"CV":      {"123 STD", "30382", "_CV", ecofitSizesShort, ecofitNumsShort},
	}

	for _, f := range p.Families {
		row := ecofitRowPoints[f.Name]
		m := meta[f.Name]
		for i := 0; i < f.Count; i++ {
			l := f.First + types.Label(i)
			p.points[l] = RefPoints{Reference: row.ref, HeadSeat: row.seat}
			size := m.sizes[i]
			if f.Name == "LAT_133" && i == 9 {
				size = "17.5"
			}
			p.display[l] = m.displayPrefix + " " + size
			p.meshIDs[l] = m.meshPrefix + m.nums[i] + m.meshSuffix
		}
	}

	// The 133 degree rows use a longer size run, so crossing between a
	// 133 row and any other needs the vendor's non-linear size
	// correction around the upper sizes.
	is133 := map[string]bool{"STD_133": true, "LAT_133": true}
	to133 := similarityRule{remap: map[int]int{8: 9, 9: 11}}
	from133 := similarityRule{remap: map[int]int{9: 8, 11: 9}}
	for _, a := range []string{"STD_133", "LAT_133", "STD_138", "LAT_138", "CV"} {
		for _, b := range []string{"STD_133", "LAT_133", "STD_138", "LAT_138", "CV"} {
			switch {
			case a == b || is133[a] == is133[b]:
			case is133[b]:
				p.similarity[familyPair{from: a, to: b}] = to133
			default:
				p.similarity[familyPair{from: a, to: b}] = from133
			}
		}
	}
	return p
}
