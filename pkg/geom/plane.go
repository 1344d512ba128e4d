package geom

// Plane is an oriented plane given by a point on the plane and a unit
// normal.
type Plane struct {
	Origin Vec3
	Normal Vec3
}

// Transform applies m to the plane: the origin moves as a point, the
// normal as a direction and is re-normalized.
func (p Plane) Transform(m Mat4) Plane {
	return Plane{
		Origin: m.Apply(p.Origin),
		Normal: m.ApplyVec(p.Normal).Unit(),
	}
}

// Offset shifts the plane by d along its normal.
func (p Plane) Offset(d float64) Plane {
	return Plane{
		Origin: p.Origin.Add(p.Normal.Scale(d)),
		Normal: p.Normal,
	}
}

// Box is an axis-aligned box.
type Box struct {
	Min Vec3
	Max Vec3
}

// Translate returns the box shifted by v.
func (b Box) Translate(v Vec3) Box {
	return Box{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}
