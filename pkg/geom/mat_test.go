package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRotationsMoveUnitAxes(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"rotX 90 sends Y to Z", RotX(90), V(0, 1, 0), V(0, 0, 1)},
		{"rotY 90 sends Z to X", RotY(90), V(0, 0, 1), V(1, 0, 0)},
		{"rotZ 90 sends X to Y", RotZ(90), V(1, 0, 0), V(0, 1, 0)},
		{"rotZ -45 keeps Z", RotZ(-45), V(0, 0, 1), V(0, 0, 1)},
		{"rotZ 180 negates X", RotZ(180), V(1, 0, 0), V(-1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Apply(tt.in)
			if !got.ApproxEqual(tt.want, eps) {
				t.Fatalf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMulAppliesRightFactorFirst(t *testing.T) {
	// rotZ(-45) * translate(tx, ty, 0) must equal
	// translate(rotZ(-45)(tx, ty, 0)) * rotZ(-45).
	m1 := RotZ(-45).Mul(TranslateXYZ(-12.5, 29.9, 0))
	m2 := Translate(RotZ(-45).Apply(V(-12.5, 29.9, 0))).Mul(RotZ(-45))
	if !m1.ApproxEqual(m2, eps) {
		t.Fatalf("composition mismatch:\n%v\n%v", m1, m2)
	}
}

func TestTranslationRoundTrip(t *testing.T) {
	v := V(3.5, -2, 7.25)
	m := Translate(v)
	if got := m.Translation(); !got.ApproxEqual(v, eps) {
		t.Fatalf("Translation() = %v, want %v", got, v)
	}
	if got := m.Apply(Vec3{}); !got.ApproxEqual(v, eps) {
		t.Fatalf("Apply(origin) = %v, want %v", got, v)
	}
}

func TestUnitHandlesZeroVector(t *testing.T) {
	if got := (Vec3{}).Unit(); got != (Vec3{}) {
		t.Fatalf("Unit of zero vector = %v, want zero", got)
	}
	u := V(3, 4, 0).Unit()
	if math.Abs(u.Norm()-1) > eps {
		t.Fatalf("Unit length = %v, want 1", u.Norm())
	}
}

func TestPlaneTransform(t *testing.T) {
	base := Plane{Normal: V(0, 1, 0)}
	m := TranslateXYZ(0, 0, 5).Mul(RotX(90))
	got := base.Transform(m)
	if !got.Origin.ApproxEqual(V(0, 0, 5), eps) {
		t.Fatalf("origin = %v, want (0,0,5)", got.Origin)
	}
	if !got.Normal.ApproxEqual(V(0, 0, 1), eps) {
		t.Fatalf("normal = %v, want (0,0,1)", got.Normal)
	}
}

func TestPlaneOffsetMovesAlongNormal(t *testing.T) {
	p := Plane{Origin: V(1, 2, 3), Normal: V(0, 0, 1)}
	got := p.Offset(-0.1)
	if !got.Origin.ApproxEqual(V(1, 2, 2.9), eps) {
		t.Fatalf("origin = %v, want (1,2,2.9)", got.Origin)
	}
}

func TestBoxTranslate(t *testing.T) {
	b := Box{Min: V(-25, -25, -25), Max: V(25, 25, 25)}
	got := b.Translate(V(1, 2, 3))
	if !got.Min.ApproxEqual(V(-24, -23, -22), eps) || !got.Max.ApproxEqual(V(26, 27, 28), eps) {
		t.Fatalf("Translate = %+v", got)
	}
}
