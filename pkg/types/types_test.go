package types

import (
	"errors"
	"testing"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		in      string
		want    Side
		wantErr error
	}{
		{"right", SideRight, nil},
		{"r", SideRight, nil},
		{"left", SideLeft, nil},
		{"l", SideLeft, nil},
		{"none", SideNone, nil},
		{"", SideNone, nil},
		{"Both", SideNone, ErrSideUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSide(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseSide(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseSide(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSideStringRoundTrip(t *testing.T) {
	for _, s := range []Side{SideNone, SideRight, SideLeft} {
		got, err := ParseSide(s.String())
		if err != nil || got != s {
			t.Fatalf("round trip for %v: got %v, err %v", s, got, err)
		}
	}
}

func TestMapResult(t *testing.T) {
	if r := Mapped(42); !r.Mapped || r.Label != 42 {
		t.Fatalf("Mapped(42) = %+v", r)
	}
	if r := Unchanged(42); r.Mapped || r.Label != 42 {
		t.Fatalf("Unchanged(42) = %+v", r)
	}
}

func TestCheckRequired(t *testing.T) {
	tests := []struct {
		name string
		cfg  ImplantConfig
		want error
	}{
		{"missing side", ImplantConfig{Stem: 1, Head: 2}, ErrSideRequired},
		{"missing stem", ImplantConfig{RequestedSide: SideRight, Head: 2}, ErrStemRequired},
		{"missing head", ImplantConfig{RequestedSide: SideRight, Stem: 1}, ErrHeadRequired},
		{"complete", ImplantConfig{RequestedSide: SideLeft, Stem: 1, Head: 2}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.CheckRequired(); !errors.Is(err, tt.want) {
				t.Fatalf("CheckRequired() = %v, want %v", err, tt.want)
			}
		})
	}
}
