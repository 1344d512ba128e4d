package types

import "errors"

// Side is the anatomical side a plan targets.
type Side int

// Anatomical sides.
const (
	SideNone Side = iota
	SideRight
	SideLeft
)

// ErrSideUnknown is returned by ParseSide for unrecognized input.
var ErrSideUnknown = errors.New("unknown side")

// sideNames maps sides to their canonical lowercase spelling.
var sideNames = map[Side]string{
	SideNone:  "none",
	SideRight: "right",
	SideLeft:  "left",
}

// String returns the canonical lowercase name of the side.
func (s Side) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}
	return "none"
}

// ParseSide converts a user-supplied side name to a Side. It accepts
// the canonical names plus the single-letter shorthands "r" and "l".
// Returns ErrSideUnknown for anything else.
func ParseSide(s string) (Side, error) {
	switch s {
	case "none", "":
		return SideNone, nil
	case "right", "r":
		return SideRight, nil
	case "left", "l":
		return SideLeft, nil
	default:
		return SideNone, ErrSideUnknown
	}
}
