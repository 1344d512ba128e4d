package types

// MapResult is the outcome of mapping a label into another label
// family. A mapping either lands on a counterpart in the target family
// or reports that no counterpart exists, in which case the input label
// is carried through unchanged so callers can keep their current
// selection.
type MapResult struct {
	Label  Label // Counterpart in the target family, or the input label.
	Mapped bool  // True when Label belongs to the target family.
}

// Mapped wraps a label that was resolved into the target family.
func Mapped(l Label) MapResult {
	return MapResult{Label: l, Mapped: true}
}

// Unchanged wraps an input label that has no counterpart in the target
// family.
func Unchanged(l Label) MapResult {
	return MapResult{Label: l}
}
