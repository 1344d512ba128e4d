package types

// Label identifies a single implant component inside a product's label
// space. Each product owns a contiguous block of integers starting at
// its vendor-assigned base; stems, heads, range markers and the cut
// plane all live in the same block. The zero value is LabelNone.
type Label int

// LabelNone marks an unset label slot in a configuration.
const LabelNone Label = 0

// IsSet reports whether the label carries a value.
func (l Label) IsSet() bool {
	return l != LabelNone
}
