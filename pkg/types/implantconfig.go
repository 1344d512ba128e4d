package types

import "errors"

// ImplantConfig is a complete stem assembly selection: the component
// labels plus the product names that own them. Validation fills the
// derived fields from the label slots; a config with Valid set has
// passed that pass unmodified.
type ImplantConfig struct {
	RequestedSide Side `json:"requested_side"` // Side the surgeon asked to plan.
	ImplantSide   Side `json:"implant_side"`   // Side the implant geometry is built for.

	Stem     Label `json:"stem"`      // Selected stem component.
	Head     Label `json:"head"`      // Selected head component.
	Neck     Label `json:"neck"`      // Must stay empty for monoblock stems.
	CutPlane Label `json:"cut_plane"` // Resection plane, defaulted during validation.

	StemProduct        string `json:"stem_product"`         // Product line owning the stem.
	HeadProduct        string `json:"head_product"`         // Product line owning the head.
	NeckProduct        string `json:"neck_product"`         // Empty for monoblock stems.
	DistalShaftProduct string `json:"distal_shaft_product"` // Empty for monoblock stems.

	Valid bool `json:"valid"` // Set when the config passed validation.
}

// Validation errors for raw configuration records loaded from storage.
var (
	ErrSideRequired = errors.New("requested side must not be none")
	ErrStemRequired = errors.New("stem label must be set")
	ErrHeadRequired = errors.New("head label must be set")
)

// CheckRequired verifies that the slots a validator cannot default are
// present. It returns a sentinel error from this package on failure.
func (c ImplantConfig) CheckRequired() error {
	if c.RequestedSide == SideNone {
		return ErrSideRequired
	}
	if !c.Stem.IsSet() {
		return ErrStemRequired
	}
	if !c.Head.IsSet() {
		return ErrHeadRequired
	}
	return nil
}
