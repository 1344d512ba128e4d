package implant

import "github.com/orthoplan/stemplan/pkg/types"

// DefaultConfig returns the validated starter configuration for a
// planning side: the product's default stem and head with the
// resection plane filled in. Products with side-specific stems pick
// the left-side default for a left plan.
func (p *Product) DefaultConfig(side types.Side) types.ImplantConfig {
	stem := p.DefaultStem
	if side == types.SideLeft && p.DefaultStemLeft.IsSet() {
		stem = p.DefaultStemLeft
	}
	return p.FillAndValidate(types.ImplantConfig{
		RequestedSide: side,
		Stem:          stem,
		Head:          p.DefaultHead,
	})
}

// FillAndValidate completes a raw configuration and stamps it valid.
// The stem and head slots must carry labels of this product and the
// neck slot must be empty, since all supported stems are monoblock; a
// configuration breaking those rules comes back with Valid unset. The
// default cut plane is filled in for any sided request, even one whose
// selection is then rejected. A passing configuration additionally
// gets the owning product names and the implant side filled in.
func (p *Product) FillAndValidate(cfg types.ImplantConfig) types.ImplantConfig {
	if cfg.RequestedSide == types.SideNone {
		cfg.Valid = false
		return cfg
	}
	if !cfg.CutPlane.IsSet() {
		cfg.CutPlane = p.CutPlane
	}
	if !p.IsStem(cfg.Stem) || !p.IsHead(cfg.Head) || cfg.Neck.IsSet() {
		cfg.Valid = false
		return cfg
	}
	cfg.StemProduct = p.Name
	cfg.HeadProduct = p.Name
	cfg.NeckProduct = ""
	cfg.DistalShaftProduct = ""
	if p.Anatomical {
		cfg.ImplantSide = cfg.RequestedSide
	} else {
		cfg.ImplantSide = types.SideNone
	}
	cfg.Valid = true
	return cfg
}

// NextStem returns the configuration with the next larger stem in the
// current row, leaving everything else untouched. At the top of the
// row the configuration is returned unchanged.
func (p *Product) NextStem(cfg types.ImplantConfig) types.ImplantConfig {
	cfg.Stem = p.Next(cfg.Stem)
	return cfg
}

// PrevStem is the downward counterpart of NextStem.
func (p *Product) PrevStem(cfg types.ImplantConfig) types.ImplantConfig {
	cfg.Stem = p.Prev(cfg.Stem)
	return cfg
}
