package implant

import (
	"errors"

	"github.com/orthoplan/stemplan/pkg/types"
)

// Catalog is an ordered set of products sharing one global label
// space. Lookup scans the products in registration order, matching the
// vendor registry behavior.
type Catalog struct {
	products []*Product
	byName   map[string]*Product
}

// Catalog lookup errors.
var (
	ErrProductUnknown = errors.New("unknown product")
	ErrLabelUnknown   = errors.New("label not in any product range")
)

// Info is the registry metadata resolved for a single label.
type Info struct {
	Label   types.Label `json:"label"`
	Vendor  string      `json:"vendor"`
	Product string      `json:"product"`
	Display string      `json:"display,omitempty"` // Catalog display name, when the label has one.
	MeshID  string      `json:"mesh_id,omitempty"` // Vendor mesh resource, when the label has one.
}

// NewCatalog builds a catalog over the given products, preserving
// their order for label resolution.
func NewCatalog(products ...*Product) *Catalog {
	c := &Catalog{
		products: products,
		byName:   make(map[string]*Product, len(products)),
	}
	for _, p := range products {
		c.byName[p.Name] = p
	}
	return c
}

// Default returns the catalog of all supported product lines in
// registry scan order.
func Default() *Catalog {
	return NewCatalog(Amistem(), Optimys(), Corail(), Actis(), Ecofit(), Fit())
}

// Products returns the catalog's products in registration order.
func (c *Catalog) Products() []*Product {
	return c.products
}

// Product returns the product registered under the given name.
func (c *Catalog) Product(name string) (*Product, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, ErrProductUnknown
	}
	return p, nil
}

// Owner returns the product whose label block contains l.
func (c *Catalog) Owner(l types.Label) (*Product, error) {
	for _, p := range c.products {
		if p.Contains(l) {
			return p, nil
		}
	}
	return nil, ErrLabelUnknown
}

// Resolve returns the registry metadata for a label, scanning products
// in registration order.
func (c *Catalog) Resolve(l types.Label) (Info, error) {
	p, err := c.Owner(l)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Label:   l,
		Vendor:  p.Vendor,
		Product: p.Name,
		Display: p.DisplayName(l),
		MeshID:  p.MeshID(l),
	}, nil
}
