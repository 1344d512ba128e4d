// Products command lists the supported product lines.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orthoplan/stemplan/pkg/implant"
	"github.com/orthoplan/stemplan/pkg/types"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the supported product lines",
	Args:  cobra.NoArgs,
	RunE:  runProducts,
}

// familyReport describes one stem row of a product.
type familyReport struct {
	Name   string      `json:"name"`
	First  types.Label `json:"first"`
	Count  int         `json:"count"`
	Marker types.Label `json:"marker,omitempty"`
}

// productReport describes one product line.
type productReport struct {
	Name        string         `json:"name"`
	Vendor      string         `json:"vendor"`
	Base        types.Label    `json:"base"`
	Families    []familyReport `json:"families"`
	CutPlane    types.Label    `json:"cut_plane"`
	Heads       []types.Label  `json:"heads"`
	DefaultStem types.Label    `json:"default_stem"`
	DefaultHead types.Label    `json:"default_head"`
	Anatomical  bool           `json:"anatomical"`
}

func newProductReport(p *implant.Product) productReport {
	r := productReport{
		Name:        p.Name,
		Vendor:      p.Vendor,
		Base:        p.Base,
		CutPlane:    p.CutPlane,
		Heads:       p.Heads,
		DefaultStem: p.DefaultStem,
		DefaultHead: p.DefaultHead,
		Anatomical:  p.Anatomical,
	}
	for _, f := range p.Families {
		r.Families = append(r.Families, familyReport{
			Name:   f.Name,
			First:  f.First,
			Count:  f.Count,
			Marker: f.Marker,
		})
	}
	return r
}

func runProducts(cmd *cobra.Command, args []string) error {
	reports := make([]productReport, 0, len(catalog.Products()))
	for _, p := range catalog.Products() {
		reports = append(reports, newProductReport(p))
	}

	if flagJSON {
		return printJSON(reports)
	}

	for _, r := range reports {
		fmt.Printf("%s (%s) base=%d families=%d heads=%d\n",
			r.Name, r.Vendor, r.Base, len(r.Families), len(r.Heads))
		for _, f := range r.Families {
			fmt.Printf("  %-12s labels %d-%d\n", f.Name, f.First, int(f.First)+f.Count-1)
		}
	}
	return nil
}
