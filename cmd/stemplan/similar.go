// Similar command maps a stem into another row of the same product.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orthoplan/stemplan/pkg/types"
)

var similarCmd = &cobra.Command{
	Use:   "similar <stem> <marker>",
	Short: "Map a stem into the row selected by a range marker",
	Long: `Similar maps a stem label onto the most similar size in the row
identified by a range marker of the same product. When the target row
has no comparable size the stem is reported unchanged.

Example:
  stemplan similar 130506 130534
  stemplan similar 100805 100847`,
	Args: cobra.ExactArgs(2),
	RunE: runSimilar,
}

// similarReport is the outcome of one row mapping.
type similarReport struct {
	Stem    types.Label `json:"stem"`
	Marker  types.Label `json:"marker"`
	Label   types.Label `json:"label"`
	Mapped  bool        `json:"mapped"`
	Display string      `json:"display,omitempty"`
}

func runSimilar(cmd *cobra.Command, args []string) error {
	stem, err := parseLabel(args[0])
	if err != nil {
		return err
	}
	marker, err := parseLabel(args[1])
	if err != nil {
		return err
	}

	p, err := catalog.Owner(stem)
	if err != nil {
		return fmt.Errorf("stem %d: %w", stem, err)
	}
	if !p.IsStem(stem) {
		return fmt.Errorf("label %d is not a %s stem", stem, p.Name)
	}
	if !p.IsMarker(marker) {
		return fmt.Errorf("label %d is not a %s range marker", marker, p.Name)
	}

	res := p.Similar(stem, marker)
	report := similarReport{
		Stem:    stem,
		Marker:  marker,
		Label:   res.Label,
		Mapped:  res.Mapped,
		Display: p.DisplayName(res.Label),
	}

	if flagJSON {
		return printJSON(report)
	}

	if !report.Mapped {
		fmt.Printf("%d has no match in the target row\n", report.Stem)
		return nil
	}
	fmt.Printf("%d -> %d  %s\n", report.Stem, report.Label, report.Display)
	return nil
}
