// Resolve command maps a numeric label to its registry metadata.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orthoplan/stemplan/pkg/implant"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <label>...",
	Short: "Resolve labels to vendor and product metadata",
	Long: `Resolve maps numeric labels to the product line owning them and
prints the vendor, product and catalog display name for each.

Example:
  stemplan resolve 130506
  stemplan resolve 160090 161346 310884`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	infos := make([]implant.Info, 0, len(args))
	for _, arg := range args {
		l, err := parseLabel(arg)
		if err != nil {
			return err
		}
		info, err := catalog.Resolve(l)
		if err != nil {
			return fmt.Errorf("label %d: %w", l, err)
		}
		infos = append(infos, info)
	}

	if flagJSON {
		return printJSON(infos)
	}

	for _, info := range infos {
		fmt.Printf("%d  %s / %s", info.Label, info.Vendor, info.Product)
		if info.Display != "" {
			fmt.Printf("  %q", info.Display)
		}
		fmt.Println()
	}
	return nil
}
