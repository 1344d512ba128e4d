// Validate command fills and checks an implant configuration.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orthoplan/stemplan/pkg/types"
)

var (
	flagValidateProduct string
	flagValidateSide    string
	flagValidateStem    string
	flagValidateHead    string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Fill and check an implant configuration",
	Long: `Validate builds an implant configuration from the given selections,
fills the product defaults for anything left unset and reports whether
the result is usable for planning.

Example:
  stemplan validate --side right
  stemplan validate --product corail --side left --stem 160095
  stemplan validate --product fit --side left --stem 60757 --head 60766`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&flagValidateProduct, "product", "", "product line (default: configured default)")
	validateCmd.Flags().StringVar(&flagValidateSide, "side", "", "implantation side (right, left)")
	validateCmd.Flags().StringVar(&flagValidateStem, "stem", "", "stem label (default: product default stem)")
	validateCmd.Flags().StringVar(&flagValidateHead, "head", "", "head label (default: product default head)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := productByName(flagValidateProduct)
	if err != nil {
		return err
	}
	side, err := types.ParseSide(flagValidateSide)
	if err != nil {
		return fmt.Errorf("invalid side %q", flagValidateSide)
	}

	cfg := p.DefaultConfig(side)
	if flagValidateStem != "" {
		cfg.Stem, err = parseLabel(flagValidateStem)
		if err != nil {
			return err
		}
	}
	if flagValidateHead != "" {
		cfg.Head, err = parseLabel(flagValidateHead)
		if err != nil {
			return err
		}
	}
	cfg = p.FillAndValidate(cfg)

	if flagJSON {
		return printJSON(cfg)
	}

	if !cfg.Valid {
		fmt.Println("configuration invalid")
		return nil
	}
	fmt.Printf("valid: %s side=%s stem=%d (%s) head=%d (%s) cut=%d\n",
		cfg.StemProduct, cfg.RequestedSide, cfg.Stem, p.DisplayName(cfg.Stem),
		cfg.Head, p.DisplayName(cfg.Head), cfg.CutPlane)
	return nil
}
