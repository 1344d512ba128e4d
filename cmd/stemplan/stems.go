// Stems command lists the stem labels of a product line.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/orthoplan/stemplan/pkg/types"
)

var flagStemsMeshes bool

var stemsCmd = &cobra.Command{
	Use:   "stems [product]",
	Short: "List the stem labels of a product line",
	Long: `Stems lists every stem label of a product line with its row,
size index and catalog display name.

Without an argument the configured default product is used.

Example:
  stemplan stems
  stemplan stems corail
  stemplan stems corail --meshes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStems,
}

func init() {
	stemsCmd.Flags().BoolVar(&flagStemsMeshes, "meshes", false, "include mesh resource paths")
}

// stemReport describes one stem label.
type stemReport struct {
	Label    types.Label `json:"label"`
	Family   string      `json:"family"`
	Size     int         `json:"size"`
	Display  string      `json:"display,omitempty"`
	MeshID   string      `json:"mesh_id,omitempty"`
	MeshPath string      `json:"mesh_path,omitempty"`
}

func runStems(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	p, err := productByName(name)
	if err != nil {
		return err
	}

	meshDir := ""
	if flagStemsMeshes {
		meshDir, err = resolveMeshDir()
		if err != nil {
			return fmt.Errorf("resolve mesh dir: %w", err)
		}
	}

	reports := make([]stemReport, 0, len(p.Stems()))
	for _, l := range p.Stems() {
		f, _ := p.FamilyOf(l)
		r := stemReport{
			Label:   l,
			Family:  f.Name,
			Size:    p.SizeOf(l),
			Display: p.DisplayName(l),
			MeshID:  p.MeshID(l),
		}
		if flagStemsMeshes && r.MeshID != "" {
			r.MeshPath = filepath.Join(meshDir, r.MeshID+".stl")
		}
		reports = append(reports, r)
	}

	if flagJSON {
		return printJSON(reports)
	}

	for _, r := range reports {
		fmt.Printf("%d  %-12s size %-2d  %s\n", r.Label, r.Family, r.Size, r.Display)
		if r.MeshPath != "" {
			fmt.Printf("        mesh %s\n", r.MeshPath)
		}
	}
	return nil
}
