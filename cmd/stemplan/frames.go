// Frames command composes the placement frames for a stem label.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/types"
)

var (
	flagFramesHead   string
	flagFramesTarget string
	flagFramesSide   string
)

var framesCmd = &cobra.Command{
	Use:   "frames <stem>",
	Short: "Compose the placement frames for a stem",
	Long: `Frames prints the placement frames derived for a stem label: the
head seat transform, the resection plane with its clipping bounds, the
canal axis frame and the femur-first offset.

With --target the transform carrying the origin stem's placement onto
the target stem is printed as well.

Example:
  stemplan frames 130506
  stemplan frames 130506 --head 130531
  stemplan frames 160095 --target 160100`,
	Args: cobra.ExactArgs(1),
	RunE: runFrames,
}

func init() {
	framesCmd.Flags().StringVar(&flagFramesHead, "head", "", "head label (default: product default head)")
	framesCmd.Flags().StringVar(&flagFramesTarget, "target", "", "target stem label for the stem-to-stem transform")
	framesCmd.Flags().StringVar(&flagFramesSide, "side", "right", "implantation side (right, left)")
}

// planeReport flattens a plane for output.
type planeReport struct {
	Origin [3]float64 `json:"origin"`
	Normal [3]float64 `json:"normal"`
}

// boxReport flattens a clipping box for output.
type boxReport struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

// framesReport collects every frame derived for one stem.
type framesReport struct {
	Product     string      `json:"product"`
	Stem        types.Label `json:"stem"`
	Head        types.Label `json:"head"`
	HeadToStem  geom.Mat4   `json:"head_to_stem"`
	CutPlane    planeReport `json:"cut_plane"`
	CutBounds   boxReport   `json:"cut_bounds"`
	NormalFrame geom.Mat4   `json:"normal_frame"`
	Offset      [3]float64  `json:"offset"`
	ShaftAngle  float64     `json:"shaft_angle"`
	StemToStem  *geom.Mat4  `json:"stem_to_stem,omitempty"`
}

func runFrames(cmd *cobra.Command, args []string) error {
	stem, err := parseLabel(args[0])
	if err != nil {
		return err
	}
	side, err := types.ParseSide(flagFramesSide)
	if err != nil {
		return fmt.Errorf("invalid side %q", flagFramesSide)
	}

	p, err := catalog.Owner(stem)
	if err != nil {
		return fmt.Errorf("stem %d: %w", stem, err)
	}
	if !p.IsStem(stem) {
		return fmt.Errorf("label %d is not a %s stem", stem, p.Name)
	}

	head := p.DefaultHead
	if flagFramesHead != "" {
		head, err = parseLabel(flagFramesHead)
		if err != nil {
			return err
		}
		if !p.IsHead(head) {
			return fmt.Errorf("label %d is not a %s head", head, p.Name)
		}
	}

	plane := p.CutPlaneFor(stem)
	bounds := p.CutPlaneBounds(stem)
	report := framesReport{
		Product:    p.Name,
		Stem:       stem,
		Head:       head,
		HeadToStem: p.HeadToStem(stem, head),
		CutPlane: planeReport{
			Origin: vec3JSON(plane.Origin),
			Normal: vec3JSON(plane.Normal),
		},
		CutBounds: boxReport{
			Min: vec3JSON(bounds.Min),
			Max: vec3JSON(bounds.Max),
		},
		NormalFrame: p.NormalFrame(stem),
		Offset:      vec3JSON(p.OffsetFF(stem)),
		ShaftAngle:  p.ShaftAngle(stem),
	}

	if flagFramesTarget != "" {
		target, err := parseLabel(flagFramesTarget)
		if err != nil {
			return err
		}
		if !p.IsStem(target) {
			return fmt.Errorf("target %d is not a %s stem", target, p.Name)
		}
		origin := p.FillAndValidate(types.ImplantConfig{RequestedSide: side, Stem: stem, Head: head})
		dest := p.FillAndValidate(types.ImplantConfig{RequestedSide: side, Stem: target, Head: head})
		m := p.StemToStem(origin, dest)
		report.StemToStem = &m
	}

	if flagJSON {
		return printJSON(report)
	}

	fmt.Printf("product     %s\n", report.Product)
	fmt.Printf("stem        %d  %s\n", report.Stem, p.DisplayName(report.Stem))
	fmt.Printf("head        %d  %s\n", report.Head, p.DisplayName(report.Head))
	fmt.Printf("cut origin  %v\n", report.CutPlane.Origin)
	fmt.Printf("cut normal  %v\n", report.CutPlane.Normal)
	fmt.Printf("offset      %v\n", report.Offset)
	fmt.Printf("shaft angle %.1f\n", report.ShaftAngle)
	if report.StemToStem != nil {
		fmt.Printf("stem shift  %v\n", vec3JSON(report.StemToStem.Translation()))
	}
	return nil
}
