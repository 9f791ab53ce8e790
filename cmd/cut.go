package cmd

import (
	"errors"
	"fmt"

	"github.com/chazu/voidcut/pkg/opening"
	"github.com/spf13/cobra"
)

var cutOpts CutOptions

var cutCmd = &cobra.Command{
	Use:   "cut",
	Short: "Replace the placeholders piercing a wall with openings",
	Long: `Insert one rectangular opening per placeholder void that intersects the
chosen wall, then delete the placeholder. Placeholders without a usable
solid, or without overlap, are skipped and left in the scene. Any other
failure rolls the whole wall back.

Examples:
  # Cut wall W1 and write its elevation
  voidcut cut --scene house.lisp --wall W1 --dxf w1.dxf --svg w1.svg

  # Choose the wall interactively and only report what would be cut
  voidcut cut --scene house.lisp --dry-run`,
	RunE: runCut,
}

func init() {
	rootCmd.AddCommand(cutCmd)

	cutCmd.Flags().StringVarP(&cutOpts.Scene, "scene", "s", "", "Scene file [required]")
	cutCmd.Flags().StringVarP(&cutOpts.Wall, "wall", "w", "", "Wall name (prompt when omitted)")
	cutCmd.Flags().BoolVar(&cutOpts.DryRun, "dry-run", false, "Compute openings without changing the scene")

	cutCmd.Flags().StringVar(&cutOpts.DXF, "dxf", "", "Write the wall elevation as DXF")
	cutCmd.Flags().StringVar(&cutOpts.SVG, "svg", "", "Write the wall elevation as SVG")
	cutCmd.Flags().StringVar(&cutOpts.Mesh, "mesh", "", "Write element meshes as JSON")
	cutCmd.Flags().StringVar(&cutOpts.Mesher, "mesher", "brep", "Mesher for --mesh: brep or sdfx")

	cutCmd.MarkFlagRequired("scene")
}

func runCut(cmd *cobra.Command, args []string) error {
	app, err := setup(cmd)
	if err != nil {
		return err
	}
	report, _, err := app.Cut(cutOpts)
	if errors.Is(err, opening.ErrUserCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
		return nil
	}
	if err != nil {
		return err
	}
	if !report.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%d opening(s) inserted, %d placeholder(s) skipped\n",
			len(report.Openings), len(report.Skipped))
	}
	return nil
}
