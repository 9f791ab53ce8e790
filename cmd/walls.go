package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var wallsScene string

var wallsCmd = &cobra.Command{
	Use:   "walls",
	Short: "List the walls of a scene",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup(cmd)
		if err != nil {
			return err
		}
		walls, err := app.Walls(wallsScene)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSTART\tEND\tLENGTH\tHEIGHT\tTHICKNESS\tPLACEHOLDERS")
		for _, wi := range walls {
			fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%d\n",
				wi.Name, wi.Start, wi.End, wi.Length, wi.Height, wi.Thickness, wi.Placeholders)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(wallsCmd)
	wallsCmd.Flags().StringVarP(&wallsScene, "scene", "s", "", "Scene file [required]")
	wallsCmd.MarkFlagRequired("scene")
}
