package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "codemath",
		Short:        "grid and voronoi pathfinding playground",
		SilenceUsage: true,
	}
	root.AddCommand(
		GridCmd(),
		VoronoiCmd(),
	)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
