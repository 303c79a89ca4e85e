// maths - terminal playground for the vector/scalar math library.
//
// Subcommands:
//
//	plot   - Render an easing or spline curve in the terminal
//	bounds - Report bounding box and Morton statistics for a glTF model
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "maths",
		Short: "Vector and scalar math playground",
		Long: `maths - terminal playground for the maths library

Plot easing and spline curves in the terminal, or inspect the bounding
geometry of a glTF model.`,
		SilenceUsage: true,
	}

	root.AddCommand(newPlotCmd())
	root.AddCommand(newBoundsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
