package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphscape/graphscape/pkg/layout"
)

// algorithmDescriptions maps each built-in algorithm to its one-line summary
// shown by the algorithms command.
var algorithmDescriptions = map[string]string{
	layout.NameRandom:              "uniform random positions in the unit square",
	layout.NameCircular:            "nodes evenly spaced on the unit circle",
	layout.NameForceDirected:       "force simulation with repulsion, springs, and gravity",
	layout.NameFruchtermanReingold: "classical force layout with a cooling schedule",
	layout.NameStressMajorization:  "fits distances to graph distances by monotone updates",
	layout.NameMDS:                 "classical multidimensional scaling of graph distances",
}

// algorithmsCommand creates the algorithms command listing the built-ins.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the built-in layout algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Layout algorithms"))
			printNewline()
			for _, name := range layout.Names() {
				printAlgorithm(name, algorithmDescriptions[name])
			}
			printNewline()
			printNextStep("Use one", appName+" layout -a "+layout.NameStressMajorization+" graph.txt")
			return nil
		},
	}
}
