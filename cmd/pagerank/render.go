package main

import (
	"os"

	"github.com/lioia/pagerank/pkg/graph"
	"github.com/lioia/pagerank/pkg/rank"
	"github.com/spf13/cobra"
)

var renderFormat string

var renderCmd = &cobra.Command{
	Use:   "render [corpus]",
	Short: "Draw the corpus with graphviz, sized by iteration rank",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCorpus(args)
		if err != nil {
			return err
		}
		ranks, err := rank.Iterate(c, env.Damping,
			rank.WithThreshold(env.Threshold), rank.WithMaxIterations(env.MaxIterations))
		if err != nil {
			return err
		}
		if outputPath == "" {
			return graph.Render(c, ranks, renderFormat, cmd.OutOrStdout())
		}
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		return graph.Render(c, ranks, renderFormat, file)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "svg", "output format: dot, svg, png or jpg")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
}
