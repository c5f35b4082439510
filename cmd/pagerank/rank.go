package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/lioia/pagerank/pkg/graph"
	"github.com/lioia/pagerank/pkg/rank"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank [corpus]",
	Short: "Rank a corpus (HTML directory, .json links file, edge list or URL)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCorpus(args)
		if err != nil {
			return err
		}
		estimates, err := rank.Estimate(cmd.Context(), c, params())
		if err != nil {
			return err
		}
		if err := printRanks(cmd.OutOrStdout(), estimates.Sampling, estimates.Iteration); err != nil {
			return err
		}
		if outputPath != "" {
			return graph.Write(outputPath, estimates.Iteration)
		}
		return nil
	},
}

func init() {
	rankCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the iteration ranks to this file")
}

func printRanks(out io.Writer, sampling, iteration rank.Distribution) error {
	fmt.Fprintf(out, "PageRank Results from Sampling (n = %d)\n", env.Samples)
	if err := sampling.Format(out); err != nil {
		return err
	}
	fmt.Fprintln(out, "PageRank Results from Iteration")
	return iteration.Format(out)
}

// loadCorpus reads the corpus named on the command line or in the configuration file
func loadCorpus(args []string) (*graph.Corpus, error) {
	if len(args) == 1 {
		corpusPath = args[0]
	}
	if corpusPath == "" {
		return nil, errors.New("no corpus given")
	}
	return graph.LoadResource(corpusPath)
}
