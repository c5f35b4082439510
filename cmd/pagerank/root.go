package main

import (
	"github.com/lioia/pagerank/pkg/rank"
	"github.com/lioia/pagerank/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	env        utils.EnvVars
	configPath string
	corpusPath string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "pagerank",
	Short: "Estimate the PageRank of a corpus of pages",
	Long: `pagerank estimates the importance of every page of a small corpus twice:
by sampling a random surfer and by iterating the PageRank equation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "configuration file (.json or .yaml)")
	flags.Float64("damping", rank.DefaultDamping, "damping factor, in (0, 1)")
	flags.Int("samples", rank.DefaultSamples, "number of samples of the random surfer")
	flags.Float64("threshold", rank.DefaultThreshold, "convergence threshold of the iteration")
	flags.Int("max-iterations", rank.DefaultMaxIterations, "iteration cap")
	flags.Uint64("seed", 0, "random seed (0: seeded from the clock)")
	flags.Bool("compute-log", false, "log estimator progress")
	flags.Bool("server-log", false, "log served requests")

	rootCmd.AddCommand(rankCmd, serveCmd, workerCmd, submitCmd, renderCmd)
}

// Settings are read from the environment, then the configuration file, then
// the command line flags.
func loadSettings(cmd *cobra.Command) error {
	env = utils.ReadEnvVars()
	if configPath != "" {
		config, err := utils.LoadConfiguration(configPath)
		if err != nil {
			return err
		}
		config.Apply(&env)
		if corpusPath == "" {
			corpusPath = config.Corpus
		}
		if outputPath == "" {
			outputPath = config.Output
		}
	}
	flags := cmd.Flags()
	if flags.Changed("damping") {
		env.Damping, _ = flags.GetFloat64("damping")
	}
	if flags.Changed("samples") {
		env.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("threshold") {
		env.Threshold, _ = flags.GetFloat64("threshold")
	}
	if flags.Changed("max-iterations") {
		env.MaxIterations, _ = flags.GetInt("max-iterations")
	}
	if flags.Changed("seed") {
		env.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("compute-log") {
		env.ComputeLog, _ = flags.GetBool("compute-log")
	}
	if flags.Changed("server-log") {
		env.ServerLog, _ = flags.GetBool("server-log")
	}
	utils.InitLog(env.ComputeLog, env.ServerLog)
	return nil
}

func params() rank.Params {
	return rank.Params{
		Damping:       env.Damping,
		Samples:       env.Samples,
		Threshold:     env.Threshold,
		MaxIterations: env.MaxIterations,
		Seed:          env.Seed,
	}
}
