package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/lioia/pagerank/pkg/api"
	"github.com/lioia/pagerank/pkg/utils"
	"github.com/lioia/pagerank/pkg/worker"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Rank the jobs of the RabbitMQ work queue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ranker, err := api.NewRanker(params(), env.CacheSize)
		if err != nil {
			return err
		}
		// Connect to RabbitMQ
		queue, err := utils.DialQueue(env.RabbitURL(), env.WorkQueue, env.ResultQueue)
		utils.FailOnError("Could not connect to RabbitMQ at %s", err, env.RabbitHost)
		defer queue.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		w := worker.Worker{Ranker: ranker, Publisher: queue.Channel, Result: queue.Result.Name}
		err = w.Run(ctx, queue.Channel, queue.Work.Name)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

var submitTimeout time.Duration

var submitCmd = &cobra.Command{
	Use:   "submit [corpus]",
	Short: "Send a corpus to the work queue, or to a gRPC server with --api, and print the result",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCorpus(args)
		if err != nil {
			return err
		}
		req := api.RankRequest{
			Corpus:  c.Links(),
			Damping: env.Damping,
			Samples: env.Samples,
			Seed:    env.Seed,
		}
		var res *api.RankResponse
		if submitApi != "" {
			r, err := api.RankRemote(submitApi, req)
			if err != nil {
				return err
			}
			res = &r
		} else {
			queue, err := utils.DialQueue(env.RabbitURL(), env.WorkQueue, env.ResultQueue)
			utils.FailOnError("Could not connect to RabbitMQ at %s", err, env.RabbitHost)
			defer queue.Close()
			ctx, cancel := context.WithTimeout(cmd.Context(), submitTimeout)
			defer cancel()
			result, err := worker.Submit(ctx, queue.Channel, queue.Work.Name, req)
			if err != nil {
				return err
			}
			if result.Error != "" {
				return fmt.Errorf("job %s: %s", result.ID, result.Error)
			}
			res = result.RankResponse
		}
		return printRanks(cmd.OutOrStdout(), res.Sampling, res.Iteration)
	},
}

var submitApi string

func init() {
	submitCmd.Flags().StringVar(&submitApi, "api", "", "gRPC API server (e.g. 127.0.0.1:1234)")
	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", time.Minute, "time to wait for the result")
}
