package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/lioia/pagerank/pkg/api"
	"github.com/lioia/pagerank/pkg/utils"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP and gRPC ranking APIs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ranker, err := api.NewRanker(params(), env.CacheSize)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", env.Host, env.ApiPort))
		utils.FailOnError("Failed to listen for API server", err)
		server := grpc.NewServer()
		api.RegisterApiServer(server, &api.ApiServerImpl{Ranker: ranker})
		go func() {
			fmt.Printf("Starting API server at %s\n", lis.Addr().String())
			err := server.Serve(lis)
			utils.FailOnError("Failed to serve", err)
		}()

		e := api.NewHttpServer(ranker)
		go func() {
			address := fmt.Sprintf("%s:%d", env.Host, env.HttpPort)
			fmt.Printf("Starting HTTP server at %s\n", address)
			if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
				utils.FailOnError("Failed to serve", err)
			}
		}()

		<-ctx.Done()
		server.GracefulStop()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return e.Shutdown(shutdown)
	},
}
