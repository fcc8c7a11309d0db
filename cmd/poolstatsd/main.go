// Command poolstatsd runs an HTTP server that dispatches request handling
// onto a pool.Pool: the listener accepts connections and hands each one
// off as a single thunk, keeping the number of concurrently in-flight
// requests bounded by the pool's capacity.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecloudclub/threadpool/cmd/poolstatsd/internal/statsd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var addr string
	var capacity int
	var webhook string

	cmd := &cobra.Command{
		Use:           "poolstatsd",
		Short:         "Serve pool occupancy stats over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(addr, capacity, webhook)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	cmd.Flags().IntVar(&capacity, "capacity", 16, "pool worker capacity")
	cmd.Flags().StringVar(&webhook, "webhook", "", "optional URL to receive periodic stats snapshots")

	return cmd
}

func run(addr string, capacity int, webhook string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	srv, err := statsd.New(statsd.Config{
		Capacity: capacity,
		Webhook:  webhook,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}
	defer srv.Close()

	logger.Info("poolstatsd listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(addr); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
