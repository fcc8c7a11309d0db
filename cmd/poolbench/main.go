// Command poolbench runs the pool's throughput, FIFO-order, lazy-growth,
// and concurrent-scheduling scenarios against a live pool.Pool and prints
// styled results to the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/ecloudclub/threadpool/cmd/poolbench/internal/bench"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "poolbench",
		Short:         "Benchmark the pool under the classic workload scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark scenarios and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := bench.Run(only)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bench.Render(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&only, "only", "", "run a single scenario by name (throughput, fifo, growth, concurrent)")
	return cmd
}
