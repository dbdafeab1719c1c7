package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vhurryharry/Oracle/feeder"
	"github.com/vhurryharry/Oracle/feeder/logging"
	"github.com/vhurryharry/Oracle/x/oracle/types"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle-feeder",
		Short: "Fetches configured feeds and extracts oracle observations",
	}
	cmd.AddCommand(startCmd())
	return cmd
}

func startCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the feed worker until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := feeder.LoadConfig(configPath)
			if err != nil {
				return err
			}
			targets, err := config.FeedTargets()
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				return fmt.Errorf("no feed targets configured")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			worker := feeder.NewWorker(
				feeder.StaticTargets(targets),
				feeder.NewFetcher(config.FetchTimeout),
				feeder.LogSubmitter{},
			)
			logging.Info("feeder starting", types.Feeds,
				"targets", len(targets), "interval", config.PollInterval.String())
			if err := worker.Run(ctx, config.PollInterval); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the feeder YAML config")
	return cmd
}
