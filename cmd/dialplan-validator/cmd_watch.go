package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calvintwells/dialplan-validator/lintconfig"
	"github.com/calvintwells/dialplan-validator/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var configPath string
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <extensions.conf>",
		Short: "Revalidate a dialplan file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := lintconfig.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			interval := cfg.Watch.Debounce()
			if cmd.Flags().Changed("debounce") {
				interval = debounce
			}

			path := args[0]
			run := func() {
				validateOnce(path)
			}
			run()

			w, err := watch.New(path, interval, run)
			if err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
			w.Start()
			defer w.Stop()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			<-sigCh
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a tool configuration file")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "how long to coalesce change events")

	return cmd
}
