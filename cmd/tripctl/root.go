package main

import (
	"fmt"
	"trip-bot-service/internal/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Operator tools for the trip bot",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", config.Get("CONFIG_PATH", "config.yaml"), "path to config.yaml")

	root.AddCommand(newTripCmd(opts), newLastDayCmd(opts), newMessageCmd(opts))
	return root
}

func (o *rootOptions) load() (*config.AppConfig, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("tripctl: %w", err)
	}
	return cfg, nil
}
