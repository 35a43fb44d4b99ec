package main

import (
	"fmt"
	"trip-bot-service/internal/config"

	"github.com/spf13/cobra"
)

func newMessageCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "message <context>",
		Short: "Render a template message, e.g. time_report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.NewTemplates(cfg.Messages, nil).Message(args[0]))
			return nil
		},
	}
}
