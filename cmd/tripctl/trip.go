package main

import (
	"encoding/json"
	"fmt"
	"time"
	"trip-bot-service/internal/adapters/sl"
	"trip-bot-service/internal/adapters/slack"
	"trip-bot-service/internal/config"
	"trip-bot-service/internal/services"

	"github.com/spf13/cobra"
)

func newTripCmd(opts *rootOptions) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "trip <from> <to>",
		Short: "Look up trips synchronously and print the Slack blocks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			env, err := config.LoadEnv()
			if err != nil {
				return err
			}
			client, err := sl.NewClient(sl.Config{
				BaseURL:           cfg.SL.BaseURL,
				TripAPIKey:        env.TripAPIKey,
				StationAPIKey:     env.StationAPIKey,
				RequestsPerSecond: cfg.SL.RequestsPerSecond,
				Timeout:           cfg.SLTimeout(),
			})
			if err != nil {
				return err
			}

			formatter := services.NewItineraryFormatter(loc, time.Now)
			if cfg.Trip.MaxItineraries > 0 {
				formatter.MaxItineraries = cfg.Trip.MaxItineraries
			}
			wf := &services.TripWorkflow{Searcher: client, Planner: client, Formatter: formatter}

			msg, err := wf.Plan(cmd.Context(), args[0], args[1])
			if err != nil {
				cmd.PrintErrln(services.UserMessage(err))
				return err
			}

			if plain {
				for _, b := range msg.Blocks {
					if b.Text != "" {
						fmt.Fprintln(cmd.OutOrStdout(), b.Text)
					}
					for _, f := range b.Fields {
						fmt.Fprintln(cmd.OutOrStdout(), f)
					}
				}
				return nil
			}

			data, err := json.MarshalIndent(slack.EncodeMessage(msg), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal payload: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print block texts instead of JSON")
	return cmd
}
