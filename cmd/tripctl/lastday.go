package main

import (
	"fmt"
	"time"
	"trip-bot-service/internal/adapters/holiday"

	"github.com/spf13/cobra"
)

func newLastDayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lastday [YYYY-MM]",
		Short: "Print the last workday of a month (default: current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			month := time.Now().In(loc)
			if len(args) == 1 {
				month, err = time.ParseInLocation("2006-01", args[0], loc)
				if err != nil {
					return fmt.Errorf("month %q: want YYYY-MM", args[0])
				}
			}

			last, err := holiday.NewClient(cfg.Holiday.BaseURL, 0).LastWorkday(cmd.Context(), month)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), last.Format(time.DateOnly))
			return nil
		},
	}
}
