package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/biblemind/internal/config"
	"github.com/Nixie-Tech-LLC/biblemind/internal/dataset"
	"github.com/Nixie-Tech-LLC/biblemind/internal/logging"
	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

func newRootCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "readings",
		Short: "Look up the daily reading the API would serve",
		Long: `readings fetches the configured dataset (same environment variables as
the server) and prints the record served for --date, or for today (UTC)
when no date is given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel, true)

			source, closeSource, err := dataset.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeSource()

			return lookup(cmd, reading.NewService(source), date)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date to look up, DD-MM-YYYY")
	return cmd
}

func lookup(cmd *cobra.Command, service *reading.Service, date string) error {
	result, err := service.Lookup(cmd.Context(), date)
	if err != nil {
		if errors.Is(err, reading.ErrInvalidDateFormat) {
			return errors.New(reading.InvalidDateFormatMessage)
		}
		return err
	}

	if !result.Matched {
		fmt.Fprintln(cmd.ErrOrStderr(), "no record for this date, the API serves the fallback below")
	}
	return printJSON(cmd.OutOrStdout(), result.Record)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
