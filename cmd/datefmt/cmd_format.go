package main

import (
	"time"

	"github.com/goliatone/go-datefmt"
	"github.com/spf13/cobra"
)

// formatCmd renders with the default verbosity pair.
func formatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Render date and time with the default styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.render(cmd.OutOrStdout(), func(f *datefmt.DateTimeFormatter, t time.Time) (string, error) {
				return f.Format(t)
			})
		},
	}
}

func dateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "date <style>",
		Short:     "Render only the date part",
		Args:      cobra.ExactArgs(1),
		ValidArgs: datefmt.SupportedFormats(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.render(cmd.OutOrStdout(), func(f *datefmt.DateTimeFormatter, t time.Time) (string, error) {
				return f.FormatDate(t, args[0])
			})
		},
	}
}

func timeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "time <style>",
		Short:     "Render only the time part",
		Args:      cobra.ExactArgs(1),
		ValidArgs: datefmt.SupportedFormats(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.render(cmd.OutOrStdout(), func(f *datefmt.DateTimeFormatter, t time.Time) (string, error) {
				return f.FormatTime(t, args[0])
			})
		},
	}
}

func datetimeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "datetime <date-style> <time-style>",
		Short: "Render date and time with explicit styles",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.render(cmd.OutOrStdout(), func(f *datefmt.DateTimeFormatter, t time.Time) (string, error) {
				return f.FormatDateTime(t, args[0], args[1])
			})
		},
	}
}
