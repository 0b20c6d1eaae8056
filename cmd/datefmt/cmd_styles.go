package main

import (
	"fmt"

	"github.com/goliatone/go-datefmt"
	"github.com/spf13/cobra"
)

// stylesCmd lists the accepted verbosity names with their engine codes.
func stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List accepted style names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range datefmt.SupportedFormats() {
				v, err := datefmt.ParseVerbosity(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%-7s %2d\n", name, int(v)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type localeLister interface {
	Locales() []string
}

func localesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List locales the selected engine has data for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.newEngine(opts.logger())
			if err != nil {
				return err
			}

			lister, ok := engine.(localeLister)
			if !ok {
				return fmt.Errorf("engine %q cannot list locales", opts.engine)
			}

			out := cmd.OutOrStdout()
			for _, locale := range lister.Locales() {
				if _, err := fmt.Fprintln(out, locale); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
