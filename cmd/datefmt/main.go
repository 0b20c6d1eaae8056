// Package main provides the datefmt CLI, a thin shell over the datefmt package.
//
// Usage:
//
//	datefmt format                          # default (full, full) rendering
//	datefmt date short --locale de          # date only
//	datefmt time long --tz America/New_York # time only, in the given zone
//	datefmt datetime medium short           # both parts
//	datefmt styles                          # list verbosity names
//	datefmt locales --engine locales        # list locales an engine has data for
package main

import (
	"fmt"
	"io"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "datefmt",
		Short:         "Render timestamps with locale aware date and time styles",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.locale, "locale", "l", "en-US", "BCP 47 locale used for conventions")
	flags.StringVar(&opts.timezone, "tz", "", "IANA timezone the timestamp is converted to (default: timestamp zone)")
	flags.StringVar(&opts.at, "at", "", "RFC 3339 timestamp to render (default: now)")
	flags.StringVarP(&opts.engine, "engine", "e", engineCLDR, "rendering engine: cldr or locales")
	flags.StringSliceVar(&opts.dataFiles, "data", nil, "extra locale data files (JSON or YAML)")
	flags.StringSliceVar(&opts.fallbacks, "fallback", nil, "fallback locales tried after the locale's parents")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(
		formatCmd(opts),
		dateCmd(opts),
		timeCmd(opts),
		datetimeCmd(opts),
		stylesCmd(),
		localesCmd(opts),
	)

	return rootCmd
}
