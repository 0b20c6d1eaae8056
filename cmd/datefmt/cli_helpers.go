package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goliatone/go-datefmt"
	"github.com/rs/zerolog"
)

const (
	engineCLDR    = "cldr"
	engineLocales = "locales"
)

type rootOptions struct {
	locale    string
	timezone  string
	at        string
	engine    string
	dataFiles []string
	fallbacks []string
	verbose   bool

	stderr io.Writer
}

func (o *rootOptions) logger() zerolog.Logger {
	out := o.stderr
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// engineOptions collects the engine settings shared by both engines.
func (o *rootOptions) engineOptions(logger zerolog.Logger) ([]datefmt.EngineOption, error) {
	opts := []datefmt.EngineOption{datefmt.WithEngineLogger(logger)}

	if len(o.dataFiles) > 0 {
		data, err := datefmt.NewLocaleDataLoader(o.dataFiles...).Load()
		if err != nil {
			return nil, err
		}
		opts = append(opts, datefmt.WithLocaleData(data...))
	}
	if len(o.fallbacks) > 0 {
		opts = append(opts, datefmt.WithEngineFallback(o.locale, o.fallbacks...))
	}

	return opts, nil
}

func (o *rootOptions) newEngine(logger zerolog.Logger) (datefmt.Engine, error) {
	engineOpts, err := o.engineOptions(logger)
	if err != nil {
		return nil, err
	}

	switch o.engine {
	case engineCLDR, "":
		return datefmt.NewCLDREngine(engineOpts...), nil
	case engineLocales:
		return datefmt.NewLocalesEngine(engineOpts...), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (expected %s or %s)", o.engine, engineCLDR, engineLocales)
	}
}

func (o *rootOptions) newFormatter() (*datefmt.DateTimeFormatter, error) {
	logger := o.logger()

	engine, err := o.newEngine(logger)
	if err != nil {
		return nil, err
	}

	return datefmt.New(o.locale,
		datefmt.WithEngine(engine),
		datefmt.WithLogger(logger),
	)
}

// timestamp resolves --at and --tz. The zone only changes the wall clock, never the instant.
func (o *rootOptions) timestamp() (time.Time, error) {
	t := time.Now()
	if o.at != "" {
		parsed, err := time.Parse(time.RFC3339Nano, o.at)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --at value %q: %w", o.at, err)
		}
		t = parsed
	}

	if o.timezone != "" {
		loc, err := time.LoadLocation(o.timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --tz value %q: %w", o.timezone, err)
		}
		t = t.In(loc)
	}

	return t, nil
}

// render builds the formatter and timestamp, then prints what fn returns.
func (o *rootOptions) render(out io.Writer, fn func(*datefmt.DateTimeFormatter, time.Time) (string, error)) error {
	formatter, err := o.newFormatter()
	if err != nil {
		return err
	}

	t, err := o.timestamp()
	if err != nil {
		return err
	}

	value, err := fn(formatter, t)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, value)
	return err
}
