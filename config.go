package datefmt

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Config captures formatter setup
type Config struct {
	Locale      string
	Engine      Engine
	DefaultDate Verbosity
	DefaultTime Verbosity
	Logger      zerolog.Logger

	engineOptions []EngineOption
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options.
// Format uses (full, full) unless WithDefaultVerbosity says otherwise.
func NewConfig(locale string, opts ...Option) (*Config, error) {
	cfg := &Config{
		Locale:      normalizeLocale(locale),
		DefaultDate: VerbosityFull,
		DefaultTime: VerbosityFull,
		Logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Engine == nil {
		if len(cfg.engineOptions) == 0 {
			cfg.Engine = DefaultEngine()
		} else {
			engineOpts := append([]EngineOption{WithEngineLogger(cfg.Logger)}, cfg.engineOptions...)
			cfg.Engine = NewCLDREngine(engineOpts...)
		}
	}

	return cfg, nil
}

// WithEngine replaces the rendering engine. Engine options given alongside it are ignored.
func WithEngine(engine Engine) Option {
	return func(c *Config) error {
		if engine == nil {
			return errors.New("datefmt: engine must not be nil")
		}
		c.Engine = engine
		return nil
	}
}

// WithEngineOptions configures the CLDR engine built when no engine is supplied.
func WithEngineOptions(opts ...EngineOption) Option {
	return func(c *Config) error {
		c.engineOptions = append(c.engineOptions, opts...)
		return nil
	}
}

// WithDefaultVerbosity sets the pair used by Format.
func WithDefaultVerbosity(date, tm Verbosity) Option {
	return func(c *Config) error {
		if !date.Valid() || !tm.Valid() {
			return fmt.Errorf("datefmt: invalid default verbosity (%d, %d)", int(date), int(tm))
		}
		c.DefaultDate = date
		c.DefaultTime = tm
		return nil
	}
}

// WithDefaultFormats is WithDefaultVerbosity by name; the date name is checked first.
func WithDefaultFormats(date, tm string) Option {
	return func(c *Config) error {
		dateVerbosity, err := ParseVerbosity(date)
		if err != nil {
			return err
		}
		timeVerbosity, err := ParseVerbosity(tm)
		if err != nil {
			return err
		}
		c.DefaultDate = dateVerbosity
		c.DefaultTime = timeVerbosity
		return nil
	}
}

// WithLocaleDataFiles loads JSON or YAML locale data and registers it with the default engine.
func WithLocaleDataFiles(paths ...string) Option {
	return func(c *Config) error {
		if len(paths) == 0 {
			return nil
		}
		data, err := NewLocaleDataLoader(paths...).Load()
		if err != nil {
			return err
		}
		c.engineOptions = append(c.engineOptions, WithLocaleData(data...))
		return nil
	}
}

// WithFallback adds an explicit fallback chain consulted after the locale's parents.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		c.engineOptions = append(c.engineOptions, WithEngineFallback(locale, fallbacks...))
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// BuildFormatter returns a DateTimeFormatter for the configured locale.
func (c *Config) BuildFormatter() *DateTimeFormatter {
	if c == nil {
		return nil
	}
	return &DateTimeFormatter{
		locale:      c.Locale,
		engine:      c.Engine,
		defaultDate: c.DefaultDate,
		defaultTime: c.DefaultTime,
		logger:      c.Logger,
	}
}
