package datefmt

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// CLDREngine renders CLDR date and time patterns from the bundled locale table
// plus any locale data registered through options.
type CLDREngine struct {
	table  *localeTable
	logger zerolog.Logger
}

var _ Engine = &CLDREngine{}

func NewCLDREngine(opts ...EngineOption) *CLDREngine {
	cfg := newEngineConfig(opts)
	return &CLDREngine{
		table:  newLocaleTable(cfg),
		logger: cfg.logger,
	}
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     *CLDREngine
)

// DefaultEngine returns a shared CLDREngine over the bundled locales.
func DefaultEngine() *CLDREngine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewCLDREngine()
	})
	return defaultEngine
}

func (e *CLDREngine) Renderer(cfg RendererConfig) (Renderer, error) {
	if e == nil || e.table == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, cfg.Locale)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	data, matched, err := e.table.resolve(cfg.Locale)
	if err != nil {
		return nil, err
	}

	pattern, err := composePattern(&data, cfg.Date, cfg.Time)
	if err != nil {
		return nil, err
	}
	tokens, err := parsePattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %v", ErrInvalidLocaleData, data.Locale, err)
	}

	loc := cfg.location()
	e.logger.Debug().
		Str("locale", cfg.Locale).
		Strs("resolved", matched).
		Str("date", cfg.Date.String()).
		Str("time", cfg.Time.String()).
		Str("timezone", loc.String()).
		Str("pattern", pattern).
		Msg("datefmt: cldr renderer")

	return &patternRenderer{
		pattern: pattern,
		tokens:  tokens,
		data:    &data,
		names:   calendarNamesFor(data.Locale, &data),
		loc:     loc,
	}, nil
}

// Locales lists the locales that carry data of their own.
func (e *CLDREngine) Locales() []string {
	if e == nil || e.table == nil {
		return nil
	}
	return e.table.locales()
}

// LocaleData returns the effective data for locale after parent and fallback inheritance.
func (e *CLDREngine) LocaleData(locale string) (LocaleData, error) {
	if e == nil || e.table == nil {
		return LocaleData{}, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	data, _, err := e.table.resolve(locale)
	if err != nil {
		return LocaleData{}, err
	}
	return data.Clone(), nil
}

// Pattern returns the pattern a renderer for cfg would use.
func (e *CLDREngine) Pattern(cfg RendererConfig) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}
	data, err := e.LocaleData(cfg.Locale)
	if err != nil {
		return "", err
	}
	return composePattern(&data, cfg.Date, cfg.Time)
}

// BuiltinLocales lists the locales bundled in the generated CLDR table.
func BuiltinLocales() []string {
	out := make([]string, 0, len(cldrLocaleData))
	for _, entry := range cldrLocaleData {
		out = append(out, entry.Locale)
	}
	return sortedLocales(out)
}
