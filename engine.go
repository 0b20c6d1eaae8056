package datefmt

import (
	"fmt"
	"time"

	"github.com/go-playground/locales"
	"github.com/rs/zerolog"
)

// RendererConfig identifies the formatter a caller wants: locale conventions,
// the verbosity of each part and the zone used for wall clock conversion.
type RendererConfig struct {
	Locale   string
	Date     Verbosity
	Time     Verbosity
	Timezone *time.Location
}

func (cfg RendererConfig) validate() error {
	if !cfg.Date.Valid() {
		return fmt.Errorf("datefmt: invalid date verbosity %d", int(cfg.Date))
	}
	if !cfg.Time.Valid() {
		return fmt.Errorf("datefmt: invalid time verbosity %d", int(cfg.Time))
	}
	return nil
}

func (cfg RendererConfig) location() *time.Location {
	if cfg.Timezone == nil {
		return time.UTC
	}
	return cfg.Timezone
}

// Engine builds locale aware renderers.
type Engine interface {
	Renderer(cfg RendererConfig) (Renderer, error)
}

// Renderer turns an instant into a string. Implementations are read only and safe for concurrent use.
type Renderer interface {
	Render(t time.Time) string
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(cfg RendererConfig) (Renderer, error)

func (fn EngineFunc) Renderer(cfg RendererConfig) (Renderer, error) {
	return fn(cfg)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(t time.Time) string

func (fn RendererFunc) Render(t time.Time) string {
	return fn(t)
}

type engineConfig struct {
	data        []LocaleData
	translators []locales.Translator
	resolver    FallbackResolver
	fallbacks   *StaticFallbackResolver
	logger      zerolog.Logger
	skipBuiltin bool
}

// EngineOption configures the bundled engines.
type EngineOption func(*engineConfig)

// WithLocaleData registers or overrides locale data. Later entries win field by field.
func WithLocaleData(data ...LocaleData) EngineOption {
	return func(ec *engineConfig) {
		for _, entry := range data {
			ec.data = append(ec.data, entry.Clone())
		}
	}
}

// WithoutBuiltinLocales drops the bundled locale tables, only explicitly registered locales are used.
func WithoutBuiltinLocales() EngineOption {
	return func(ec *engineConfig) {
		ec.skipBuiltin = true
	}
}

// WithEngineResolver sets the resolver consulted after a locale's own parent chain.
func WithEngineResolver(resolver FallbackResolver) EngineOption {
	return func(ec *engineConfig) {
		ec.resolver = resolver
	}
}

// WithEngineFallback adds an explicit fallback chain for locale. Explicit chains are
// consulted before the chain of a resolver set with WithEngineResolver.
func WithEngineFallback(locale string, fallbacks ...string) EngineOption {
	return func(ec *engineConfig) {
		if locale == "" {
			return
		}
		if ec.fallbacks == nil {
			ec.fallbacks = NewStaticFallbackResolver()
		}
		ec.fallbacks.Set(locale, fallbacks...)
	}
}

func WithEngineLogger(logger zerolog.Logger) EngineOption {
	return func(ec *engineConfig) {
		ec.logger = logger
	}
}

func (ec engineConfig) fallbackResolver() FallbackResolver {
	switch {
	case ec.fallbacks == nil:
		return ec.resolver
	case ec.resolver == nil:
		return ec.fallbacks
	default:
		return FallbackChain{ec.fallbacks, ec.resolver}
	}
}

func newEngineConfig(opts []EngineOption) engineConfig {
	cfg := engineConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// localeTable is an immutable set of locale data keyed by canonical locale.
type localeTable struct {
	entries  map[string]LocaleData
	resolver FallbackResolver
}

func newLocaleTable(cfg engineConfig) *localeTable {
	table := &localeTable{
		entries:  make(map[string]LocaleData),
		resolver: cfg.fallbackResolver(),
	}

	if !cfg.skipBuiltin {
		for _, entry := range cldrLocaleData {
			table.add(entry)
		}
	}
	for _, entry := range cfg.data {
		table.add(entry)
	}

	return table
}

func (t *localeTable) add(data LocaleData) {
	key := canonicalLocale(data.Locale)
	if key == "" {
		return
	}
	data = data.Clone()
	data.Locale = key

	existing, ok := t.entries[key]
	if !ok {
		t.entries[key] = data
		return
	}
	mergeLocaleData(&existing, data)
	t.entries[key] = existing
}

// resolve merges the candidate chain from least to most specific so the requested locale wins.
// It reports the candidates that contributed data.
func (t *localeTable) resolve(locale string) (LocaleData, []string, error) {
	candidates := candidateLocales(locale, t.resolver)

	var matched []string
	for _, candidate := range candidates {
		if _, ok := t.entries[candidate]; ok {
			matched = append(matched, candidate)
		}
	}
	if len(matched) == 0 {
		return LocaleData{}, nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	var effective LocaleData
	for i := len(matched) - 1; i >= 0; i-- {
		mergeLocaleData(&effective, t.entries[matched[i]])
	}
	effective.Locale = matched[0]

	return effective, matched, nil
}

func (t *localeTable) locales() []string {
	out := make([]string, 0, len(t.entries))
	for locale := range t.entries {
		out = append(out, locale)
	}
	return sortedLocales(out)
}
