package datefmt

import (
	"fmt"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_MX"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/pt_BR"
	"github.com/rs/zerolog"
)

// fallbackLayout is the Go layout equivalent of fallbackPattern.
const fallbackLayout = "20060102 03:04 PM"

const localesDefaultGlue = "{1}, {0}"

// LocalesEngine renders through go-playground/locales CLDR translators.
// Date-time glue patterns still come from the locale table.
type LocalesEngine struct {
	translators map[string]locales.Translator
	table       *localeTable
	logger      zerolog.Logger
}

var _ Engine = &LocalesEngine{}

// WithTranslators registers extra translators, keyed by their Locale().
func WithTranslators(translators ...locales.Translator) EngineOption {
	return func(ec *engineConfig) {
		for _, translator := range translators {
			if translator == nil {
				continue
			}
			ec.translators = append(ec.translators, translator)
		}
	}
}

func builtinTranslators() []locales.Translator {
	return []locales.Translator{
		de.New(),
		en.New(),
		en_GB.New(),
		en_US.New(),
		es.New(),
		es_MX.New(),
		fr.New(),
		pt_BR.New(),
	}
}

func NewLocalesEngine(opts ...EngineOption) *LocalesEngine {
	cfg := newEngineConfig(opts)

	engine := &LocalesEngine{
		translators: make(map[string]locales.Translator),
		table:       newLocaleTable(cfg),
		logger:      cfg.logger,
	}

	var translators []locales.Translator
	if !cfg.skipBuiltin {
		translators = builtinTranslators()
	}
	translators = append(translators, cfg.translators...)
	for _, translator := range translators {
		if key := canonicalLocale(translator.Locale()); key != "" {
			engine.translators[key] = translator
		}
	}

	return engine
}

func (e *LocalesEngine) Renderer(cfg RendererConfig) (Renderer, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, cfg.Locale)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	loc := cfg.location()
	if cfg.Date == VerbosityNone && cfg.Time == VerbosityNone {
		return RendererFunc(func(t time.Time) string {
			return t.In(loc).Format(fallbackLayout)
		}), nil
	}

	translator, matched := e.translator(cfg.Locale)
	if translator == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, cfg.Locale)
	}

	dateFn := dateFunc(translator, cfg.Date)
	timeFn := timeFunc(translator, cfg.Time)

	glue := localesDefaultGlue
	if data, _, err := e.table.resolve(cfg.Locale); err == nil {
		glue = firstNonEmpty(data.DateTimeFormats.For(cfg.Date), glue)
	}

	e.logger.Debug().
		Str("locale", cfg.Locale).
		Str("translator", matched).
		Str("date", cfg.Date.String()).
		Str("time", cfg.Time.String()).
		Str("timezone", loc.String()).
		Msg("datefmt: locales renderer")

	return RendererFunc(func(t time.Time) string {
		t = t.In(loc)
		switch {
		case timeFn == nil:
			return dateFn(t)
		case dateFn == nil:
			return timeFn(t)
		default:
			return expandGlue(glue, dateFn(t), timeFn(t))
		}
	}), nil
}

// Locales lists the locales with a registered translator.
func (e *LocalesEngine) Locales() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.translators))
	for locale := range e.translators {
		out = append(out, locale)
	}
	return sortedLocales(out)
}

func (e *LocalesEngine) translator(locale string) (locales.Translator, string) {
	for _, candidate := range candidateLocales(locale, e.table.resolver) {
		if translator, ok := e.translators[candidate]; ok {
			return translator, candidate
		}
	}
	return nil, ""
}

func dateFunc(tr locales.Translator, v Verbosity) func(time.Time) string {
	switch v {
	case VerbosityFull:
		return tr.FmtDateFull
	case VerbosityLong:
		return tr.FmtDateLong
	case VerbosityMedium:
		return tr.FmtDateMedium
	case VerbosityShort:
		return tr.FmtDateShort
	default:
		return nil
	}
}

func timeFunc(tr locales.Translator, v Verbosity) func(time.Time) string {
	switch v {
	case VerbosityFull:
		return tr.FmtTimeFull
	case VerbosityLong:
		return tr.FmtTimeLong
	case VerbosityMedium:
		return tr.FmtTimeMedium
	case VerbosityShort:
		return tr.FmtTimeShort
	default:
		return nil
	}
}
