package datefmt

import (
	"time"

	"github.com/rs/zerolog"
)

// Formatter renders timestamps in a fixed locale at named verbosity levels.
// The timezone always comes from the timestamp, the locale only selects conventions.
type Formatter interface {
	Locale() string
	Format(t time.Time) (string, error)
	FormatDate(t time.Time, format string) (string, error)
	FormatTime(t time.Time, format string) (string, error)
	FormatDateTime(t time.Time, dateFormat, timeFormat string) (string, error)
}

// DateTimeFormatter is the default Formatter. It is immutable and safe for concurrent use.
type DateTimeFormatter struct {
	locale      string
	engine      Engine
	defaultDate Verbosity
	defaultTime Verbosity
	logger      zerolog.Logger
}

var _ Formatter = &DateTimeFormatter{}

// New builds a formatter for locale.
func New(locale string, opts ...Option) (*DateTimeFormatter, error) {
	cfg, err := NewConfig(locale, opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildFormatter(), nil
}

func (f *DateTimeFormatter) Locale() string {
	if f == nil {
		return ""
	}
	return f.locale
}

// DefaultVerbosity reports the pair Format renders with.
func (f *DateTimeFormatter) DefaultVerbosity() (date, tm Verbosity) {
	if f == nil {
		return VerbosityFull, VerbosityFull
	}
	return f.defaultDate, f.defaultTime
}

// Format renders t with the default date and time verbosity.
func (f *DateTimeFormatter) Format(t time.Time) (string, error) {
	if f == nil {
		return "", ErrNotConfigured
	}
	return f.render(t, f.defaultDate, f.defaultTime)
}

// FormatDate renders only the date part of t.
func (f *DateTimeFormatter) FormatDate(t time.Time, format string) (string, error) {
	date, err := ParseVerbosity(format)
	if err != nil {
		return "", err
	}
	return f.render(t, date, VerbosityNone)
}

// FormatTime renders only the time part of t.
func (f *DateTimeFormatter) FormatTime(t time.Time, format string) (string, error) {
	tm, err := ParseVerbosity(format)
	if err != nil {
		return "", err
	}
	return f.render(t, VerbosityNone, tm)
}

// FormatDateTime renders both parts. The date format is validated before the time format.
func (f *DateTimeFormatter) FormatDateTime(t time.Time, dateFormat, timeFormat string) (string, error) {
	date, err := ParseVerbosity(dateFormat)
	if err != nil {
		return "", err
	}
	tm, err := ParseVerbosity(timeFormat)
	if err != nil {
		return "", err
	}
	return f.render(t, date, tm)
}

func (f *DateTimeFormatter) render(t time.Time, date, tm Verbosity) (string, error) {
	if f == nil || f.engine == nil {
		return "", ErrNotConfigured
	}

	renderer, err := f.engine.Renderer(RendererConfig{
		Locale:   f.locale,
		Date:     date,
		Time:     tm,
		Timezone: t.Location(),
	})
	if err != nil {
		f.logger.Debug().Err(err).Str("locale", f.locale).Msg("datefmt: renderer unavailable")
		return "", err
	}

	return renderer.Render(t), nil
}
