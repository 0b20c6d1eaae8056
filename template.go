package datefmt

import "time"

// HelperConfig configures template helper exports
type HelperConfig struct {
	// Prefix is prepended to every helper name, e.g. "dt_" exposes "dt_format_date".
	Prefix string
	// OnError, when set, turns rendering errors into output instead of aborting execution.
	OnError func(format string, err error) string
}

// TemplateHelpers exposes the formatter operations for go-template.
func TemplateHelpers(f Formatter, cfg HelperConfig) map[string]any {
	handle := func(format string, value string, err error) (string, error) {
		if err == nil {
			return value, nil
		}
		if cfg.OnError != nil {
			return cfg.OnError(format, err), nil
		}
		return "", err
	}

	return map[string]any{
		cfg.Prefix + "format_timestamp": func(t time.Time) (string, error) {
			if f == nil {
				return handle("", "", ErrNotConfigured)
			}
			value, err := f.Format(t)
			return handle("", value, err)
		},
		cfg.Prefix + "format_date": func(t time.Time, format string) (string, error) {
			if f == nil {
				return handle(format, "", ErrNotConfigured)
			}
			value, err := f.FormatDate(t, format)
			return handle(format, value, err)
		},
		cfg.Prefix + "format_time": func(t time.Time, format string) (string, error) {
			if f == nil {
				return handle(format, "", ErrNotConfigured)
			}
			value, err := f.FormatTime(t, format)
			return handle(format, value, err)
		},
		cfg.Prefix + "format_datetime": func(t time.Time, dateFormat, timeFormat string) (string, error) {
			if f == nil {
				return handle(dateFormat, "", ErrNotConfigured)
			}
			value, err := f.FormatDateTime(t, dateFormat, timeFormat)
			return handle(dateFormat+" "+timeFormat, value, err)
		},
	}
}
