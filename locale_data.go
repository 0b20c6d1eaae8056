package datefmt

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// LocaleData holds the CLDR calendar data needed to render dates for one locale.
// Empty fields are inherited from the parent locale when the engine resolves data.
type LocaleData struct {
	Locale          string        `json:"locale" yaml:"locale" validate:"required"`
	DateFormats     StylePatterns `json:"date_formats" yaml:"date_formats"`
	TimeFormats     StylePatterns `json:"time_formats" yaml:"time_formats"`
	DateTimeFormats GluePatterns  `json:"datetime_formats" yaml:"datetime_formats"`

	AM   string   `json:"am,omitempty" yaml:"am,omitempty"`
	PM   string   `json:"pm,omitempty" yaml:"pm,omitempty"`
	Eras []string `json:"eras,omitempty" yaml:"eras,omitempty" validate:"omitempty,len=2"`
	// FirstDay is the first day of the week ("sun", "mon", ...) used by numeric e and c fields.
	FirstDay string `json:"first_day,omitempty" yaml:"first_day,omitempty" validate:"omitempty,oneof=sun mon tue wed thu fri sat"`

	// GMTFormat wraps an offset, e.g. "GMT{0}". HourFormat is "+HH:mm;-HH:mm".
	GMTFormat     string               `json:"gmt_format,omitempty" yaml:"gmt_format,omitempty" validate:"omitempty,contains={0}"`
	GMTZeroFormat string               `json:"gmt_zero_format,omitempty" yaml:"gmt_zero_format,omitempty"`
	HourFormat    string               `json:"hour_format,omitempty" yaml:"hour_format,omitempty" validate:"omitempty,contains=;"`
	ZoneNames     map[string]ZoneNames `json:"zone_names,omitempty" yaml:"zone_names,omitempty"`

	// Name overrides; when empty, names come from the monday tables.
	Months              []string `json:"months,omitempty" yaml:"months,omitempty" validate:"omitempty,len=12"`
	MonthsAbbreviated   []string `json:"months_abbreviated,omitempty" yaml:"months_abbreviated,omitempty" validate:"omitempty,len=12"`
	Weekdays            []string `json:"weekdays,omitempty" yaml:"weekdays,omitempty" validate:"omitempty,len=7"`
	WeekdaysAbbreviated []string `json:"weekdays_abbreviated,omitempty" yaml:"weekdays_abbreviated,omitempty" validate:"omitempty,len=7"`
}

// StylePatterns holds one CLDR pattern per verbosity.
type StylePatterns struct {
	Full   string `json:"full,omitempty" yaml:"full,omitempty" validate:"omitempty,cldr_pattern"`
	Long   string `json:"long,omitempty" yaml:"long,omitempty" validate:"omitempty,cldr_pattern"`
	Medium string `json:"medium,omitempty" yaml:"medium,omitempty" validate:"omitempty,cldr_pattern"`
	Short  string `json:"short,omitempty" yaml:"short,omitempty" validate:"omitempty,cldr_pattern"`
}

// GluePatterns combine a date pattern ({1}) and a time pattern ({0}), keyed by the date verbosity.
type GluePatterns struct {
	Full   string `json:"full,omitempty" yaml:"full,omitempty" validate:"omitempty,cldr_glue"`
	Long   string `json:"long,omitempty" yaml:"long,omitempty" validate:"omitempty,cldr_glue"`
	Medium string `json:"medium,omitempty" yaml:"medium,omitempty" validate:"omitempty,cldr_glue"`
	Short  string `json:"short,omitempty" yaml:"short,omitempty" validate:"omitempty,cldr_glue"`
}

// ZoneNames are the display names of a single IANA zone.
type ZoneNames struct {
	Long          string `json:"long,omitempty" yaml:"long,omitempty"`
	LongDaylight  string `json:"long_daylight,omitempty" yaml:"long_daylight,omitempty"`
	Short         string `json:"short,omitempty" yaml:"short,omitempty"`
	ShortDaylight string `json:"short_daylight,omitempty" yaml:"short_daylight,omitempty"`
}

func (p StylePatterns) For(v Verbosity) string {
	switch v {
	case VerbosityFull:
		return p.Full
	case VerbosityLong:
		return p.Long
	case VerbosityMedium:
		return p.Medium
	case VerbosityShort:
		return p.Short
	default:
		return ""
	}
}

func (p GluePatterns) For(v Verbosity) string {
	return StylePatterns(p).For(v)
}

func (p StylePatterns) merge(src StylePatterns) StylePatterns {
	p.Full = firstNonEmpty(src.Full, p.Full)
	p.Long = firstNonEmpty(src.Long, p.Long)
	p.Medium = firstNonEmpty(src.Medium, p.Medium)
	p.Short = firstNonEmpty(src.Short, p.Short)
	return p
}

// Clone returns a deep copy.
func (d LocaleData) Clone() LocaleData {
	out := d
	out.Eras = cloneStrings(d.Eras)
	out.Months = cloneStrings(d.Months)
	out.MonthsAbbreviated = cloneStrings(d.MonthsAbbreviated)
	out.Weekdays = cloneStrings(d.Weekdays)
	out.WeekdaysAbbreviated = cloneStrings(d.WeekdaysAbbreviated)
	if len(d.ZoneNames) > 0 {
		out.ZoneNames = make(map[string]ZoneNames, len(d.ZoneNames))
		for zone, names := range d.ZoneNames {
			out.ZoneNames[zone] = names
		}
	}
	return out
}

// mergeLocaleData overlays the non-empty fields of src onto dest (src takes precedence).
func mergeLocaleData(dest *LocaleData, src LocaleData) {
	dest.Locale = firstNonEmpty(src.Locale, dest.Locale)
	dest.DateFormats = dest.DateFormats.merge(src.DateFormats)
	dest.TimeFormats = dest.TimeFormats.merge(src.TimeFormats)
	dest.DateTimeFormats = GluePatterns(StylePatterns(dest.DateTimeFormats).merge(StylePatterns(src.DateTimeFormats)))

	dest.AM = firstNonEmpty(src.AM, dest.AM)
	dest.PM = firstNonEmpty(src.PM, dest.PM)
	dest.FirstDay = firstNonEmpty(src.FirstDay, dest.FirstDay)
	dest.GMTFormat = firstNonEmpty(src.GMTFormat, dest.GMTFormat)
	dest.GMTZeroFormat = firstNonEmpty(src.GMTZeroFormat, dest.GMTZeroFormat)
	dest.HourFormat = firstNonEmpty(src.HourFormat, dest.HourFormat)

	if len(src.Eras) > 0 {
		dest.Eras = cloneStrings(src.Eras)
	}
	if len(src.Months) > 0 {
		dest.Months = cloneStrings(src.Months)
	}
	if len(src.MonthsAbbreviated) > 0 {
		dest.MonthsAbbreviated = cloneStrings(src.MonthsAbbreviated)
	}
	if len(src.Weekdays) > 0 {
		dest.Weekdays = cloneStrings(src.Weekdays)
	}
	if len(src.WeekdaysAbbreviated) > 0 {
		dest.WeekdaysAbbreviated = cloneStrings(src.WeekdaysAbbreviated)
	}

	if len(src.ZoneNames) > 0 {
		if dest.ZoneNames == nil {
			dest.ZoneNames = make(map[string]ZoneNames, len(src.ZoneNames))
		}
		for zone, names := range src.ZoneNames {
			dest.ZoneNames[zone] = names
		}
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func localeDataValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("cldr_pattern", func(fl validator.FieldLevel) bool {
			_, err := parsePattern(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("cldr_glue", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if !strings.Contains(value, "{0}") || !strings.Contains(value, "{1}") {
				return false
			}
			_, err := parsePattern(value)
			return err == nil
		})
	})
	return validate
}

// ValidateLocaleData checks field syntax: pattern quoting, glue placeholders and name list sizes.
func ValidateLocaleData(data LocaleData) error {
	if err := localeDataValidator().Struct(data); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			problems := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				problems = append(problems, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: locale %q: %s", ErrInvalidLocaleData, data.Locale, strings.Join(problems, "; "))
		}
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidLocaleData, data.Locale, err)
	}
	return nil
}

var weekdayCodes = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// firstWeekday returns the configured first day of the week, Sunday when unset.
func (d *LocaleData) firstWeekday() time.Weekday {
	if d == nil {
		return time.Sunday
	}
	if day, ok := weekdayCodes[d.FirstDay]; ok {
		return day
	}
	return time.Sunday
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}
