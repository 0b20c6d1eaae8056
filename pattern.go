package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// fallbackPattern is what ICU renders when both date and time are disabled.
const fallbackPattern = "yyyyMMdd hh:mm a"

const defaultGlue = "{1} {0}"

type patternToken struct {
	field   rune
	width   int
	literal string
}

// parsePattern splits a CLDR date pattern into field and literal tokens.
// ASCII letters are fields, text inside single quotes is literal and '' is a quote.
func parsePattern(pattern string) ([]patternToken, error) {
	var (
		tokens  []patternToken
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		tokens = append(tokens, patternToken{literal: literal.String()})
		literal.Reset()
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i++
				continue
			}
			closed := false
			for i++; i < len(runes); i++ {
				if runes[i] != '\'' {
					literal.WriteRune(runes[i])
					continue
				}
				if i+1 < len(runes) && runes[i+1] == '\'' {
					literal.WriteRune('\'')
					i++
					continue
				}
				closed = true
				break
			}
			if !closed {
				return nil, fmt.Errorf("datefmt: unterminated quote in pattern %q", pattern)
			}
		case isPatternLetter(r):
			flush()
			width := 1
			for i+1 < len(runes) && runes[i+1] == r {
				width++
				i++
			}
			tokens = append(tokens, patternToken{field: r, width: width})
		default:
			literal.WriteRune(r)
		}
	}
	flush()

	return tokens, nil
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// composePattern picks the pattern for a date/time verbosity pair.
func composePattern(data *LocaleData, date, tm Verbosity) (string, error) {
	switch {
	case date == VerbosityNone && tm == VerbosityNone:
		return fallbackPattern, nil
	case tm == VerbosityNone:
		return requirePattern(data.DateFormats.For(date), data.Locale, "date", date)
	case date == VerbosityNone:
		return requirePattern(data.TimeFormats.For(tm), data.Locale, "time", tm)
	}

	datePattern, err := requirePattern(data.DateFormats.For(date), data.Locale, "date", date)
	if err != nil {
		return "", err
	}
	timePattern, err := requirePattern(data.TimeFormats.For(tm), data.Locale, "time", tm)
	if err != nil {
		return "", err
	}

	glue := firstNonEmpty(data.DateTimeFormats.For(date), defaultGlue)
	return strings.NewReplacer("{1}", datePattern, "{0}", timePattern).Replace(glue), nil
}

func requirePattern(pattern, locale, kind string, v Verbosity) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: locale %q has no %s %s pattern", ErrInvalidLocaleData, locale, v, kind)
	}
	return pattern, nil
}

// expandGlue joins already rendered date and time strings using a glue pattern.
func expandGlue(glue, date, tm string) string {
	tokens, err := parsePattern(firstNonEmpty(glue, defaultGlue))
	if err != nil {
		tokens, _ = parsePattern(defaultGlue)
	}

	var b strings.Builder
	for _, token := range tokens {
		if token.field != 0 {
			b.WriteString(strings.Repeat(string(token.field), token.width))
			continue
		}
		b.WriteString(token.literal)
	}
	return strings.NewReplacer("{1}", date, "{0}", tm).Replace(b.String())
}

// patternRenderer renders a parsed CLDR pattern in a fixed zone.
type patternRenderer struct {
	pattern string
	tokens  []patternToken
	data    *LocaleData
	names   calendarNames
	loc     *time.Location
}

func (r *patternRenderer) Render(t time.Time) string {
	t = t.In(r.loc)

	var b strings.Builder
	for _, token := range r.tokens {
		if token.field == 0 {
			b.WriteString(token.literal)
			continue
		}
		r.appendField(&b, token, t)
	}
	return b.String()
}

// Pattern returns the CLDR pattern the renderer was built from.
func (r *patternRenderer) Pattern() string {
	return r.pattern
}

func (r *patternRenderer) appendField(b *strings.Builder, token patternToken, t time.Time) {
	width := token.width

	switch token.field {
	case 'G':
		b.WriteString(r.era(t.Year()))
	case 'y':
		year := t.Year()
		if year <= 0 {
			year = 1 - year
		}
		if width == 2 {
			b.WriteString(pad(year%100, 2))
			return
		}
		b.WriteString(pad(year, width))
	case 'u':
		b.WriteString(pad(t.Year(), width))
	case 'M', 'L':
		months, abbreviated := r.names.months, r.names.monthsAbbreviated
		if token.field == 'L' {
			months, abbreviated = r.names.monthsStandalone, r.names.monthsAbbreviatedStandalone
		}
		switch {
		case width <= 2:
			b.WriteString(pad(int(t.Month()), width))
		case width == 3:
			b.WriteString(abbreviated[t.Month()-1])
		case width == 4:
			b.WriteString(months[t.Month()-1])
		default:
			b.WriteString(firstRune(months[t.Month()-1]))
		}
	case 'd':
		b.WriteString(pad(t.Day(), width))
	case 'D':
		b.WriteString(pad(t.YearDay(), width))
	case 'E':
		switch {
		case width <= 3, width == 6:
			b.WriteString(r.names.weekdaysAbbreviated[t.Weekday()])
		case width == 4:
			b.WriteString(r.names.weekdays[t.Weekday()])
		default:
			b.WriteString(firstRune(r.names.weekdays[t.Weekday()]))
		}
	case 'e', 'c':
		switch {
		case width <= 2:
			b.WriteString(pad(localWeekday(t.Weekday(), r.data.firstWeekday()), width))
		case width == 3, width == 6:
			b.WriteString(r.names.weekdaysAbbreviated[t.Weekday()])
		case width == 4:
			b.WriteString(r.names.weekdays[t.Weekday()])
		default:
			b.WriteString(firstRune(r.names.weekdays[t.Weekday()]))
		}
	case 'a':
		if t.Hour() < 12 {
			b.WriteString(firstNonEmpty(r.data.AM, "AM"))
		} else {
			b.WriteString(firstNonEmpty(r.data.PM, "PM"))
		}
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		b.WriteString(pad(hour, width))
	case 'H':
		b.WriteString(pad(t.Hour(), width))
	case 'K':
		b.WriteString(pad(t.Hour()%12, width))
	case 'k':
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		b.WriteString(pad(hour, width))
	case 'm':
		b.WriteString(pad(t.Minute(), width))
	case 's':
		b.WriteString(pad(t.Second(), width))
	case 'S':
		b.WriteString(fraction(t.Nanosecond(), width))
	case 'z', 'v':
		b.WriteString(r.zoneName(t, width >= 4))
	case 'V':
		if width == 2 {
			b.WriteString(zoneID(r.loc))
			return
		}
		b.WriteString(r.zoneName(t, width >= 4))
	case 'Z':
		_, offset := t.Zone()
		switch {
		case width <= 3:
			b.WriteString(isoOffset(offset, false, false))
		case width == 4:
			b.WriteString(localizedGMT(r.data, offset, true))
		default:
			b.WriteString(isoOffset(offset, true, true))
		}
	case 'O':
		_, offset := t.Zone()
		b.WriteString(localizedGMT(r.data, offset, width >= 4))
	case 'X', 'x':
		_, offset := t.Zone()
		utcZ := token.field == 'X'
		switch width {
		case 1:
			b.WriteString(isoOffsetShort(offset, utcZ))
		case 2, 4:
			b.WriteString(isoOffset(offset, false, utcZ))
		default:
			b.WriteString(isoOffset(offset, true, utcZ))
		}
	default:
		b.WriteString(strings.Repeat(string(token.field), width))
	}
}

// localWeekday numbers the week from 1, starting at first.
func localWeekday(day, first time.Weekday) int {
	return (int(day)-int(first)+7)%7 + 1
}

func (r *patternRenderer) era(year int) string {
	eras := r.data.Eras
	if len(eras) != 2 {
		eras = []string{"BC", "AD"}
	}
	if year <= 0 {
		return eras[0]
	}
	return eras[1]
}

func pad(value, width int) string {
	if value < 0 {
		return "-" + pad(-value, width)
	}
	s := strconv.Itoa(value)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func fraction(nanos, width int) string {
	digits := fmt.Sprintf("%09d", nanos)
	if width <= len(digits) {
		return digits[:width]
	}
	return digits + strings.Repeat("0", width-len(digits))
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
