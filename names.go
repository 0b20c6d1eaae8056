package datefmt

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// months are the format-context forms used after a day number (genitive in ru, pl, uk);
// monthsStandalone are the nominative forms for L.
type calendarNames struct {
	months                      [12]string
	monthsAbbreviated           [12]string
	monthsStandalone            [12]string
	monthsAbbreviatedStandalone [12]string
	weekdays                    [7]string
	weekdaysAbbreviated         [7]string
}

// referenceDay is a Sunday; adding n days walks the week in time.Weekday order.
var referenceDay = time.Date(2006, time.January, 1, 12, 0, 0, 0, time.UTC)

// calendarNamesFor builds month and weekday names for locale.
// Overrides in data win, then monday tables, then the English names from package time.
func calendarNamesFor(locale string, data *LocaleData) calendarNames {
	var names calendarNames

	mondayLocale, localized := mondayLocaleFor(locale)
	render := func(t time.Time, layout string) string {
		if localized {
			return monday.Format(t, layout, mondayLocale)
		}
		return t.Format(layout)
	}

	for i := 0; i < 12; i++ {
		ref := time.Date(2006, time.Month(i+1), 1, 12, 0, 0, 0, time.UTC)
		names.months[i] = stripDay(render(ref, "2 January"))
		names.monthsAbbreviated[i] = stripDay(render(ref, "2 Jan"))
		names.monthsStandalone[i] = render(ref, "January")
		names.monthsAbbreviatedStandalone[i] = render(ref, "Jan")
	}
	for i := 0; i < 7; i++ {
		ref := referenceDay.AddDate(0, 0, i)
		names.weekdays[i] = render(ref, "Monday")
		names.weekdaysAbbreviated[i] = render(ref, "Mon")
	}

	if data == nil {
		return names
	}
	if len(data.Months) == 12 {
		copy(names.months[:], data.Months)
		copy(names.monthsStandalone[:], data.Months)
	}
	if len(data.MonthsAbbreviated) == 12 {
		copy(names.monthsAbbreviated[:], data.MonthsAbbreviated)
		copy(names.monthsAbbreviatedStandalone[:], data.MonthsAbbreviated)
	}
	if len(data.Weekdays) == 7 {
		copy(names.weekdays[:], data.Weekdays)
	}
	if len(data.WeekdaysAbbreviated) == 7 {
		copy(names.weekdaysAbbreviated[:], data.WeekdaysAbbreviated)
	}

	return names
}

// stripDay drops the leading day number rendered by a "2 January" layout.
func stripDay(value string) string {
	return strings.TrimLeft(strings.TrimLeft(value, "0123456789"), " ")
}

var (
	mondayOnce    sync.Once
	mondayLocales []monday.Locale
	mondayMatcher language.Matcher
)

// mondayLocaleFor maps a BCP 47 locale onto the closest monday locale of the same language.
func mondayLocaleFor(locale string) (monday.Locale, bool) {
	mondayOnce.Do(func() {
		mondayLocales = monday.ListLocales()
		sort.Slice(mondayLocales, func(i, j int) bool {
			return mondayLocales[i] < mondayLocales[j]
		})

		tags := make([]language.Tag, 0, len(mondayLocales))
		for _, loc := range mondayLocales {
			tags = append(tags, language.Make(strings.ReplaceAll(string(loc), "_", "-")))
		}
		mondayMatcher = language.NewMatcher(tags)
	})

	if len(mondayLocales) == 0 || locale == "" {
		return "", false
	}

	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return "", false
	}

	_, index, confidence := mondayMatcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(mondayLocales) {
		return "", false
	}

	return mondayLocales[index], true
}
