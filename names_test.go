package datefmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendarNamesEnglish(t *testing.T) {
	names := calendarNamesFor("en-US", nil)

	assert.Equal(t, "January", names.months[0])
	assert.Equal(t, "December", names.months[11])
	assert.Equal(t, "Sep", names.monthsAbbreviated[8])
	assert.Equal(t, "Sunday", names.weekdays[0])
	assert.Equal(t, "Thursday", names.weekdays[4])
	assert.Equal(t, "Sat", names.weekdaysAbbreviated[6])
}

func TestCalendarNamesFromMonday(t *testing.T) {
	cases := []struct {
		locale   string
		january  string
		thursday string
	}{
		{"de", "Januar", "Donnerstag"},
		{"fr", "janvier", "jeudi"},
		{"es", "enero", "jueves"},
	}

	for _, tc := range cases {
		t.Run(tc.locale, func(t *testing.T) {
			names := calendarNamesFor(tc.locale, nil)
			assert.Equal(t, tc.january, names.months[0])
			assert.Equal(t, tc.thursday, names.weekdays[4])
		})
	}
}

func TestCalendarNamesOverrides(t *testing.T) {
	data := &LocaleData{
		Locale:   "nl",
		Months:   []string{"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
		Weekdays: []string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
	}

	names := calendarNamesFor("nl", data)
	assert.Equal(t, "maart", names.months[2])
	assert.Equal(t, "donderdag", names.weekdays[4])
}

func TestCalendarNamesIgnoreShortOverrides(t *testing.T) {
	data := &LocaleData{Locale: "en", Months: []string{"only", "two"}}

	names := calendarNamesFor("en", data)
	assert.Equal(t, "January", names.months[0])
}

func TestMondayLocaleFor(t *testing.T) {
	loc, ok := mondayLocaleFor("de-AT")
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(string(loc), "de"), "got %q", loc)

	loc, ok = mondayLocaleFor("fr_CA")
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(string(loc), "fr"), "got %q", loc)

	_, ok = mondayLocaleFor("")
	assert.False(t, ok)

	_, ok = mondayLocaleFor("not a locale")
	assert.False(t, ok)
}

func TestCalendarNamesFormatAndStandaloneMonths(t *testing.T) {
	ru := calendarNamesFor("ru", nil)
	assert.Equal(t, "ноября", ru.months[10])
	assert.Equal(t, "Ноябрь", ru.monthsStandalone[10])
	assert.Equal(t, "мая", ru.monthsAbbreviated[4])

	de := calendarNamesFor("de", nil)
	assert.Equal(t, de.months, de.monthsStandalone)

	data := &LocaleData{Locale: "ru", Months: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}}
	overridden := calendarNamesFor("ru", data)
	assert.Equal(t, "11", overridden.months[10])
	assert.Equal(t, "11", overridden.monthsStandalone[10])
}

func TestStripDay(t *testing.T) {
	assert.Equal(t, "января", stripDay("1 января"))
	assert.Equal(t, "janv.", stripDay("1 janv."))
	assert.Equal(t, "1月", stripDay("1 1月"))
}
