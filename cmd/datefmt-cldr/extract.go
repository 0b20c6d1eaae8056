package main

import (
	"errors"
	"sort"
	"strings"

	"github.com/goliatone/go-datefmt"
	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

// utcAliases are the location names Go reports for UTC.
var utcAliases = []string{"Etc/UTC", "UTC"}

type zoneWidth struct {
	standard string
	daylight string
}

// extractLocale reads the locale's own gregorian data; inherited values stay empty
// so the runtime resolves them through the parent chain.
func extractLocale(locale string, ldml *cldr.LDML, zones map[string]string) (datefmt.LocaleData, error) {
	data := datefmt.LocaleData{Locale: locale}
	if ldml == nil || ldml.Dates == nil {
		return data, errors.New("missing dates section")
	}

	if ldml.Dates.Calendars != nil {
		for _, calendar := range ldml.Dates.Calendars.Calendar {
			if calendar.Type != "gregorian" {
				continue
			}
			extractCalendar(&data, calendar)
		}
	}

	if names := ldml.Dates.TimeZoneNames; names != nil {
		data.HourFormat = firstData(names.HourFormat)
		data.GMTFormat = firstData(names.GmtFormat)
		data.GMTZeroFormat = firstData(names.GmtZeroFormat)
		data.ZoneNames = extractZoneNames(names, zones)
	}

	return data, nil
}

func extractCalendar(data *datefmt.LocaleData, calendar *cldr.Calendar) {
	if calendar.DateFormats != nil {
		for _, length := range calendar.DateFormats.DateFormatLength {
			for _, format := range length.DateFormat {
				for _, pattern := range format.Pattern {
					if pattern.Alt != "" || pattern.Numbers != "" {
						continue
					}
					setStyle(&data.DateFormats, length.Type, pattern.Data())
					break
				}
			}
		}
	}

	if calendar.TimeFormats != nil {
		for _, length := range calendar.TimeFormats.TimeFormatLength {
			for _, format := range length.TimeFormat {
				for _, pattern := range format.Pattern {
					if pattern.Alt != "" || pattern.Numbers != "" {
						continue
					}
					setStyle(&data.TimeFormats, length.Type, pattern.Data())
					break
				}
			}
		}
	}

	if calendar.DateTimeFormats != nil {
		glue := datefmt.StylePatterns(data.DateTimeFormats)
		for _, length := range calendar.DateTimeFormats.DateTimeFormatLength {
			for _, format := range length.DateTimeFormat {
				if format.Type != "" && format.Type != "standard" {
					continue
				}
				for _, pattern := range format.Pattern {
					if pattern.Alt != "" {
						continue
					}
					setStyle(&glue, length.Type, pattern.Data())
					break
				}
			}
		}
		data.DateTimeFormats = datefmt.GluePatterns(glue)
	}

	if calendar.DayPeriods != nil {
		for _, context := range calendar.DayPeriods.DayPeriodContext {
			if context.Type != "format" {
				continue
			}
			for _, width := range context.DayPeriodWidth {
				if width.Type != "abbreviated" {
					continue
				}
				for _, period := range width.DayPeriod {
					if period.Alt != "" {
						continue
					}
					switch period.Type {
					case "am":
						data.AM = period.Data()
					case "pm":
						data.PM = period.Data()
					}
				}
			}
		}
	}

	if calendar.Eras != nil && calendar.Eras.EraAbbr != nil {
		var before, after string
		for _, era := range calendar.Eras.EraAbbr.Era {
			if era.Alt != "" {
				continue
			}
			switch era.Type {
			case "0":
				before = era.Data()
			case "1":
				after = era.Data()
			}
		}
		if before != "" && after != "" {
			data.Eras = []string{before, after}
		}
	}
}

func setStyle(patterns *datefmt.StylePatterns, style, value string) {
	switch style {
	case "full":
		patterns.Full = value
	case "long":
		patterns.Long = value
	case "medium":
		patterns.Medium = value
	case "short":
		patterns.Short = value
	}
}

func extractZoneNames(names *cldr.TimeZoneNames, zones map[string]string) map[string]datefmt.ZoneNames {
	type zoneEntry struct {
		long  zoneWidth
		short zoneWidth
	}

	direct := make(map[string]zoneEntry)
	for _, zone := range names.Zone {
		var entry zoneEntry
		for _, long := range zone.Long {
			entry.long = zoneWidth{standard: firstData(long.Standard), daylight: firstData(long.Daylight)}
		}
		for _, short := range zone.Short {
			entry.short = zoneWidth{standard: firstData(short.Standard), daylight: firstData(short.Daylight)}
		}
		direct[zone.Type] = entry
	}

	meta := make(map[string]zoneEntry)
	for _, metazone := range names.Metazone {
		var entry zoneEntry
		for _, long := range metazone.Long {
			entry.long = zoneWidth{standard: firstData(long.Standard), daylight: firstData(long.Daylight)}
		}
		for _, short := range metazone.Short {
			entry.short = zoneWidth{standard: firstData(short.Standard), daylight: firstData(short.Daylight)}
		}
		meta[metazone.Type] = entry
	}

	out := make(map[string]datefmt.ZoneNames)
	add := func(zone string, entries ...zoneEntry) {
		var value datefmt.ZoneNames
		for _, entry := range entries {
			value.Long = firstNonEmpty(value.Long, entry.long.standard)
			value.LongDaylight = firstNonEmpty(value.LongDaylight, entry.long.daylight)
			value.Short = firstNonEmpty(value.Short, entry.short.standard)
			value.ShortDaylight = firstNonEmpty(value.ShortDaylight, entry.short.daylight)
		}
		if value == (datefmt.ZoneNames{}) {
			return
		}
		out[zone] = value
	}

	if utc, ok := direct["Etc/UTC"]; ok {
		for _, alias := range utcAliases {
			add(alias, utc)
		}
	}

	ianaZones := make([]string, 0, len(zones))
	for zone := range zones {
		ianaZones = append(ianaZones, zone)
	}
	sort.Strings(ianaZones)
	for _, zone := range ianaZones {
		add(zone, direct[zone], meta[zones[zone]])
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func firstData(elems []*cldr.Common) string {
	for _, elem := range elems {
		if elem == nil || elem.Alt != "" {
			continue
		}
		if value := elem.Data(); value != "" {
			return value
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// firstDayFor reads the first day of the week for the locale's likely territory
// from supplemental weekData, falling back to the world ("001") entry.
func firstDayFor(supp *cldr.SupplementalData, locale string) string {
	if supp == nil || supp.WeekData == nil {
		return ""
	}

	region, _ := language.Make(locale).Region()
	var world string
	for _, entry := range supp.WeekData.FirstDay {
		if entry == nil || entry.Alt != "" {
			continue
		}
		for _, territory := range strings.Fields(entry.Territories) {
			switch territory {
			case region.String():
				return entry.Day
			case "001":
				world = entry.Day
			}
		}
	}
	return world
}
