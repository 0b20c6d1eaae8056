package main

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"

	"github.com/goliatone/go-datefmt"
)

func renderSource(pkg string, payloads []datefmt.LocaleData) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by datefmt-cldr. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var cldrLocaleData = []LocaleData{\n")
	for _, payload := range payloads {
		buf.WriteString("\t{\n")
		fmt.Fprintf(&buf, "\t\tLocale: %q,\n", payload.Locale)
		writePatterns(&buf, "DateFormats", "StylePatterns", payload.DateFormats)
		writePatterns(&buf, "TimeFormats", "StylePatterns", payload.TimeFormats)
		writePatterns(&buf, "DateTimeFormats", "GluePatterns", datefmt.StylePatterns(payload.DateTimeFormats))

		writeString(&buf, "AM", payload.AM)
		writeString(&buf, "PM", payload.PM)
		if len(payload.Eras) > 0 {
			fmt.Fprintf(&buf, "\t\tEras: %#v,\n", payload.Eras)
		}
		writeString(&buf, "FirstDay", payload.FirstDay)
		writeString(&buf, "GMTFormat", payload.GMTFormat)
		writeString(&buf, "GMTZeroFormat", payload.GMTZeroFormat)
		writeString(&buf, "HourFormat", payload.HourFormat)

		if len(payload.ZoneNames) > 0 {
			buf.WriteString("\t\tZoneNames: map[string]ZoneNames{\n")
			zones := make([]string, 0, len(payload.ZoneNames))
			for zone := range payload.ZoneNames {
				zones = append(zones, zone)
			}
			sort.Strings(zones)
			for _, zone := range zones {
				names := payload.ZoneNames[zone]
				fmt.Fprintf(&buf, "\t\t\t%q: {\n", zone)
				writeField(&buf, "\t\t\t\t", "Long", names.Long)
				writeField(&buf, "\t\t\t\t", "LongDaylight", names.LongDaylight)
				writeField(&buf, "\t\t\t\t", "Short", names.Short)
				writeField(&buf, "\t\t\t\t", "ShortDaylight", names.ShortDaylight)
				buf.WriteString("\t\t\t},\n")
			}
			buf.WriteString("\t\t},\n")
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

func writePatterns(buf *bytes.Buffer, field, typ string, patterns datefmt.StylePatterns) {
	if patterns == (datefmt.StylePatterns{}) {
		return
	}
	fmt.Fprintf(buf, "\t\t%s: %s{\n", field, typ)
	writeField(buf, "\t\t\t", "Full", patterns.Full)
	writeField(buf, "\t\t\t", "Long", patterns.Long)
	writeField(buf, "\t\t\t", "Medium", patterns.Medium)
	writeField(buf, "\t\t\t", "Short", patterns.Short)
	buf.WriteString("\t\t},\n")
}

func writeString(buf *bytes.Buffer, field, value string) {
	writeField(buf, "\t\t", field, value)
}

func writeField(buf *bytes.Buffer, indent, field, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(buf, "%s%s: %q,\n", indent, field, value)
}
