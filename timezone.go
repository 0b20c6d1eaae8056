package datefmt

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultGMTFormat     = "GMT{0}"
	defaultGMTZeroFormat = "GMT"
	defaultHourFormat    = "+HH:mm;-HH:mm"
)

// localZoneName reports the IANA name behind time.Local, empty when it cannot be determined.
var localZoneName = sync.OnceValue(systemZoneName)

// systemZoneName follows the runtime: TZ first, then the /etc/localtime link.
func systemZoneName() string {
	if tz, ok := os.LookupEnv("TZ"); ok {
		tz = strings.TrimPrefix(tz, ":")
		if tz == "" {
			return "UTC"
		}
		if !filepath.IsAbs(tz) {
			return tz
		}
		return zoneFromPath(tz)
	}

	target, err := filepath.EvalSymlinks("/etc/localtime")
	if err != nil {
		return ""
	}
	return zoneFromPath(target)
}

func zoneFromPath(path string) string {
	const marker = "zoneinfo/"
	if idx := strings.LastIndex(path, marker); idx >= 0 {
		return path[idx+len(marker):]
	}
	return ""
}

// zoneID returns the IANA name of loc, resolving time.Local to the system zone.
func zoneID(loc *time.Location) string {
	name := loc.String()
	if name == "Local" {
		if system := localZoneName(); system != "" {
			return system
		}
	}
	return name
}

// zoneName looks the zone up by IANA name, then by abbreviation, in the locale table,
// falling back to the localized GMT format.
func (r *patternRenderer) zoneName(t time.Time, long bool) string {
	abbreviation, offset := t.Zone()

	names, ok := r.data.ZoneNames[zoneID(r.loc)]
	if !ok {
		names, ok = r.data.ZoneNames[abbreviation]
	}
	if ok {
		var name string
		switch {
		case long && t.IsDST():
			name = names.LongDaylight
		case long:
			name = names.Long
		case t.IsDST():
			name = names.ShortDaylight
		default:
			name = names.Short
		}
		if name != "" {
			return name
		}
	}

	return localizedGMT(r.data, offset, long)
}

// localizedGMT renders offsets as "GMT-05:00" (long) or "GMT-5" (short).
func localizedGMT(data *LocaleData, offset int, long bool) string {
	if offset == 0 {
		return firstNonEmpty(data.GMTZeroFormat, defaultGMTZeroFormat)
	}

	hours, minutes, negative := splitOffset(offset)

	var formatted string
	if long {
		formatted = applyHourFormat(firstNonEmpty(data.HourFormat, defaultHourFormat), hours, minutes, negative)
	} else {
		sign := "+"
		if negative {
			sign = "-"
		}
		formatted = sign + strconv.Itoa(hours)
		if minutes != 0 {
			formatted += ":" + pad(minutes, 2)
		}
	}

	return strings.Replace(firstNonEmpty(data.GMTFormat, defaultGMTFormat), "{0}", formatted, 1)
}

func applyHourFormat(format string, hours, minutes int, negative bool) string {
	positive, negativeFormat, found := strings.Cut(format, ";")
	if !found {
		negativeFormat = strings.Replace(positive, "+", "-", 1)
	}

	pattern := positive
	if negative {
		pattern = negativeFormat
	}

	return strings.NewReplacer(
		"HH", pad(hours, 2),
		"H", strconv.Itoa(hours),
		"mm", pad(minutes, 2),
	).Replace(pattern)
}

// isoOffset renders ISO 8601 offsets, "+0530" or "+05:30", with "Z" for UTC when utcZ is set.
func isoOffset(offset int, extended, utcZ bool) string {
	if offset == 0 && utcZ {
		return "Z"
	}
	hours, minutes, negative := splitOffset(offset)
	sign := "+"
	if negative {
		sign = "-"
	}
	if extended {
		return sign + pad(hours, 2) + ":" + pad(minutes, 2)
	}
	return sign + pad(hours, 2) + pad(minutes, 2)
}

func isoOffsetShort(offset int, utcZ bool) string {
	if offset == 0 && utcZ {
		return "Z"
	}
	hours, minutes, negative := splitOffset(offset)
	sign := "+"
	if negative {
		sign = "-"
	}
	if minutes != 0 {
		return sign + pad(hours, 2) + pad(minutes, 2)
	}
	return sign + pad(hours, 2)
}

func splitOffset(offset int) (hours, minutes int, negative bool) {
	if offset < 0 {
		negative = true
		offset = -offset
	}
	return offset / 3600, (offset % 3600) / 60, negative
}
