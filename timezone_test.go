package datefmt

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedGMT(t *testing.T) {
	en := &LocaleData{Locale: "en"}
	fr := &LocaleData{Locale: "fr", GMTFormat: "UTC{0}", GMTZeroFormat: "UTC", HourFormat: "+HH:mm;−HH:mm"}

	cases := []struct {
		name   string
		data   *LocaleData
		offset int
		long   bool
		want   string
	}{
		{"zero", en, 0, true, "GMT"},
		{"negative long", en, -5 * 3600, true, "GMT-05:00"},
		{"negative short", en, -5 * 3600, false, "GMT-5"},
		{"half hour short", en, 5*3600 + 1800, false, "GMT+5:30"},
		{"half hour long", en, 5*3600 + 1800, true, "GMT+05:30"},
		{"fr zero", fr, 0, false, "UTC"},
		{"fr positive", fr, 3600, true, "UTC+01:00"},
		{"fr negative uses locale minus", fr, -3 * 3600, true, "UTC−03:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, localizedGMT(tc.data, tc.offset, tc.long))
		})
	}
}

func TestISOOffsets(t *testing.T) {
	assert.Equal(t, "Z", isoOffset(0, true, true))
	assert.Equal(t, "+0000", isoOffset(0, false, false))
	assert.Equal(t, "+0530", isoOffset(19800, false, false))
	assert.Equal(t, "-05:00", isoOffset(-18000, true, true))
	assert.Equal(t, "-05", isoOffsetShort(-18000, true))
	assert.Equal(t, "+0530", isoOffsetShort(19800, false))
	assert.Equal(t, "Z", isoOffsetShort(0, true))
}

func TestZoneFieldsFromLocation(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	data := &LocaleData{
		Locale: "en",
		ZoneNames: map[string]ZoneNames{
			"America/New_York": {
				Long:          "Eastern Standard Time",
				LongDaylight:  "Eastern Daylight Time",
				Short:         "EST",
				ShortDaylight: "EDT",
			},
		},
	}

	winter := time.Date(2024, time.January, 15, 15, 4, 5, 0, time.UTC)
	summer := time.Date(2024, time.July, 4, 16, 0, 0, 0, time.UTC)

	cases := []struct {
		pattern string
		at      time.Time
		want    string
	}{
		{"zzzz", winter, "Eastern Standard Time"},
		{"z", winter, "EST"},
		{"zzzz", summer, "Eastern Daylight Time"},
		{"z", summer, "EDT"},
		{"VV", summer, "America/New_York"},
		{"Z", winter, "-0500"},
		{"ZZZZ", winter, "GMT-05:00"},
		{"ZZZZZ", summer, "-04:00"},
		{"O", winter, "GMT-5"},
		{"OOOO", summer, "GMT-04:00"},
		{"X", winter, "-05"},
		{"XXX", winter, "-05:00"},
		{"xx", summer, "-0400"},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			r := newTestRenderer(t, tc.pattern, data, newYork)
			assert.Equal(t, tc.want, r.Render(tc.at))
		})
	}
}

func TestZoneNameFallsBackToGMT(t *testing.T) {
	zone := time.FixedZone("IST", 5*3600+1800)
	data := &LocaleData{Locale: "en"}
	epoch := time.Unix(0, 0).UTC()

	assert.Equal(t, "GMT+5:30", newTestRenderer(t, "z", data, zone).Render(epoch))
	assert.Equal(t, "GMT+05:30", newTestRenderer(t, "zzzz", data, zone).Render(epoch))
	assert.Equal(t, "GMT", newTestRenderer(t, "z", data, time.FixedZone("", 0)).Render(epoch))
}

func TestZoneNameResolvesLocal(t *testing.T) {
	previous := localZoneName
	localZoneName = func() string { return "America/New_York" }
	t.Cleanup(func() { localZoneName = previous })

	local := time.FixedZone("Local", -5*3600)
	data := &LocaleData{
		Locale: "en",
		ZoneNames: map[string]ZoneNames{
			"America/New_York": {Long: "Eastern Standard Time", Short: "EST"},
		},
	}
	at := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Eastern Standard Time", newTestRenderer(t, "zzzz", data, local).Render(at))
	assert.Equal(t, "America/New_York", newTestRenderer(t, "VV", data, local).Render(at))

	localZoneName = func() string { return "" }
	assert.Equal(t, "Local", newTestRenderer(t, "VV", data, local).Render(at))
	assert.Equal(t, "GMT-05:00", newTestRenderer(t, "zzzz", data, local).Render(at))
}

func TestZoneNameFallsBackToAbbreviation(t *testing.T) {
	universal, err := time.LoadLocation("Etc/Universal")
	require.NoError(t, err)

	data := &LocaleData{
		Locale:    "en",
		ZoneNames: map[string]ZoneNames{"UTC": {Long: "Coordinated Universal Time", Short: "UTC"}},
	}
	at := time.Unix(0, 0).UTC()

	assert.Equal(t, "Coordinated Universal Time", newTestRenderer(t, "zzzz", data, universal).Render(at))
}

func TestSystemZoneName(t *testing.T) {
	cases := []struct {
		tz   string
		want string
	}{
		{"Europe/Paris", "Europe/Paris"},
		{"", "UTC"},
		{":Asia/Tokyo", "Asia/Tokyo"},
		{"/usr/share/zoneinfo/America/Chicago", "America/Chicago"},
		{"/etc/custom-zone", ""},
	}

	for _, tc := range cases {
		t.Run(tc.tz, func(t *testing.T) {
			t.Setenv("TZ", tc.tz)
			assert.Equal(t, tc.want, systemZoneName())
		})
	}
}
