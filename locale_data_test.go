package datefmt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLocaleData(t *testing.T) {
	cases := []struct {
		name    string
		data    LocaleData
		wantErr string
	}{
		{
			name: "valid",
			data: LocaleData{Locale: "xx", DateFormats: StylePatterns{Short: "d/M/y"}, Eras: []string{"a", "b"}, FirstDay: "mon"},
		},
		{
			name:    "missing locale",
			data:    LocaleData{DateFormats: StylePatterns{Short: "d/M/y"}},
			wantErr: "LocaleData.Locale",
		},
		{
			name:    "glue without time placeholder",
			data:    LocaleData{Locale: "xx", DateTimeFormats: GluePatterns{Medium: "{1}"}},
			wantErr: "cldr_glue",
		},
		{
			name:    "unterminated quote",
			data:    LocaleData{Locale: "xx", TimeFormats: StylePatterns{Long: "HH 'h"}},
			wantErr: "cldr_pattern",
		},
		{
			name:    "month list size",
			data:    LocaleData{Locale: "xx", Months: []string{"one"}},
			wantErr: "LocaleData.Months",
		},
		{
			name:    "eras size",
			data:    LocaleData{Locale: "xx", Eras: []string{"only"}},
			wantErr: "LocaleData.Eras",
		},
		{
			name:    "first day",
			data:    LocaleData{Locale: "xx", FirstDay: "monday"},
			wantErr: "LocaleData.FirstDay",
		},
		{
			name:    "gmt format placeholder",
			data:    LocaleData{Locale: "xx", GMTFormat: "GMT"},
			wantErr: "LocaleData.GMTFormat",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLocaleData(tc.data)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidLocaleData)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestMergeLocaleData(t *testing.T) {
	dest := LocaleData{
		Locale:      "en",
		DateFormats: StylePatterns{Short: "M/d/yy", Long: "MMMM d, y"},
		AM:          "AM",
		FirstDay:    "sun",
		ZoneNames:   map[string]ZoneNames{"UTC": {Short: "UTC"}},
	}
	src := LocaleData{
		Locale:      "en-CA",
		DateFormats: StylePatterns{Short: "y-MM-dd"},
		AM:          "a.m.",
		ZoneNames:   map[string]ZoneNames{"America/Toronto": {Short: "EST"}},
	}

	mergeLocaleData(&dest, src)

	assert.Equal(t, "en-CA", dest.Locale)
	assert.Equal(t, "y-MM-dd", dest.DateFormats.Short)
	assert.Equal(t, "MMMM d, y", dest.DateFormats.Long)
	assert.Equal(t, "a.m.", dest.AM)
	assert.Equal(t, "sun", dest.FirstDay)
	assert.Equal(t, time.Sunday, dest.firstWeekday())
	assert.Len(t, dest.ZoneNames, 2)
}

func TestLocaleDataCloneIsDeep(t *testing.T) {
	original := LocaleData{
		Locale:    "xx",
		Eras:      []string{"a", "b"},
		ZoneNames: map[string]ZoneNames{"UTC": {Long: "x"}},
	}

	clone := original.Clone()
	clone.Eras[0] = "changed"
	clone.ZoneNames["UTC"] = ZoneNames{Long: "changed"}

	assert.Equal(t, "a", original.Eras[0])
	assert.Equal(t, "x", original.ZoneNames["UTC"].Long)
}

func TestLocaleDataLoader(t *testing.T) {
	data, err := NewLocaleDataLoader(
		filepath.Join("testdata", "locales", "nl.yaml"),
		filepath.Join("testdata", "locales", "overrides.json"),
	).Load()
	require.NoError(t, err)
	require.Len(t, data, 3)

	assert.Equal(t, "nl", data[0].Locale)
	assert.Equal(t, "{1} 'om' {0}", data[0].DateTimeFormats.Full)
	assert.Equal(t, "gecoördineerde wereldtijd", data[0].ZoneNames["UTC"].Long)
	assert.Len(t, data[0].Months, 12)

	assert.Equal(t, "en-US", data[1].Locale)
	assert.Equal(t, "MM/dd/y", data[1].DateFormats.Short)
	assert.Equal(t, "en-CA", data[2].Locale)
	assert.Equal(t, "a.m.", data[2].AM)
}

func TestLocaleDataLoaderErrors(t *testing.T) {
	cases := []struct {
		name        string
		path        string
		invalidData bool
	}{
		{"invalid glue", filepath.Join("testdata", "locales", "invalid_glue.json"), true},
		{"unterminated quote", filepath.Join("testdata", "locales", "unterminated.yml"), true},
		{"unsupported extension", filepath.Join("testdata", "locales", "bad.toml"), true},
		{"missing file", filepath.Join("testdata", "locales", "missing.json"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLocaleDataLoader(tc.path).Load()
			require.Error(t, err)
			assert.Equal(t, tc.invalidData, errors.Is(err, ErrInvalidLocaleData))
		})
	}

	_, err := NewLocaleDataLoader().Load()
	assert.Error(t, err)

	_, err = NewLocaleDataLoader(filepath.Join("testdata", "locales", "missing.json")).Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocaleDataLoaderEmptyFiles(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o600))
	_, err := NewLocaleDataLoader(empty).Load()
	assert.ErrorIs(t, err, ErrInvalidLocaleData)

	list := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(list, []byte("[]\n"), 0o600))
	_, err = NewLocaleDataLoader(list).Load()
	assert.ErrorIs(t, err, ErrInvalidLocaleData)

	scalar := filepath.Join(dir, "scalar.yaml")
	require.NoError(t, os.WriteFile(scalar, []byte("just text\n"), 0o600))
	_, err = NewLocaleDataLoader(scalar).Load()
	assert.ErrorIs(t, err, ErrInvalidLocaleData)
}

func TestFormatterWithLocaleDataFiles(t *testing.T) {
	nl := newFormatter(t, "nl", WithLocaleDataFiles(filepath.Join("testdata", "locales", "nl.yaml")))

	got, err := nl.FormatDateTime(epoch, "full", "full")
	require.NoError(t, err)
	assert.Equal(t, "donderdag 1 januari 1970 om 00:00:00 gecoördineerde wereldtijd", got)

	got, err = nl.FormatDate(epoch, "medium")
	require.NoError(t, err)
	assert.Equal(t, "1 jan 1970", got)

	override := newFormatter(t, "en-US", WithLocaleDataFiles(filepath.Join("testdata", "locales", "overrides.json")))
	got, err = override.FormatDate(epoch, "short")
	require.NoError(t, err)
	assert.Equal(t, "01/01/1970", got)

	canada := newFormatter(t, "en-CA", WithLocaleDataFiles(filepath.Join("testdata", "locales", "overrides.json")))
	got, err = canada.FormatDateTime(epoch, "short", "short")
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01, 12:00 a.m.", got)

	_, err = New("nl", WithLocaleDataFiles(filepath.Join("testdata", "locales", "invalid_glue.json")))
	assert.ErrorIs(t, err, ErrInvalidLocaleData)
}
