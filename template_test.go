package datefmt

import (
	"bytes"
	"strings"
	"testing"
	"text/template"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTemplate(t *testing.T, helpers map[string]any, src string, data any) (string, error) {
	t.Helper()

	tmpl, err := template.New("test").Funcs(helpers).Parse(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	return buf.String(), err
}

func TestTemplateHelpers(t *testing.T) {
	f := newFormatter(t, "en-US")
	helpers := TemplateHelpers(f, HelperConfig{})

	out, err := renderTemplate(t, helpers,
		`{{ format_date .At "short" }}|{{ format_time .At "short" }}|{{ format_datetime .At "medium" "short" }}|{{ format_timestamp .At }}`,
		map[string]any{"At": epoch},
	)
	require.NoError(t, err)
	assert.Equal(t,
		"1/1/70|12:00 AM|Jan 1, 1970, 12:00 AM|Thursday, January 1, 1970 at 12:00:00 AM Coordinated Universal Time",
		out)
}

func TestTemplateHelpersPrefix(t *testing.T) {
	helpers := TemplateHelpers(newFormatter(t, "de"), HelperConfig{Prefix: "dt_"})

	_, ok := helpers["format_date"]
	assert.False(t, ok)

	out, err := renderTemplate(t, helpers, `{{ dt_format_date .At "short" }}`, map[string]any{"At": epoch})
	require.NoError(t, err)
	assert.Equal(t, "01.01.70", out)
}

func TestTemplateHelpersAbortOnError(t *testing.T) {
	helpers := TemplateHelpers(newFormatter(t, "en-US"), HelperConfig{})

	_, err := renderTemplate(t, helpers, `{{ format_date .At "bogus" }}`, map[string]any{"At": epoch})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `"bogus"`), err.Error())
}

func TestTemplateHelpersOnError(t *testing.T) {
	var seen []string
	helpers := TemplateHelpers(newFormatter(t, "en-US"), HelperConfig{
		OnError: func(format string, err error) string {
			seen = append(seen, format)
			return "[invalid:" + format + "]"
		},
	})

	out, err := renderTemplate(t, helpers,
		`{{ format_time .At "bogus" }} {{ format_datetime .At "short" "nope" }}`,
		map[string]any{"At": epoch},
	)
	require.NoError(t, err)
	assert.Equal(t, "[invalid:bogus] [invalid:short nope]", out)
	assert.Equal(t, []string{"bogus", "short nope"}, seen)
}

func TestTemplateHelpersNilFormatter(t *testing.T) {
	helpers := TemplateHelpers(nil, HelperConfig{})

	fn, ok := helpers["format_date"].(func(time.Time, string) (string, error))
	require.True(t, ok)
	_, err := fn(epoch, "short")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
