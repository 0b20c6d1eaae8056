package datefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalLocale(t *testing.T) {
	cases := map[string]string{
		"en_us":  "en-US",
		" es-MX": "es-MX",
		"pt_BR":  "pt-BR",
		"de":     "de",
		"":       "",
	}

	for input, want := range cases {
		assert.Equal(t, want, canonicalLocale(input), "input %q", input)
	}
}

func TestLocaleParentChain(t *testing.T) {
	assert.Equal(t, []string{"es-419", "es"}, localeParentChain("es-MX"))
	assert.Equal(t, []string{"en"}, localeParentChain("en-US"))
	assert.Empty(t, localeParentChain("de"))
	assert.Empty(t, localeParentChain(""))
}

func TestCandidateLocales(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("pt_BR", "es-MX", "en")

	got := candidateLocales("pt-BR", resolver)
	assert.Equal(t, []string{"pt-BR", "pt", "es-MX", "es-419", "es", "en"}, got)

	assert.Equal(t, []string{"de-AT", "de"}, candidateLocales("de_AT", nil))
	assert.Nil(t, candidateLocales("", resolver))
}

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("es-MX", "es_mx", "es", "", "en")

	assert.Equal(t, []string{"es", "en"}, resolver.Resolve("es_MX"))
	assert.Nil(t, resolver.Resolve("fr"))

	chain := resolver.Resolve("es-MX")
	chain[0] = "mutated"
	assert.Equal(t, []string{"es", "en"}, resolver.Resolve("es-MX"))

	var nilResolver *StaticFallbackResolver
	assert.Nil(t, nilResolver.Resolve("en"))
	nilResolver.Set("en", "fr")
}
