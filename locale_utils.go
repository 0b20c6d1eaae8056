package datefmt

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeParentChain returns parents ordered from closest to root, e.g. es-MX -> es-419 -> es.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			break
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// canonicalLocale returns the BCP 47 form used as lookup key ("en_us" -> "en-US").
func canonicalLocale(locale string) string {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return ""
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return normalized
	}
	return tag.String()
}

// candidateLocales lists the lookup order for locale: itself, its parents, then configured fallbacks.
func candidateLocales(locale string, resolver FallbackResolver) []string {
	key := canonicalLocale(locale)
	if key == "" {
		return nil
	}

	seen := make(map[string]struct{}, 6)
	candidates := make([]string, 0, 6)
	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(key)
	for _, parent := range localeParentChain(key) {
		appendLocale(parent)
	}
	if resolver != nil {
		for _, fallback := range resolver.Resolve(key) {
			fallback = canonicalLocale(fallback)
			appendLocale(fallback)
			for _, parent := range localeParentChain(fallback) {
				appendLocale(parent)
			}
		}
	}

	return candidates
}

func sortedLocales(locales []string) []string {
	out := append([]string(nil), locales...)
	sort.Strings(out)
	return out
}
