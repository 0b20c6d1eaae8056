// Command datefmt-cldr extracts gregorian date/time patterns from CLDR core data
// and writes the locale table bundled with the datefmt package.
//
//	go run ./cmd/datefmt-cldr -cldr ~/cldr/common -locale en,en-GB,es,de,fr -out cldr_data.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-datefmt"
	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
	zones    map[string]string
}

// defaultZones maps IANA zones to the CLDR metazone carrying their display names.
var defaultZones = map[string]string{
	"America/Chicago":     "America_Central",
	"America/Los_Angeles": "America_Pacific",
	"America/New_York":    "America_Eastern",
	"Europe/Berlin":       "Europe_Central",
	"Europe/London":       "GMT",
	"Europe/Madrid":       "Europe_Central",
	"Europe/Paris":        "Europe_Central",
}

type listFlag struct {
	items []string
}

func (f *listFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *listFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datefmt-cldr: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList, zoneList listFlag

	flag.StringVar(&cfg.pkg, "pkg", "datefmt", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "cldr_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag or separate with commas.")
	flag.Var(&zoneList, "zone", "extra IANA=Metazone mapping, e.g. Asia/Tokyo=Japan. Repeatable.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	zones, err := parseZones(zoneList.items)
	if err != nil {
		return generatorConfig{}, err
	}
	cfg.zones = zones

	for _, locale := range localeList.items {
		normalized, err := normalizeLocale(locale)
		if err != nil {
			return generatorConfig{}, err
		}
		cfg.locales = append(cfg.locales, normalized)
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func parseZones(items []string) (map[string]string, error) {
	zones := make(map[string]string, len(defaultZones)+len(items))
	for zone, metazone := range defaultZones {
		zones[zone] = metazone
	}
	for _, item := range items {
		zone, metazone, ok := strings.Cut(item, "=")
		zone, metazone = strings.TrimSpace(zone), strings.TrimSpace(metazone)
		if !ok || zone == "" || metazone == "" {
			return nil, fmt.Errorf("invalid -zone value %q (expected IANA=Metazone)", item)
		}
		zones[zone] = metazone
	}
	return zones, nil
}

// normalizeLocale returns the BCP 47 form used as table key.
func normalizeLocale(locale string) (string, error) {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return "", errors.New("empty locale identifier")
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return tag.String(), nil
}

// cldrLocale maps a BCP 47 tag to the CLDR file name ("en-GB" -> "en_GB").
func cldrLocale(locale string) string {
	return strings.ReplaceAll(locale, "-", "_")
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	supplemental := data.Supplemental()

	var payloads []datefmt.LocaleData
	for _, locale := range cfg.locales {
		ldml := data.RawLDML(cldrLocale(locale))
		if ldml == nil {
			return fmt.Errorf("locale %s not found in CLDR data", locale)
		}

		payload, err := extractLocale(locale, ldml, cfg.zones)
		if err != nil {
			return fmt.Errorf("extract %s: %w", locale, err)
		}
		payload.FirstDay = firstDayFor(supplemental, locale)
		if err := datefmt.ValidateLocaleData(payload); err != nil {
			return err
		}
		payloads = append(payloads, payload)
	}

	sort.Slice(payloads, func(i, j int) bool {
		return payloads[i].Locale < payloads[j].Locale
	})

	source, err := renderSource(cfg.pkg, payloads)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
