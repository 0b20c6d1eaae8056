package datefmt

// Verbosity selects how much detail a date or time part carries.
// Values match the ICU date format style codes.
type Verbosity int

const (
	VerbosityNone   Verbosity = -1
	VerbosityFull   Verbosity = 0
	VerbosityLong   Verbosity = 1
	VerbosityMedium Verbosity = 2
	VerbosityShort  Verbosity = 3
)

// supportedFormats is kept in declaration order, error messages list names in this order.
var supportedFormats = []struct {
	name      string
	verbosity Verbosity
}{
	{"none", VerbosityNone},
	{"short", VerbosityShort},
	{"medium", VerbosityMedium},
	{"long", VerbosityLong},
	{"full", VerbosityFull},
}

var formatsByName = func() map[string]Verbosity {
	out := make(map[string]Verbosity, len(supportedFormats))
	for _, entry := range supportedFormats {
		out[entry.name] = entry.verbosity
	}
	return out
}()

// SupportedFormats returns the accepted verbosity names.
func SupportedFormats() []string {
	names := make([]string, 0, len(supportedFormats))
	for _, entry := range supportedFormats {
		names = append(names, entry.name)
	}
	return names
}

// ParseVerbosity resolves a case sensitive verbosity name.
func ParseVerbosity(name string) (Verbosity, error) {
	if v, ok := formatsByName[name]; ok {
		return v, nil
	}
	return VerbosityNone, newUnknownFormatError(name)
}

func (v Verbosity) String() string {
	for _, entry := range supportedFormats {
		if entry.verbosity == v {
			return entry.name
		}
	}
	return "unknown"
}

// Valid reports whether v is one of the declared levels.
func (v Verbosity) Valid() bool {
	return v >= VerbosityNone && v <= VerbosityShort
}
