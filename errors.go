package datefmt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat matches every *UnknownFormatError through errors.Is.
var ErrUnknownFormat = errors.New("datefmt: unknown format")

// ErrUnsupportedLocale indicates that an engine has no data for the requested locale.
var ErrUnsupportedLocale = errors.New("datefmt: unsupported locale")

// ErrNotConfigured is returned by a nil or zero formatter.
var ErrNotConfigured = errors.New("datefmt: formatter not configured")

// ErrInvalidLocaleData marks locale data that failed decoding or validation.
var ErrInvalidLocaleData = errors.New("datefmt: invalid locale data")

// UnknownFormatError is returned when a verbosity name is not in the supported table.
type UnknownFormatError struct {
	Format    string
	Supported []string
}

func newUnknownFormatError(format string) *UnknownFormatError {
	return &UnknownFormatError{
		Format:    format,
		Supported: SupportedFormats(),
	}
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("datefmt: the desired format %q is invalid, it must be one of the following: %s",
		e.Format, strings.Join(e.Supported, ", "))
}

func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}
