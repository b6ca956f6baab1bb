package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/rent-vs-buy/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport writes the result in the given format (or "all") to dir and returns the written paths.
func GenerateReport(result *domain.ScenarioResult, format, dir string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var paths []string
		for _, name := range AvailableFormatterNames() {
			path, err := WriteFormatted(GetFormatterByName(name), result, dir, Extension(name))
			if err != nil {
				return paths, fmt.Errorf("write %s report: %w", name, err)
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	path, err := WriteFormatted(f, result, dir, Extension(format))
	if err != nil {
		return nil, fmt.Errorf("write %s report: %w", f.Name(), err)
	}
	return []string{path}, nil
}

// Lookup resolves a format name or alias, enriching the error with available formatters and aliases
func Lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
