package googlemaps

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLocation reports a location argument of an unsupported
// dynamic type. The formatter never stringifies other types.
var ErrInvalidLocation = errors.New("location must be a string or a list of strings")

// FormatLocation turns an address into the wire form the distance API
// expects: commas become spaces, whitespace runs collapse into single
// "+" separators, list entries join with "|".
//
// Accepts a single string or a []string; anything else is an error.
func FormatLocation(location any) (string, error) {
	switch loc := location.(type) {
	case string:
		return formatEntry(loc), nil
	case []string:
		parts := make([]string, 0, len(loc))
		for _, entry := range loc {
			parts = append(parts, formatEntry(entry))
		}
		return strings.Join(parts, "|"), nil
	default:
		return "", fmt.Errorf("%w, got %T", ErrInvalidLocation, location)
	}
}

// formatEntry normalizes one address. Fields trims and collapses
// whitespace in a single pass.
func formatEntry(entry string) string {
	entry = strings.ReplaceAll(entry, ",", " ")
	return strings.Join(strings.Fields(entry), "+")
}
