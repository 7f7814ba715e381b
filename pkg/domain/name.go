package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// MaxNameLength is the longest domain name accepted in its ASCII form.
const MaxNameLength = 253

// ErrInvalidName is returned when a string is not a usable domain name.
var ErrInvalidName = errors.New("invalid domain name")

// NormalizeName returns the canonical form of a domain name as the registrar
// reports it:
//   - Surrounding whitespace and a single trailing dot are removed
//   - Letters are lower-cased and unicode labels are converted to punycode
//   - Every label must be valid under the IDNA lookup profile
//
// Names are never normalized during reconciliation; this is for user input only.
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSuffix(strings.TrimSpace(raw), ".")
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	labels := strings.Split(ascii, ".")
	if len(labels) < 2 {
		return "", fmt.Errorf("%w: %q has no top-level domain", ErrInvalidName, raw)
	}
	for _, label := range labels {
		if label == "" {
			return "", fmt.Errorf("%w: %q has an empty label", ErrInvalidName, raw)
		}
	}
	if len(ascii) > MaxNameLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidName, MaxNameLength)
	}

	return ascii, nil
}
