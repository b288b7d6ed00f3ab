package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/sumitttt4/glyph/pkg/portfolio"
)

// MinShortIDLength is the minimum required length for short ID prefixes.
const MinShortIDLength = 6

// FullIDLength is the length of a mark ID, a hex SHA-256 seed.
const FullIDLength = 64

// ResolveMarkID resolves a short ID prefix to a full mark ID.
//
// The function handles three cases:
// 1. Input is already a full ID (64 hex chars) - validates existence
// 2. Input is too short (< 6 chars) - returns validation error
// 3. Input is a short prefix - scans for matches and returns unique result
func ResolveMarkID(ctx context.Context, client *portfolio.Client, shortID string) (string, error) {
	shortID = strings.ToLower(strings.TrimSpace(shortID))

	if len(shortID) == FullIDLength && isHex(shortID) {
		ok, err := client.MarkExists(ctx, shortID)
		if err != nil {
			return "", fmt.Errorf("failed to verify mark existence: %w", err)
		}
		if !ok {
			return "", &NotFoundError{ShortID: shortID}
		}
		return shortID, nil
	}

	if len(shortID) < MinShortIDLength {
		return "", fmt.Errorf("short ID must be at least %d characters (got %d)", MinShortIDLength, len(shortID))
	}
	if !isHex(shortID) {
		return "", fmt.Errorf("short ID must be hexadecimal: %s", shortID)
	}

	matches, err := client.ScanMarkIDs(ctx, shortID)
	if err != nil {
		return "", fmt.Errorf("failed to search for mark: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{ShortID: shortID}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{ShortID: shortID, Matches: matches}
	}
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// NotFoundError indicates no marks matched the short ID.
type NotFoundError struct {
	ShortID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no marks found matching '%s'", e.ShortID)
}

// AmbiguousError indicates multiple marks matched the short ID.
type AmbiguousError struct {
	ShortID string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous short ID '%s' matches %d marks", e.ShortID, len(e.Matches))
}

// FormatAmbiguousError creates a user-friendly error message for ambiguous
// short IDs. Lists up to 10 matching IDs, then "...and N more".
func FormatAmbiguousError(err *AmbiguousError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: ambiguous short ID '%s' matches %d marks:\n", err.ShortID, len(err.Matches))

	displayCount := len(err.Matches)
	if displayCount > 10 {
		displayCount = 10
	}
	for _, id := range err.Matches[:displayCount] {
		fmt.Fprintf(&b, "  %s\n", id)
	}
	if len(err.Matches) > 10 {
		fmt.Fprintf(&b, "  ...and %d more\n", len(err.Matches)-10)
	}

	b.WriteString("\nUse a longer prefix to uniquely identify the mark.")
	return b.String()
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsAmbiguousError checks if an error is an AmbiguousError.
func IsAmbiguousError(err error) bool {
	_, ok := err.(*AmbiguousError)
	return ok
}
