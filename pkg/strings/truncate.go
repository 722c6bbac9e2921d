package strings

import (
	"strings"
)

// DefaultDescriptionMaxLen is the default maximum length for descriptions in formatted output.
// This constant is shared across packages to ensure consistent truncation behavior.
const DefaultDescriptionMaxLen = 60

// MinTruncateLen is the minimum maxLen value for Truncate and TruncateDescription.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// Ellipsis is appended to every truncated string.
const Ellipsis = "..."

// Truncate shortens s to at most maxLen runes, replacing the tail with "..."
// when it does not fit. Unlike TruncateDescription the content is not
// sanitized, so table cells keep their original whitespace.
//
// If maxLen is less than MinTruncateLen it is clamped to MinTruncateLen.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-len(Ellipsis)]) + Ellipsis
	}
	return s
}

// TruncateDescription truncates a string to maxLen characters and ensures single-line output.
// It replaces newlines with spaces, collapses multiple whitespace characters into single spaces,
// and adds "..." if truncated.
//
// The function handles Unicode correctly by operating on runes rather than bytes,
// preventing truncation in the middle of multi-byte characters.
//
// Args:
//   - s: The string to truncate
//   - maxLen: Maximum length of the result (including "..." if truncated)
//
// Returns:
//   - Truncated and sanitized string
func TruncateDescription(s string, maxLen int) string {
	// strings.Fields splits on any whitespace (\n, \r, \t, runs of spaces)
	return Truncate(strings.Join(strings.Fields(s), " "), maxLen)
}
