package validators

import (
	"strings"
	"unicode/utf8"
)

// SanitizeString trims whitespace and truncates to at most maxLen bytes,
// backing up to the nearest rune boundary so multi-byte characters are
// never split.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 || len(trimmed) <= maxLen {
		return trimmed
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
		cut--
	}
	return trimmed[:cut]
}

// SanitizeOptional applies SanitizeString to an optional field, dropping
// values that trim to empty.
func SanitizeOptional(input *string, maxLen int) *string {
	if input == nil {
		return nil
	}
	trimmed := SanitizeString(*input, maxLen)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
