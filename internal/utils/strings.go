package utils

import "strings"

// TrimOrEmpty normalizes free-text user input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// SplitSeatList splits comma/semicolon separated seat strings into cleaned,
// uppercased seat codes.
func SplitSeatList(raw string) []string {
	out := []string{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p))
	}
	return out
}

// DigitsOnly strips every non-digit rune. Used to normalize phone input.
func DigitsOnly(s string) string {
	var out strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// Truncate shortens s to maxLen runes with a trailing ellipsis, matching the
// layout constraints of the printed ticket.
func Truncate(s string, maxLen int) string {
	if maxLen <= 3 || len([]rune(s)) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}
