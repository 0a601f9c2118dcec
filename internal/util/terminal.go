package util

import "fmt"

// MakeHyperlink wraps display text in an OSC 8 escape sequence so modern
// terminals render it as a clickable link. Used for pointing at files the
// export commands wrote.
func MakeHyperlink(target, displayText string) string {
	// BEL terminator instead of ST for wider terminal compatibility
	return fmt.Sprintf("\033]8;;%s\a%s\033]8;;\a", target, displayText)
}

// TruncateText truncates s to maxLen runes, appending "…" if truncated.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
