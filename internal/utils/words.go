package utils

import "strings"

// WordsPerMinute is the reading speed used for ReadingMinutes.
const WordsPerMinute = 200

// CountWords counts whitespace separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ReadingMinutes estimates reading time, rounded up, with a minimum of one
// minute for any non-empty text.
func ReadingMinutes(text string) int {
	n := CountWords(text)
	if n == 0 {
		return 0
	}
	return (n + WordsPerMinute - 1) / WordsPerMinute
}

// Truncate shortens text to at most limit runes, appending an ellipsis when
// something was cut.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit == 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
