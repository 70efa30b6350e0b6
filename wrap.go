package uitext

import "strings"

// Measurer is the subset of the engine that layout helpers depend on.
type Measurer interface {
	TextWidth(text string, scale float32) float32
}

// WrapText wraps text at word boundaries so each line fits within maxWidth
// at the given scale. A single word wider than maxWidth gets its own line
// rather than being split.
func WrapText(m Measurer, text string, maxWidth, scale float32) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current string

	for _, word := range words {
		test := current
		if test != "" {
			test += " "
		}
		test += word

		if m.TextWidth(test, scale) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// TruncateText shortens text to fit within maxWidth, appending ".." when
// truncated.
func TruncateText(m Measurer, text string, maxWidth, scale float32) string {
	return TruncateTextWithSuffix(m, text, maxWidth, scale, "..")
}

// TruncateTextWithSuffix truncates text and appends a custom suffix.
func TruncateTextWithSuffix(m Measurer, text string, maxWidth, scale float32, suffix string) string {
	if m.TextWidth(text, scale) <= maxWidth {
		return text
	}

	runes := []rune(text)
	target := maxWidth - m.TextWidth(suffix, scale)

	for len(runes) > 0 {
		if m.TextWidth(string(runes), scale) <= target {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}
