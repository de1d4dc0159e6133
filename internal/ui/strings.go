package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// truncate shortens a string to the given display width, adding an
// ellipsis if needed. Wide runes count as two cells.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit == 1 {
		return runewidth.Truncate(value, 1, "")
	}
	return runewidth.Truncate(value, limit, ellipsis)
}

// truncateMiddle keeps the start and end of a value, which suits file paths.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return truncate(value, limit)
	}
	runes := []rune(value)
	keep := limit - runewidth.StringWidth(ellipsis)
	// Keep more of the end (file name) than the start.
	tail := keep * 2 / 3
	head := keep - tail

	var b strings.Builder
	w := 0
	for _, r := range runes {
		rw := runewidth.RuneWidth(r)
		if w+rw > head {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	b.WriteString(ellipsis)

	end := len(runes)
	w = 0
	for end > 0 {
		rw := runewidth.RuneWidth(runes[end-1])
		if w+rw > tail {
			break
		}
		w += rw
		end--
	}
	b.WriteString(string(runes[end:]))
	return b.String()
}

// titleCase converts a status such as "in_progress" to "In Progress".
func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, part := range parts {
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(s, width)
}

// fit truncates then pads so the result is exactly width cells.
func fit(s string, width int) string {
	return padRight(truncate(s, width), width)
}
