package util

import (
	"fmt"
	"unicode/utf8"
)

// MinMessageLength is the minimum text length for posts and comments,
// counted in runes.
const MinMessageLength = 5

// CheckMessageLength returns a user-facing message when text is shorter
// than MinMessageLength, or "" when the text is long enough.
func CheckMessageLength(text string) string {
	length := utf8.RuneCountInString(text)
	if length >= MinMessageLength {
		return ""
	}

	simbolText := Pluralize(length, "символ", "символа", "символов")
	return fmt.Sprintf(
		"Длина сообщения всего %d %s, что меньше минимального значения: %d",
		length, simbolText, MinMessageLength,
	)
}
