package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckMessageLengthShort(t *testing.T) {
	msg := CheckMessageLength("врак")
	assert.Equal(t, "Длина сообщения всего 4 символа, что меньше минимального значения: 5", msg)

	msg = CheckMessageLength("а")
	assert.Contains(t, msg, "1 символ,")

	msg = CheckMessageLength("")
	assert.Contains(t, msg, "0 символов")
}

func TestCheckMessageLengthOk(t *testing.T) {
	assert.Empty(t, CheckMessageLength("hello world"))
	assert.Empty(t, CheckMessageLength("пять!"))
	assert.Empty(t, CheckMessageLength(strings.Repeat("a", MinMessageLength)))
}

func TestCheckMessageLengthCountsRunes(t *testing.T) {
	// 4 cyrillic runes are 8 bytes; length is still 4.
	msg := CheckMessageLength("тест")
	assert.Contains(t, msg, "всего 4 символа")
}
