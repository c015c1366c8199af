package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDatetimeRuLong(t *testing.T) {
	ts := time.Date(2020, time.June, 8, 8, 12, 0, 0, time.UTC)
	assert.Equal(t, "08 июня 2020 г. 08:12", DatetimeRuLong(ts))

	ts = time.Date(2026, time.October, 31, 23, 5, 0, 0, time.UTC)
	assert.Equal(t, "31 октября 2026 г. 23:05", DatetimeRuLong(ts))
}
