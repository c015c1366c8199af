package util

import (
	"fmt"
	"time"
)

var ruMonths = [12]string{
	"января",
	"февраля",
	"марта",
	"апреля",
	"мая",
	"июня",
	"июля",
	"августа",
	"сентября",
	"октября",
	"ноября",
	"декабря",
}

// DatetimeRuLong formats a timestamp the way it is shown on post pages,
// e.g. "08 июня 2020 г. 08:12".
func DatetimeRuLong(t time.Time) string {
	return fmt.Sprintf(
		"%02d %s %d г. %02d:%02d",
		t.Day(), ruMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute(),
	)
}
