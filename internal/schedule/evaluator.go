package schedule

import (
	"strconv"
	"strings"
	"time"
)

// IsOpenAt reports whether the store is open at the given local time.
//
// The day is closed when its IsOpen flag is false, times are not examined in
// that case. Otherwise the window is the half-open interval [openTime,
// closeTime): a lookup exactly at closeTime reads as closed. A day whose
// close time is not after its open time has an empty window and always reads
// as closed; overnight wrap-around (e.g. 22:00-02:00) is deliberately not
// supported.
func IsOpenAt(hours BusinessHours, now time.Time) bool {
	day := hours.Day(WeekdayKey(now.Weekday()))
	if !day.IsOpen {
		return false
	}

	openMinutes := clockMinutes(day.OpenTime)
	closeMinutes := clockMinutes(day.CloseTime)
	nowMinutes := now.Hour()*60 + now.Minute()

	return nowMinutes >= openMinutes && nowMinutes < closeMinutes
}

// clockMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight. Unparsable components count as 0 so that a malformed schedule
// degrades to closed instead of failing the caller.
func clockMinutes(clock string) int {
	hh, mm, _ := strings.Cut(clock, ":")

	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		h = 0
	}

	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		m = 0
	}

	return h*60 + m
}
