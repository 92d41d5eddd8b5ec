package schedule

import "time"

// Weekday keys as they appear in the persisted hours document.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// WeekdayKeys lists all seven keys in display order.
var WeekdayKeys = []string{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// weekdayByTime is a fixed mapping from time.Weekday to the persisted key,
// independent of any locale or calendar enumeration order.
var weekdayByTime = map[time.Weekday]string{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayKey resolves a time.Weekday to its schedule key.
func WeekdayKey(d time.Weekday) string {
	return weekdayByTime[d]
}

type BusinessDay struct {
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// BusinessHours holds one BusinessDay per weekday. The schedule is always
// replaced wholesale, never patched per day.
type BusinessHours struct {
	Monday    BusinessDay `json:"monday"`
	Tuesday   BusinessDay `json:"tuesday"`
	Wednesday BusinessDay `json:"wednesday"`
	Thursday  BusinessDay `json:"thursday"`
	Friday    BusinessDay `json:"friday"`
	Saturday  BusinessDay `json:"saturday"`
	Sunday    BusinessDay `json:"sunday"`
}

// Day returns the BusinessDay for the given weekday key.
func (h BusinessHours) Day(key string) BusinessDay {
	switch key {
	case Monday:
		return h.Monday
	case Tuesday:
		return h.Tuesday
	case Wednesday:
		return h.Wednesday
	case Thursday:
		return h.Thursday
	case Friday:
		return h.Friday
	case Saturday:
		return h.Saturday
	case Sunday:
		return h.Sunday
	}

	return BusinessDay{}
}
