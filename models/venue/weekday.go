package venue

import (
	"strings"
	"time"
)

// Weekday is one of the seven canonical English weekday names.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// BusinessWeek is the order sessions are listed in: the training week runs
// Friday through Thursday.
var BusinessWeek = []Weekday{Friday, Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday}

var weekdayAliases = map[string]Weekday{
	"monday": Monday, "mon": Monday,
	"tuesday": Tuesday, "tue": Tuesday, "tues": Tuesday,
	"wednesday": Wednesday, "wed": Wednesday,
	"thursday": Thursday, "thu": Thursday, "thur": Thursday, "thurs": Thursday,
	"friday": Friday, "fri": Friday,
	"saturday": Saturday, "sat": Saturday,
	"sunday": Sunday, "sun": Sunday,
}

var timeWeekdays = map[Weekday]time.Weekday{
	Sunday:    time.Sunday,
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

// ParseWeekday maps a full or abbreviated day name, in any case, to its
// canonical form.
func ParseWeekday(s string) (Weekday, bool) {
	d, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// BusinessWeekIndex returns the position of d in BusinessWeek, or
// len(BusinessWeek) for a non-canonical value.
func (d Weekday) BusinessWeekIndex() int {
	for i, day := range BusinessWeek {
		if day == d {
			return i
		}
	}
	return len(BusinessWeek)
}

// TimeWeekday converts d to the standard library weekday.
func (d Weekday) TimeWeekday() (time.Weekday, bool) {
	wd, ok := timeWeekdays[d]
	return wd, ok
}
