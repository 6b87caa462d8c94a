package venue

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// UnparseableTime is the minute value given to times that match no known
// pattern. It is larger than any real time of day, so such sessions sort last.
const UnparseableTime = 24 * 60

var (
	twelveHourPattern     = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([ap])\.?\s*m\.?$`)
	twentyFourHourPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	bareHourPattern       = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?$`)
	meridiemPattern       = regexp.MustCompile(`([ap])\.?\s*m\.?\s*$`)
)

// TimeToMinutes converts the start of a display time such as "6pm",
// "6:30 PM", "6:30 PM - 7:30 PM" or "18:30" to minutes after midnight.
// The second return is false when the text matches none of those forms.
func TimeToMinutes(s string) (int, bool) {
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "" {
		return UnparseableTime, false
	}

	start, end := text, ""
	if i := strings.Index(text, "-"); i >= 0 {
		start, end = strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
	}

	if m := twelveHourPattern.FindStringSubmatch(start); m != nil {
		return twelveHourMinutes(m[1], m[2], m[3])
	}
	// "6-7pm", "6:30 - 7:30 PM": a start without a meridiem borrows the one
	// written on the end of the range.
	if end != "" {
		if mer := meridiemPattern.FindStringSubmatch(end); mer != nil {
			if m := bareHourPattern.FindStringSubmatch(start); m != nil {
				return borrowedMeridiemMinutes(m[1], m[2], mer[1], end)
			}
			return UnparseableTime, false
		}
	}
	if m := twentyFourHourPattern.FindStringSubmatch(start); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return UnparseableTime, false
		}
		return hour*60 + minute, true
	}
	return UnparseableTime, false
}

// StartMinutes is TimeToMinutes without the ok flag.
func (s Session) StartMinutes() int {
	minutes, _ := TimeToMinutes(s.Time)
	return minutes
}

// borrowedMeridiemMinutes reads a range start using the end's meridiem. A
// range that would then start after it ends crosses noon, as in "11-1pm".
func borrowedMeridiemMinutes(hourText, minuteText, meridiem, end string) (int, bool) {
	start, ok := twelveHourMinutes(hourText, minuteText, meridiem)
	if !ok {
		return start, false
	}
	if m := twelveHourPattern.FindStringSubmatch(end); m != nil && meridiem == "p" {
		if endMinutes, ok := twelveHourMinutes(m[1], m[2], m[3]); ok && start > endMinutes {
			return twelveHourMinutes(hourText, minuteText, "a")
		}
	}
	return start, true
}

func twelveHourMinutes(hourText, minuteText, meridiem string) (int, bool) {
	hour, _ := strconv.Atoi(hourText)
	minute := 0
	if minuteText != "" {
		minute, _ = strconv.Atoi(minuteText)
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return UnparseableTime, false
	}
	hour %= 12
	if meridiem == "p" {
		hour += 12
	}
	return hour*60 + minute, true
}

// SortSessions returns a copy of sessions ordered by business-week day and
// then by start time. Ties keep their input order.
func SortSessions(sessions []Session) []Session {
	out := append([]Session(nil), sessions...)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Day.BusinessWeekIndex(), out[j].Day.BusinessWeekIndex()
		if di != dj {
			return di < dj
		}
		return out[i].StartMinutes() < out[j].StartMinutes()
	})
	return out
}
