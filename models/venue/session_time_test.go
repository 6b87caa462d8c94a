package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"6pm", 18 * 60, true},
		{"6 PM", 18 * 60, true},
		{"6:30 PM", 18*60 + 30, true},
		{"6:30pm", 18*60 + 30, true},
		{"6:30 p.m.", 18*60 + 30, true},
		{"12pm", 12 * 60, true},
		{"12:15 AM", 15, true},
		{"9am", 9 * 60, true},
		{"6:30 PM - 7:30 PM", 18*60 + 30, true},
		{"6-7pm", 18 * 60, true},
		{"6:30-7:30pm", 18*60 + 30, true},
		{"6:30 - 7:30 PM", 18*60 + 30, true},
		{"9:15 - 10:30 a.m.", 9*60 + 15, true},
		{"11:30-1pm", 11*60 + 30, true},
		{"7 - 8:30 PM", 19 * 60, true},
		{"25:00 - 26:00 pm", UnparseableTime, false},
		{"18:00", 18 * 60, true},
		{"07:05", 7*60 + 5, true},
		{"18:00 - 19:30", 18 * 60, true},
		{"", UnparseableTime, false},
		{"TBD", UnparseableTime, false},
		{"Evening", UnparseableTime, false},
		{"13pm", UnparseableTime, false},
		{"25:00", UnparseableTime, false},
		{"6", UnparseableTime, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := TimeToMinutes(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnparseableTimeSortsAfterEveryRealTime(t *testing.T) {
	latest, _ := TimeToMinutes("11:59 PM")
	assert.Greater(t, UnparseableTime, latest)
}

func TestSortSessions(t *testing.T) {
	in := []Session{
		{Day: Thursday, Time: "6pm", Type: Gi},
		{Day: Monday, Time: "TBD", Type: Gi},
		{Day: Monday, Time: "7pm", Type: Gi},
		{Day: Friday, Time: "6:00 PM", Type: Gi},
		{Day: Friday, Time: "5:00 PM", Type: NoGi},
		{Day: Sunday, Time: "10am", Type: Both},
		{Day: Saturday, Time: "11am", Type: Gi},
	}

	got := SortSessions(in)

	assert.Equal(t, []Session{
		{Day: Friday, Time: "5:00 PM", Type: NoGi},
		{Day: Friday, Time: "6:00 PM", Type: Gi},
		{Day: Saturday, Time: "11am", Type: Gi},
		{Day: Sunday, Time: "10am", Type: Both},
		{Day: Monday, Time: "7pm", Type: Gi},
		{Day: Monday, Time: "TBD", Type: Gi},
		{Day: Thursday, Time: "6pm", Type: Gi},
	}, got)
	// input untouched
	assert.Equal(t, Thursday, in[0].Day)
}

func TestSortSessions_RangeBorrowingMeridiem(t *testing.T) {
	in := []Session{
		{Day: Friday, Time: "6:30 - 7:30 PM", Type: Gi},
		{Day: Friday, Time: "9am", Type: NoGi},
	}

	got := SortSessions(in)

	assert.Equal(t, "9am", got[0].Time)
	assert.Equal(t, "6:30 - 7:30 PM", got[1].Time)
}
