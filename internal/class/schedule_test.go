package class

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at builds an instant at the arena offset.
func at(date, timeOfDay string) time.Time {
	instant, err := StartInstant(date, timeOfDay)
	if err != nil {
		panic(err)
	}
	return instant
}

func TestWeekdayName(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-06-09", "domingo"},
		{"2024-06-10", "segunda"},
		{"2024-06-11", "terca"},
		{"2024-06-12", "quarta"},
		{"2024-06-13", "quinta"},
		{"2024-06-14", "sexta"},
		{"2024-06-15", "sabado"},
	}

	for _, tt := range tests {
		got, err := WeekdayName(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.date)
	}

	_, err := WeekdayName("12/06/2024")
	assert.ErrorIs(t, err, ErrInvalidCivilDate)
}

func TestStartInstant(t *testing.T) {
	instant, err := StartInstant("2024-06-12", "18:00")
	require.NoError(t, err)
	assert.Equal(t, 18, instant.Hour())
	assert.Equal(t, "2024-06-12", instant.Format("2006-01-02"))

	withSeconds, err := StartInstant("2024-06-12", "18:00:30")
	require.NoError(t, err)
	assert.Equal(t, 30, withSeconds.Second())

	_, err = StartInstant("2024-06-12", "25:00")
	assert.Error(t, err)

	_, err = StartInstant("2024-06-12", "18h00")
	assert.Error(t, err)
}

func strPtr(s string) *string { return &s }

func TestIncludesOnDateNonRecurring(t *testing.T) {
	sched := NewSchedule(clockwork.NewFakeClockAt(at("2024-06-01", "12:00")))

	tmpl := &Template{Date: strPtr("2024-06-12"), TimeOfDay: "18:00"}
	assert.True(t, sched.IncludesOnDate(tmpl, "2024-06-12"))
	assert.False(t, sched.IncludesOnDate(tmpl, "2024-06-13"))

	noDate := &Template{TimeOfDay: "18:00"}
	assert.False(t, sched.IncludesOnDate(noDate, "2024-06-12"))
}

func TestIncludesOnDateRecurringWeekday(t *testing.T) {
	sched := NewSchedule(clockwork.NewFakeClockAt(at("2024-06-01", "12:00")))

	tmpl := &Template{
		Recurring: true,
		Weekdays:  pq.StringArray{"quarta", "sexta"},
		TimeOfDay: "18:00",
	}

	// 2024-06-12 is a quarta, 2024-06-13 a quinta.
	assert.True(t, sched.IncludesOnDate(tmpl, "2024-06-12"))
	assert.False(t, sched.IncludesOnDate(tmpl, "2024-06-13"))
	assert.True(t, sched.IncludesOnDate(tmpl, "2024-06-14"))
}

func TestIncludesOnDateSameDayCutoff(t *testing.T) {
	tmpl := &Template{
		Recurring: true,
		Weekdays:  pq.StringArray{"quarta"},
		TimeOfDay: "18:00",
	}

	// At 17:30 the 18:00 class is still more than 15 minutes away.
	early := NewSchedule(clockwork.NewFakeClockAt(at("2024-06-12", "17:30")))
	assert.True(t, early.IncludesOnDate(tmpl, "2024-06-12"))

	// At 17:50 it is inside the cutoff and drops out of today's listing.
	late := NewSchedule(clockwork.NewFakeClockAt(at("2024-06-12", "17:50")))
	assert.False(t, late.IncludesOnDate(tmpl, "2024-06-12"))

	// Exactly at the cutoff boundary the class is excluded too.
	boundary := NewSchedule(clockwork.NewFakeClockAt(at("2024-06-12", "17:45")))
	assert.False(t, boundary.IncludesOnDate(tmpl, "2024-06-12"))

	// The cutoff never applies to future dates.
	assert.True(t, late.IncludesOnDate(tmpl, "2024-06-19"))
}

func TestBookingOpen(t *testing.T) {
	// Class on 2024-06-10 at 18:00; the window opens 2024-06-08 18:00.
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"one second before opening", at("2024-06-08", "17:59:59"), false},
		{"exactly at opening", at("2024-06-08", "18:00"), true},
		{"well inside the window", at("2024-06-09", "10:00"), true},
		{"a day too early", at("2024-06-07", "18:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := NewSchedule(clockwork.NewFakeClockAt(tt.now))
			assert.Equal(t, tt.want, sched.BookingOpen("2024-06-10", "18:00"))
		})
	}
}

func TestBookingOpenBadInput(t *testing.T) {
	sched := NewSchedule(clockwork.NewFakeClockAt(at("2024-06-09", "10:00")))
	assert.False(t, sched.BookingOpen("not-a-date", "18:00"))
	assert.False(t, sched.BookingOpen("2024-06-10", "not-a-time"))
}

func TestTodayUsesArenaOffset(t *testing.T) {
	// 01:00 UTC on June 11 is still June 10 at the arenas.
	now := time.Date(2024, 6, 11, 1, 0, 0, 0, time.UTC)
	sched := NewSchedule(clockwork.NewFakeClockAt(now))
	assert.Equal(t, "2024-06-10", sched.Today())
}
