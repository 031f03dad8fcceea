package class

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// All civil dates and times of day are interpreted at the arenas' fixed
// UTC-3 operating offset. Dates are plain YYYY-MM-DD strings; instants are
// only ever derived through StartInstant.
var Location = time.FixedZone("UTC-3", -3*60*60)

const (
	civilDateLayout = "2006-01-02"

	// A recurring class stops accepting same-day bookings 15 minutes
	// before it starts.
	sameDayCutoff = 15 * time.Minute

	// Booking opens exactly two days before the class starts.
	bookingLead = 48 * time.Hour
)

var weekdayNames = [7]string{"domingo", "segunda", "terca", "quarta", "quinta", "sexta", "sabado"}

var ErrInvalidCivilDate = errors.New("invalid civil date, want YYYY-MM-DD")

// ParseCivilDate validates a civil date string.
func ParseCivilDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(civilDateLayout, date, Location)
	if err != nil {
		return time.Time{}, ErrInvalidCivilDate
	}
	return d, nil
}

// WeekdayName maps a civil date to the fixed weekday enumeration,
// domingo (Sunday) through sabado (Saturday).
func WeekdayName(date string) (string, error) {
	d, err := ParseCivilDate(date)
	if err != nil {
		return "", err
	}
	return weekdayNames[int(d.Weekday())], nil
}

// StartInstant computes the absolute start of a class from its civil date
// and time of day ("HH:MM" or "HH:MM:SS").
func StartInstant(date, timeOfDay string) (time.Time, error) {
	d, err := ParseCivilDate(date)
	if err != nil {
		return time.Time{}, err
	}

	var hh, mm, ss int
	if _, err := fmt.Sscanf(timeOfDay, "%d:%d:%d", &hh, &mm, &ss); err != nil {
		ss = 0
		if _, err := fmt.Sscanf(timeOfDay, "%d:%d", &hh, &mm); err != nil {
			return time.Time{}, fmt.Errorf("invalid time of day %q", timeOfDay)
		}
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 || ss < 0 || ss > 59 {
		return time.Time{}, fmt.Errorf("invalid time of day %q", timeOfDay)
	}

	return time.Date(d.Year(), d.Month(), d.Day(), hh, mm, ss, 0, Location), nil
}

// Schedule answers the two time questions of the booking flow: does a
// recurring template produce an instance on a date, and is a class currently
// inside its booking window. Both must be computed from the same clock so
// the listing check and the pre-commit check in the enrollment workflow
// cannot drift.
type Schedule struct {
	clock clockwork.Clock
}

func NewSchedule(clock clockwork.Clock) *Schedule {
	return &Schedule{clock: clock}
}

// Today is the current civil date at the arena offset.
func (s *Schedule) Today() string {
	return s.clock.Now().In(Location).Format(civilDateLayout)
}

// IncludesOnDate reports whether template t produces a concrete instance on
// the target date. Recurring templates match on weekday name; when the
// target date is today, the instance is dropped unless the class starts more
// than 15 minutes from now. Non-recurring templates match only their own
// date, with no same-day cutoff (the booking window already covers them).
func (s *Schedule) IncludesOnDate(t *Template, date string) bool {
	if !t.Recurring {
		return t.Date != nil && *t.Date == date
	}

	dayName, err := WeekdayName(date)
	if err != nil {
		return false
	}

	found := false
	for _, d := range t.Weekdays {
		if d == dayName {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	if date != s.Today() {
		return true
	}

	start, err := StartInstant(date, t.TimeOfDay)
	if err != nil {
		return false
	}
	return start.After(s.clock.Now().Add(sameDayCutoff))
}

// BookingOpen reports whether enrollment for a class on the given date and
// time is currently permitted: now must be at or past start minus 48 hours.
// The boundary itself is open for booking.
func (s *Schedule) BookingOpen(date, timeOfDay string) bool {
	start, err := StartInstant(date, timeOfDay)
	if err != nil {
		return false
	}
	cutoff := start.Add(-bookingLead)
	return !s.clock.Now().Before(cutoff)
}
