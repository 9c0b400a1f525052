// File: services/scheduling/timewindow.go
package scheduling

import (
	"math"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// combine parses a calendar date and an "HH:MM" clock time into one instant.
func combine(date, clock string) (time.Time, bool) {
	t, err := time.Parse(dateLayout+" "+timeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DurationHours returns the span between two "HH:MM" times on the same
// calendar day, in hours. A negative span collapses to 0; so does any
// malformed input.
func DurationHours(date, start, end string) float64 {
	s, okS := combine(date, start)
	e, okE := combine(date, end)
	if !okS || !okE {
		return 0
	}
	hours := e.Sub(s).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// Overlaps is the half-open interval test shared by the availability checker
// and every other window comparison: [aStart, aEnd) meets [bStart, bEnd) iff
// aStart < bEnd && aEnd > bStart.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// AddHoursToTime advances an "HH:MM" time by a possibly fractional number of
// hours, wrapping within the day. Fractions map to minutes (+1.5h from 09:00
// gives 10:30).
func AddHoursToTime(clock string, hours float64) string {
	t, ok := combine("2000-01-01", clock)
	if !ok {
		return clock
	}
	minutes := int(math.Round(hours * 60))
	shifted := t.Add(time.Duration(minutes) * time.Minute)
	// Wrap within the same day.
	return shifted.Format(timeLayout)
}

// ShiftCalendarDays moves a date by n calendar days.
func ShiftCalendarDays(date string, n int) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, n).Format(dateLayout)
}

// ShiftCalendarMonths advances a date by n months, clamping the day-of-month
// to the target month's last day. time.AddDate is deliberately not used for
// the month step: its rollover would turn Jan 31 + 1 month into Mar 2.
func ShiftCalendarMonths(date string, n int) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	total := int(d.Month()) - 1 + n
	year := d.Year() + total/12
	month := time.Month(total%12 + 1)
	if total < 0 {
		// Euclidean adjustment for negative shifts.
		m := ((total % 12) + 12) % 12
		year = d.Year() + (total-m)/12
		month = time.Month(m + 1)
	}
	day := d.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
