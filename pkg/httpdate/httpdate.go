// Package httpdate parses and formats the HTTP-date header field values of
// RFC 7231 section 7.1.1.1. Three layouts are accepted:
//
//	Sun, 06 Nov 1994 08:49:37 GMT    ; RFC 1123, the preferred form
//	Sunday, 06-Nov-94 08:49:37 GMT   ; RFC 850, obsolete
//	Sun Nov  6 08:49:37 1994         ; asctime, obsolete
//
// Output is always the RFC 1123 form. Dates are in GMT and limited to the
// years 1970 through 9999. The weekday in parsed text must agree with the
// date; formatted weekdays are computed from the date.
//
// Failure is reported with a bool, never with a partially filled value.
// All functions are safe for concurrent use.
package httpdate

import (
	"fmt"
	"time"

	"github.com/shapestone/shape-httpfield/internal/calendar"
)

// Date is a day in the proleptic Gregorian calendar.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// Valid reports whether d lies in 1970-01-01 through 9999-12-31 and names
// an existing day.
func (d Date) Valid() bool {
	return calendar.CheckDate(d.Year, d.Month, d.Day)
}

// Days returns the number of days from 1970-01-01 to d. It is negative for
// earlier dates.
func (d Date) Days() int64 {
	return calendar.DaysFromCivil(d.Year, d.Month, d.Day)
}

// DateFromDays returns the date n days after 1970-01-01.
func DateFromDays(n int64) Date {
	y, m, dd := calendar.CivilFromDays(n)
	return Date{Year: y, Month: m, Day: dd}
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(calendar.WeekdayFromDays(d.Days()))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o. Dates are ordered by year, then month, then day.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(d.Month, o.Month)
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// TimeOfDay is a wall clock time without leap seconds.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// Valid reports whether t is within 00:00:00 through 23:59:59.
func (t TimeOfDay) Valid() bool {
	return calendar.CheckTime(t.Hour, t.Minute, t.Second)
}

// Seconds returns the number of seconds since midnight.
func (t TimeOfDay) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Compare orders times of day like Date.Compare orders dates.
func (t TimeOfDay) Compare(o TimeOfDay) int {
	return cmpInt(t.Seconds(), o.Seconds())
}

// DateTime is an instant in GMT with one-second resolution.
type DateTime struct {
	Date Date
	Time TimeOfDay
}

// Valid reports whether both the date and the time of day are valid.
func (dt DateTime) Valid() bool {
	return dt.Date.Valid() && dt.Time.Valid()
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to
// or after o.
func (dt DateTime) Compare(o DateTime) int {
	if c := dt.Date.Compare(o.Date); c != 0 {
		return c
	}
	return dt.Time.Compare(o.Time)
}

// Before reports whether dt is before o.
func (dt DateTime) Before(o DateTime) bool { return dt.Compare(o) < 0 }

// After reports whether dt is after o.
func (dt DateTime) After(o DateTime) bool { return dt.Compare(o) > 0 }

// String returns dt as "yyyy-mm-dd hh:mm:ss". Use Format for the HTTP form.
func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
