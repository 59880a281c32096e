// Package calendar implements proleptic Gregorian calendar arithmetic on day
// counts relative to 1970-01-01, the epoch of POSIX time.
//
// All functions are pure and safe for concurrent use.
package calendar

// Range of years accepted by CheckDate.
const (
	MinYear = 1970
	MaxYear = 9999
)

// SecondsPerDay is the length of a day in POSIX time (no leap seconds).
const SecondsPerDay = 86400

// Offset of 0000-03-01 from 1970-01-01, in days.
const epochShift = 719468

// Days in a 400-year era.
const daysPerEra = 146097

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in month (1-12) of year.
// It returns 0 for a month outside 1-12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// DaysFromCivil maps a calendar date to the number of days since 1970-01-01.
// Dates before the epoch yield negative counts.
//
// The year is shifted so that it starts in March, which moves the leap day
// to the end of the year and lets day-of-year be a linear function of the
// month.
func DaysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400 // [0, 399]
	mp := int64(month) + 9
	if month > 2 {
		mp = int64(month) - 3
	}
	doy := (153*mp+2)/5 + int64(day) - 1   // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPerEra + doe - epochShift
}

// CivilFromDays is the exact inverse of DaysFromCivil.
func CivilFromDays(days int64) (year, month, day int) {
	z := days + epochShift
	era := z
	if era < 0 {
		era -= daysPerEra - 1
	}
	era /= daysPerEra
	doe := z - era*daysPerEra                              // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp + 3)
	} else {
		month = int(mp - 9)
	}
	if month <= 2 {
		y++
	}
	return int(y), month, day
}

// WeekdayFromDays returns the day of the week for a day count, numbered
// like time.Weekday with 0 being Sunday. 1970-01-01 was a Thursday.
func WeekdayFromDays(days int64) int {
	if days >= -4 {
		return int((days + 4) % 7)
	}
	return int((days+5)%7 + 6)
}

// CheckDate reports whether year, month and day form a date inside
// [MinYear, MaxYear] that exists on the calendar.
func CheckDate(year, month, day int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

// CheckTime reports whether hour, minute and second form a time of day.
// Leap seconds are not representable.
func CheckTime(hour, minute, second int) bool {
	return hour >= 0 && hour <= 23 &&
		minute >= 0 && minute <= 59 &&
		second >= 0 && second <= 59
}
