package httpdate

import (
	"time"

	"github.com/shapestone/shape-httpfield/internal/calendar"
)

// Posix returns dt as seconds since 1970-01-01T00:00:00Z, ignoring leap
// seconds. dt should be valid. For a date before the epoch the result
// wraps around like any negative int64 converted to uint64.
func (dt DateTime) Posix() uint64 {
	return uint64(dt.Date.Days()*calendar.SecondsPerDay + int64(dt.Time.Seconds()))
}

// FromPosix is the inverse of DateTime.Posix. Values past the end of
// 9999-12-31 yield a DateTime that is not Valid.
func FromPosix(sec uint64) DateTime {
	days := sec / calendar.SecondsPerDay
	rem := int(sec % calendar.SecondsPerDay)
	return DateTime{
		Date: DateFromDays(int64(days)),
		Time: TimeOfDay{Hour: rem / 3600, Minute: rem / 60 % 60, Second: rem % 60},
	}
}

// FromTime converts t to GMT and truncates it to the second. It reports
// false if the result is outside the supported years.
func FromTime(t time.Time) (DateTime, bool) {
	t = t.UTC()
	dt := DateTime{
		Date: Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()},
		Time: TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()},
	}
	if !dt.Valid() {
		return DateTime{}, false
	}
	return dt, true
}

// UTC returns dt as a time.Time in the UTC location.
func (dt DateTime) UTC() time.Time {
	return time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, 0, time.UTC)
}
