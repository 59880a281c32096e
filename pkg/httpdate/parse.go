package httpdate

import "github.com/shapestone/shape-httpfield/internal/fastparser"

// Layout identifies the textual form a date was parsed from.
type Layout int

const (
	// RFC1123 is "Sun, 06 Nov 1994 08:49:37 GMT".
	RFC1123 Layout = iota + 1
	// RFC850 is "Sunday, 06-Nov-94 08:49:37 GMT".
	RFC850
	// ANSIC is the asctime form "Sun Nov  6 08:49:37 1994".
	ANSIC
)

func (l Layout) String() string {
	return fastparser.Layout(l).String()
}

// Parse parses s in any of the three HTTP-date layouts. The whole of s must
// match; leading or trailing whitespace is not skipped.
func Parse(s string) (DateTime, bool) {
	dt, _, ok := ParseLayout(s)
	return dt, ok
}

// ParseLayout is like Parse and also reports which layout s matched.
func ParseLayout(s string) (DateTime, Layout, bool) {
	v, layout, ok := fastparser.ParseHTTPDate(s)
	if !ok {
		return DateTime{}, 0, false
	}
	return fromFast(v), Layout(layout), true
}

func fromFast(v fastparser.DateTime) DateTime {
	return DateTime{
		Date: Date{Year: v.Year, Month: v.Month, Day: v.Day},
		Time: TimeOfDay{Hour: v.Hour, Minute: v.Minute, Second: v.Second},
	}
}

func toFast(dt DateTime) fastparser.DateTime {
	return fastparser.DateTime{
		Year: dt.Date.Year, Month: dt.Date.Month, Day: dt.Date.Day,
		Hour: dt.Time.Hour, Minute: dt.Time.Minute, Second: dt.Time.Second,
	}
}
