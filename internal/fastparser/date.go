package fastparser

import "github.com/shapestone/shape-httpfield/internal/calendar"

// DateTime is a calendar date and time of day in GMT.
type DateTime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

// Layout identifies which HTTP-date grammar an input matched.
type Layout int

const (
	LayoutNone Layout = iota
	LayoutRFC1123
	LayoutRFC850
	LayoutANSIC
)

func (l Layout) String() string {
	switch l {
	case LayoutRFC1123:
		return "rfc1123"
	case LayoutRFC850:
		return "rfc850"
	case LayoutANSIC:
		return "asctime"
	default:
		return "none"
	}
}

// Fixed lengths of the layouts.
//
//	rfc1123: Sun, 06 Nov 1994 08:49:37 GMT
//	rfc850:  Sunday, 06-Nov-94 08:49:37 GMT   (30 to 33 bytes)
//	asctime: Sun Nov  6 08:49:37 1994
const (
	HTTPDateSize   = 29
	ANSICDateSize  = 24
	rfc850TailSize = 23 // ", 06-Nov-94 08:49:37 GMT" minus the comma
	minDateSize    = ANSICDateSize
)

const (
	clockDayString   = "SunMonTueWedThuFriSat"
	clockMonthString = "JanFebMarAprMayJunJulAugSepOctNovDec"
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// ParseHTTPDate parses one of the three HTTP-date layouts of RFC 7231
// section 7.1.1.1. The input must match a layout exactly, with no leading
// or trailing bytes, and the stated weekday must agree with the date.
func ParseHTTPDate(s string) (DateTime, Layout, bool) {
	if len(s) < minDateSize {
		return DateTime{}, LayoutNone, false
	}
	var (
		dt     DateTime
		ok     bool
		layout Layout
	)
	switch s[3] {
	case ',':
		layout = LayoutRFC1123
		dt, ok = parseRFC1123(s)
	case ' ':
		layout = LayoutANSIC
		dt, ok = parseANSIC(s)
	default:
		layout = LayoutRFC850
		dt, ok = parseRFC850(s)
	}
	if !ok {
		return DateTime{}, LayoutNone, false
	}
	return dt, layout, true
}

// parseRFC1123 parses "Sun, 06 Nov 1994 08:49:37 GMT".
func parseRFC1123(s string) (DateTime, bool) {
	if len(s) != HTTPDateSize {
		return DateTime{}, false
	}
	wday, ok := shortWeekday(s[0:3])
	if !ok || s[3] != ',' || s[4] != ' ' {
		return DateTime{}, false
	}
	var dt DateTime
	if dt.Day, ok = twoDigits(s[5], s[6]); !ok || s[7] != ' ' {
		return DateTime{}, false
	}
	if dt.Month, ok = month(s[8:11]); !ok || s[11] != ' ' {
		return DateTime{}, false
	}
	if dt.Year, ok = fourDigits(s[12:16]); !ok || s[16] != ' ' {
		return DateTime{}, false
	}
	if !parseClock(s[17:25], &dt) || s[25:] != " GMT" {
		return DateTime{}, false
	}
	return dt, checkDateTime(&dt, wday)
}

// parseRFC850 parses "Sunday, 06-Nov-94 08:49:37 GMT".
func parseRFC850(s string) (DateTime, bool) {
	comma := -1
	for i := 0; i < len(s) && i <= len("Wednesday"); i++ {
		if s[i] == ',' {
			comma = i
			break
		}
	}
	if comma < 0 || len(s)-comma-1 != rfc850TailSize {
		return DateTime{}, false
	}
	wday, ok := longWeekday(s[:comma])
	if !ok {
		return DateTime{}, false
	}
	t := s[comma+1:]
	if t[0] != ' ' {
		return DateTime{}, false
	}
	var dt DateTime
	if dt.Day, ok = twoDigits(t[1], t[2]); !ok || t[3] != '-' {
		return DateTime{}, false
	}
	if dt.Month, ok = month(t[4:7]); !ok || t[7] != '-' {
		return DateTime{}, false
	}
	yy, ok := twoDigits(t[8], t[9])
	if !ok || t[10] != ' ' {
		return DateTime{}, false
	}
	if yy < 70 {
		dt.Year = 2000 + yy
	} else {
		dt.Year = 1900 + yy
	}
	if !parseClock(t[11:19], &dt) || t[19:] != " GMT" {
		return DateTime{}, false
	}
	return dt, checkDateTime(&dt, wday)
}

// parseANSIC parses "Sun Nov  6 08:49:37 1994". Days below 10 are padded
// with a space, never with a zero.
func parseANSIC(s string) (DateTime, bool) {
	if len(s) != ANSICDateSize {
		return DateTime{}, false
	}
	wday, ok := shortWeekday(s[0:3])
	if !ok || s[3] != ' ' {
		return DateTime{}, false
	}
	var dt DateTime
	if dt.Month, ok = month(s[4:7]); !ok || s[7] != ' ' {
		return DateTime{}, false
	}
	switch b0, b1 := s[8], s[9]; {
	case b0 == ' ' && b1 >= '1' && b1 <= '9':
		dt.Day = int(b1 - '0')
	case b0 >= '1' && b0 <= '9' && b1 >= '0' && b1 <= '9':
		dt.Day = int(b0-'0')*10 + int(b1-'0')
	default:
		return DateTime{}, false
	}
	if s[10] != ' ' || !parseClock(s[11:19], &dt) || s[19] != ' ' {
		return DateTime{}, false
	}
	if dt.Year, ok = fourDigits(s[20:24]); !ok {
		return DateTime{}, false
	}
	return dt, checkDateTime(&dt, wday)
}

// parseClock parses "hh:mm:ss" into dt. c must be 8 bytes long.
func parseClock(c string, dt *DateTime) bool {
	var ok bool
	if dt.Hour, ok = twoDigits(c[0], c[1]); !ok || c[2] != ':' {
		return false
	}
	if dt.Minute, ok = twoDigits(c[3], c[4]); !ok || c[5] != ':' {
		return false
	}
	dt.Second, ok = twoDigits(c[6], c[7])
	return ok
}

// checkDateTime validates the fields of dt and compares the weekday stated
// in the input with the one computed from the date.
func checkDateTime(dt *DateTime, wday int) bool {
	if !calendar.CheckDate(dt.Year, dt.Month, dt.Day) ||
		!calendar.CheckTime(dt.Hour, dt.Minute, dt.Second) {
		return false
	}
	return calendar.WeekdayFromDays(calendar.DaysFromCivil(dt.Year, dt.Month, dt.Day)) == wday
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func twoDigits(b0, b1 byte) (int, bool) {
	if !isDigit(b0) || !isDigit(b1) {
		return 0, false
	}
	return int(b0-'0')*10 + int(b1-'0'), true
}

// fourDigits parses a 4-byte decimal. d must be 4 bytes long.
func fourDigits(d string) (int, bool) {
	n := 0
	for i := 0; i < 4; i++ {
		if !isDigit(d[i]) {
			return 0, false
		}
		n = n*10 + int(d[i]-'0')
	}
	return n, true
}

// month maps a 3-byte abbreviation to 1-12.
func month(b string) (int, bool) {
	for i := 0; i < 12; i++ {
		if clockMonthString[3*i:3*i+3] == b {
			return i + 1, true
		}
	}
	return 0, false
}

// shortWeekday maps a 3-byte abbreviation to 0-6, 0 being Sunday.
func shortWeekday(b string) (int, bool) {
	for i := 0; i < 7; i++ {
		if clockDayString[3*i:3*i+3] == b {
			return i, true
		}
	}
	return 0, false
}

func longWeekday(b string) (int, bool) {
	for i, name := range weekdayNames {
		if name == b {
			return i, true
		}
	}
	return 0, false
}

// AppendHTTPDate appends the RFC 1123 form of dt, always HTTPDateSize
// bytes. dt must be valid; the weekday is computed from the date.
func AppendHTTPDate(dst []byte, dt DateTime) []byte {
	var buf [HTTPDateSize]byte
	WriteHTTPDate(buf[:], dt)
	return append(dst, buf[:]...)
}

// WriteHTTPDate writes the RFC 1123 form of dt into dst[:HTTPDateSize] and
// returns HTTPDateSize. dt must be valid. It panics if dst is too short.
func WriteHTTPDate(dst []byte, dt DateTime) int {
	_ = dst[HTTPDateSize-1]
	wday := calendar.WeekdayFromDays(calendar.DaysFromCivil(dt.Year, dt.Month, dt.Day))
	s := clockDayString[3*wday:]
	dst[0] = s[0] // 'S'
	dst[1] = s[1] // 'u'
	dst[2] = s[2] // 'n'
	dst[3] = ','
	dst[4] = ' '
	dst[5] = byte(dt.Day/10) + '0' // '0'
	dst[6] = byte(dt.Day%10) + '0' // '6'
	dst[7] = ' '
	s = clockMonthString[3*(dt.Month-1):]
	dst[8] = s[0]  // 'N'
	dst[9] = s[1]  // 'o'
	dst[10] = s[2] // 'v'
	dst[11] = ' '
	dst[12] = byte(dt.Year/1000) + '0'   // '1'
	dst[13] = byte(dt.Year/100%10) + '0' // '9'
	dst[14] = byte(dt.Year/10%10) + '0'  // '9'
	dst[15] = byte(dt.Year%10) + '0'     // '4'
	dst[16] = ' '
	dst[17] = byte(dt.Hour/10) + '0' // '0'
	dst[18] = byte(dt.Hour%10) + '0' // '8'
	dst[19] = ':'
	dst[20] = byte(dt.Minute/10) + '0' // '4'
	dst[21] = byte(dt.Minute%10) + '0' // '9'
	dst[22] = ':'
	dst[23] = byte(dt.Second/10) + '0' // '3'
	dst[24] = byte(dt.Second%10) + '0' // '7'
	dst[25] = ' '
	dst[26] = 'G'
	dst[27] = 'M'
	dst[28] = 'T'
	return HTTPDateSize
}
