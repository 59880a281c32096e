package httpdate

import "github.com/shapestone/shape-httpfield/internal/fastparser"

// Size is the length of a formatted date.
const Size = fastparser.HTTPDateSize

// FormatInto writes dt in RFC 1123 form to dst[:Size]. If dt is not valid
// it writes nothing and returns false. It panics if len(dst) < Size.
func FormatInto(dt DateTime, dst []byte) bool {
	_ = dst[Size-1]
	if !dt.Valid() {
		return false
	}
	fastparser.WriteHTTPDate(dst, toFast(dt))
	return true
}

// Format returns dt in RFC 1123 form, or "" if dt is not valid.
func Format(dt DateTime) string {
	var buf [Size]byte
	if !FormatInto(dt, buf[:]) {
		return ""
	}
	return string(buf[:])
}

// Append appends the RFC 1123 form of dt to dst. If dt is not valid, dst is
// returned unchanged along with false.
func Append(dst []byte, dt DateTime) ([]byte, bool) {
	if !dt.Valid() {
		return dst, false
	}
	return fastparser.AppendHTTPDate(dst, toFast(dt)), true
}
