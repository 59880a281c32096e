package fastparser

import (
	"fmt"
	"io"
)

// CookiePair is a name/value pair scanned from a Cookie field value.
// Both strings are substrings of the scanned input.
type CookiePair struct {
	Name  string
	Value string
}

// SyntaxError reports malformed input at a byte offset.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

func syntaxErrorf(pos int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// NextCookie scans the cookie-pair that starts at pos in s.
//
//	cookie-list  = cookie-pair *( ";" SP cookie-pair )
//	cookie-pair  = cookie-name "=" cookie-value
//	cookie-name  = token
//	cookie-value = *cookie-octet / ( DQUOTE *cookie-octet DQUOTE )
//
// Any pair after the first must be preceded by "; ". On success next is the
// offset just past the pair. At the end of s it returns io.EOF. A malformed
// pair yields a *SyntaxError and next == pos. Quotes around a value are not
// part of the returned Value.
func NextCookie(s string, pos int) (pair CookiePair, next int, err error) {
	n := len(s)
	if pos < 0 || pos > n {
		return CookiePair{}, pos, syntaxErrorf(pos, "offset out of range")
	}
	if pos == n {
		return CookiePair{}, pos, io.EOF
	}

	i := pos
	if i != 0 {
		if n-i < 2 || s[i] != ';' || s[i+1] != ' ' {
			return CookiePair{}, pos, syntaxErrorf(i, "expected \"; \" between cookie pairs")
		}
		i += 2
	}

	start := i
	for i < n && IsTokenChar(s[i]) {
		i++
	}
	if i == start {
		return CookiePair{}, pos, syntaxErrorf(i, "empty cookie name")
	}
	if i == n || s[i] != '=' {
		return CookiePair{}, pos, syntaxErrorf(i, "expected '=' after cookie name")
	}
	pair.Name = s[start:i]
	i++ // '='

	if i == n {
		return pair, i, nil
	}

	if s[i] == '"' {
		i++
		start = i
		for i < n && cookieOctets[s[i]] {
			i++
		}
		if i == n || s[i] != '"' {
			return CookiePair{}, pos, syntaxErrorf(i, "unterminated quoted cookie value")
		}
		pair.Value = s[start:i]
		return pair, i + 1, nil
	}

	start = i
	for i < n && cookieOctets[s[i]] {
		i++
	}
	if i < n && s[i] != ';' {
		return CookiePair{}, pos, syntaxErrorf(i, "invalid character %q in cookie value", s[i])
	}
	pair.Value = s[start:i]
	return pair, i, nil
}

// CookieScanner steps through the pairs of a cookie list, stopping at the
// first syntax error. It is not safe for concurrent use.
type CookieScanner struct {
	data string
	pos  int
	pair CookiePair
	err  error
	done bool
}

// NewCookieScanner creates a scanner positioned at the start of s.
func NewCookieScanner(s string) *CookieScanner {
	return &CookieScanner{data: s}
}

// initCookieScanner initializes a scanner in-place (avoids heap alloc).
func initCookieScanner(sc *CookieScanner, s string) {
	*sc = CookieScanner{data: s}
}

// Scan advances to the next pair. It returns false at the end of input or
// on a syntax error; Err tells the two apart.
func (sc *CookieScanner) Scan() bool {
	if sc.done {
		return false
	}
	pair, next, err := NextCookie(sc.data, sc.pos)
	if err != nil {
		sc.done = true
		sc.pair = CookiePair{}
		if err != io.EOF {
			sc.err = err
		}
		return false
	}
	sc.pair = pair
	sc.pos = next
	return true
}

// Pair returns the pair produced by the last successful Scan.
func (sc *CookieScanner) Pair() CookiePair { return sc.pair }

// Pos returns the offset of the first byte not yet consumed.
func (sc *CookieScanner) Pos() int { return sc.pos }

// Err returns the syntax error that stopped the scan, or nil if the input
// was consumed completely.
func (sc *CookieScanner) Err() error { return sc.err }

// ValidateCookies scans all of s and returns the first syntax error, or nil
// if s is a well-formed cookie list. The empty string is a valid list.
func ValidateCookies(s string) error {
	var sc CookieScanner
	initCookieScanner(&sc, s)
	for sc.Scan() {
	}
	return sc.Err()
}
