// Package cookie parses and serializes the value of the HTTP Cookie header
// field per RFC 6265 section 4.2.1:
//
//	cookie-list  = cookie-pair *( ";" SP cookie-pair )
//	cookie-pair  = cookie-name "=" cookie-value
//	cookie-name  = token
//	cookie-value = *cookie-octet / ( DQUOTE *cookie-octet DQUOTE )
//	cookie-octet = %x21 / %x23-2B / %x2D-3A / %x3C-5B / %x5D-7E
//
// Cookie attributes (Expires, Domain, Secure, ...) are not parsed.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. A Scanner holds a cursor and must not be shared.
//
// # Parsing APIs
//
// The package provides several parsing paths:
//
//   - List.All - Lazy enumeration; stops silently at the first malformed pair
//   - Valid - Reports whether the whole input is a well-formed list
//   - Scanner / Parse - Strict parsing that reports the failing position
//   - UnmarshalLenient - Best-effort parsing with warnings
//   - ParseAST - AST-based parsing via shape-core
//   - ListAll - Enumeration over every Cookie field of a header collection
//
// Marshal and Render go the other way, from pairs to a field value.
package cookie

import (
	"iter"
	"strings"

	"github.com/shapestone/shape-httpfield/internal/fastparser"
)

// View is a cookie name/value pair whose strings share memory with the
// parsed input. Quotes around a value are not part of Value.
type View struct {
	Name  string
	Value string
}

// Clone returns a Cookie that does not reference the parsed input.
func (v View) Clone() Cookie {
	return Cookie{Name: strings.Clone(v.Name), Value: strings.Clone(v.Value)}
}

// Cookie is a cookie name/value pair that owns its strings.
type Cookie struct {
	Name  string
	Value string
}

// List is a Cookie field value viewed as a sequence of pairs.
//
// If a malformed pair is encountered while iterating, the sequence ends as
// if the input stopped right before it. Use Valid to find out whether the
// whole value was well-formed, or Parse / Scanner to get the error.
//
// Example:
//
//	for c := range cookie.List(`fruits="pear banana"; choice=1`).All() {
//		fmt.Println(c.Name, c.Value)
//	}
type List string

// All returns a sequence over the pairs of l. Each call starts over from the
// beginning of l.
func (l List) All() iter.Seq[View] {
	return func(yield func(View) bool) {
		sc := fastparser.NewCookieScanner(string(l))
		for sc.Scan() {
			p := sc.Pair()
			if !yield(View{Name: p.Name, Value: p.Value}) {
				return
			}
		}
	}
}

// Len returns the number of pairs All yields.
func (l List) Len() int {
	n := 0
	for range l.All() {
		n++
	}
	return n
}

// Valid reports whether l is a well-formed cookie list.
func (l List) Valid() bool {
	return Valid(string(l))
}

// Valid reports whether s is a well-formed cookie list in its entirety.
// The empty string is a valid, empty list.
func Valid(s string) bool {
	return fastparser.ValidateCookies(s) == nil
}

// Validate is like Valid but returns a *ParseError describing the first
// malformed pair.
func Validate(s string) error {
	return convertError(fastparser.ValidateCookies(s))
}

// Parse parses s strictly and returns owning copies of its pairs.
// On error no pairs are returned.
func Parse(s string) ([]Cookie, error) {
	var cookies []Cookie
	sc := NewScanner(s)
	for sc.Scan() {
		cookies = append(cookies, sc.View().Clone())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cookies, nil
}
