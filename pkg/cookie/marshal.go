package cookie

import (
	"strconv"
	"sync"

	"github.com/shapestone/shape-httpfield/internal/fastparser"
)

// bufPool pools []byte slices for Marshal.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 256)
		return &b
	},
}

// Marshal returns the Cookie field value for cookies, pairs joined by "; ".
// Values are written unquoted. A name that is not a token or a value with a
// byte outside cookie-octet yields a *ParseError naming the cookie index.
func Marshal(cookies []Cookie) (string, error) {
	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	buf, err := AppendList(buf, cookies)
	var s string
	if err == nil {
		s = string(buf)
	}

	*bp = buf[:0]
	bufPool.Put(bp)
	return s, err
}

// AppendList appends the Cookie field value for cookies to dst. On error dst
// is returned unchanged.
func AppendList(dst []byte, cookies []Cookie) ([]byte, error) {
	for i, c := range cookies {
		if err := checkCookie(i, c); err != nil {
			return dst, err
		}
	}
	for i, c := range cookies {
		if i > 0 {
			dst = append(dst, ';', ' ')
		}
		dst = append(dst, c.Name...)
		dst = append(dst, '=')
		dst = append(dst, c.Value...)
	}
	return dst, nil
}

func checkCookie(i int, c Cookie) error {
	if c.Name == "" {
		return &ParseError{Message: "cookie name is empty", Position: i}
	}
	for j := 0; j < len(c.Name); j++ {
		if !fastparser.IsTokenChar(c.Name[j]) {
			return &ParseError{Message: "cookie name " + strconv.Quote(c.Name) + " is not a token", Position: i}
		}
	}
	for j := 0; j < len(c.Value); j++ {
		if !fastparser.IsCookieOctet(c.Value[j]) {
			return &ParseError{Message: "cookie value " + strconv.Quote(c.Value) + " has an invalid byte", Position: i}
		}
	}
	return nil
}
