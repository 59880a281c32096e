package fastparser

import (
	"strings"
	"testing"
)

func TestIsCookieOctet(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := c == 0x21 ||
			(c >= 0x23 && c <= 0x2B) ||
			(c >= 0x2D && c <= 0x3A) ||
			(c >= 0x3C && c <= 0x5B) ||
			(c >= 0x5D && c <= 0x7E)
		if got := IsCookieOctet(byte(c)); got != want {
			t.Errorf("IsCookieOctet(%#02x) = %v, want %v", c, got, want)
		}
	}
}

func TestIsCookieOctet_Excluded(t *testing.T) {
	for _, c := range []byte{' ', '"', ',', ';', '\\', 0x7F, 0x80, 0xFF, '\t', '\r', '\n', 0} {
		if IsCookieOctet(c) {
			t.Errorf("IsCookieOctet(%q) = true, want false", c)
		}
	}
}

func TestIsTokenChar(t *testing.T) {
	const punct = "!#$%&'*+-.^_`|~"
	for c := 0; c < 256; c++ {
		want := (c >= '0' && c <= '9') ||
			(c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			strings.IndexByte(punct, byte(c)) >= 0
		if got := IsTokenChar(byte(c)); got != want {
			t.Errorf("IsTokenChar(%#02x) = %v, want %v", c, got, want)
		}
	}
}

func TestIsTokenChar_Separators(t *testing.T) {
	for _, c := range []byte(`()<>@,;:\"/[]?={} ` + "\t\x7f\x80\xff") {
		if IsTokenChar(c) {
			t.Errorf("IsTokenChar(%q) = true, want false", c)
		}
	}
}

func TestTokenCharsAreCookieOctets(t *testing.T) {
	for c := 0; c < 256; c++ {
		if IsTokenChar(byte(c)) && !IsCookieOctet(byte(c)) {
			t.Errorf("%q is a token char but not a cookie-octet", c)
		}
	}
}
