package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-httpfield/internal/fastparser"
)

// NewTokenizer creates a tokenizer for Cookie field values.
// Matchers are tried in order:
// 1. "; " pair separator
// 2. "=" (name/value separator, or part of a value)
// 3. Quoted value
// 4. Run of cookie-octets
//
// Whitespace is significant, so the default whitespace skipper is not used.
// A byte no matcher accepts (a lone space, comma, backslash, control or
// non-ASCII character) stops tokenization before the end of the stream.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenSeparator, "; "),
		tokenizer.StringMatcherFunc(TokenEquals, "="),
		QuotedMatcher(),
		OctetsMatcher(),
	)
}

// NewTokenizerWithStream creates a cookie tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// isOctet reports whether r is a cookie-octet.
func isOctet(r rune) bool {
	return r >= 0 && r < 0x80 && fastparser.IsCookieOctet(byte(r))
}

// QuotedMatcher matches DQUOTE *cookie-octet DQUOTE. The token value keeps
// both quotes.
func QuotedMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '"' {
			return nil
		}
		stream.NextChar()
		value := []rune{'"'}

		for {
			r, ok := stream.PeekChar()
			if !ok {
				// Unterminated
				return nil
			}
			if r == '"' {
				stream.NextChar()
				value = append(value, '"')
				return tokenizer.NewToken(TokenQuoted, value)
			}
			if !isOctet(r) {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}
	}
}

// OctetsMatcher matches a non-empty run of cookie-octets, stopping at "="
// so that a cookie name is always a token of its own.
func OctetsMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || r == '=' || !isOctet(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenOctets, value)
	}
}
