// Package parser implements an AST parser for Cookie lists and HTTP dates.
// It produces shape-core AST nodes (ObjectNode, LiteralNode, ArrayDataNode).
//
// A cookie list is mapped to an ArrayDataNode of pairs:
//
//	[ { "name": "foo", "value": "bar" }, ... ]
//
// An HTTP date is mapped to an ObjectNode:
//
//	{ "type": "http-date", "layout": "rfc1123",
//	  "year": 1994, "month": 11, "day": 6,
//	  "hour": 8, "minute": 49, "second": 37,
//	  "weekday": "Sun" }
package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpfield/internal/calendar"
	"github.com/shapestone/shape-httpfield/internal/fastparser"
	"github.com/shapestone/shape-httpfield/internal/tokenizer"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from header field values.
type Parser struct {
	data string
}

// NewParser creates a new AST parser for the given field value.
func NewParser(data string) *Parser {
	return &Parser{data: data}
}

// ParseCookies parses the input as a cookie list. Unlike the fast path it
// has no truncating mode: any malformed pair is an error. Errors are
// *fastparser.SyntaxError values carrying the same byte offset the fast
// path reports for the input.
func (p *Parser) ParseCookies() (ast.SchemaNode, error) {
	tok := tokenizer.NewTokenizer()
	tok.Initialize(p.data)
	tokens, eos := tok.Tokenize()

	// Every token is ASCII, so rune counts are byte offsets.
	elements := make([]ast.SchemaNode, 0, len(tokens)/3)
	pos := 0
	valueStart := -1
	i := 0
	for i < len(tokens) {
		name := tokens[i].ValueString()
		if tokens[i].Kind() != tokenizer.TokenOctets {
			return nil, syntaxError(pos, "empty cookie name")
		}
		if n := tokenPrefix(name); n < len(name) {
			if n == 0 {
				return nil, syntaxError(pos, "empty cookie name")
			}
			return nil, syntaxError(pos+n, "expected '=' after cookie name")
		}
		pos += len(name)
		i++
		if i == len(tokens) || tokens[i].Kind() != tokenizer.TokenEquals {
			return nil, syntaxError(pos, "expected '=' after cookie name")
		}
		pos++
		i++
		valueStart = pos

		var value string
		if i < len(tokens) && tokens[i].Kind() == tokenizer.TokenQuoted {
			quoted := tokens[i].ValueString()
			value = quoted[1 : len(quoted)-1]
			pos += len(quoted)
			i++
		} else {
			for i < len(tokens) {
				k := tokens[i].Kind()
				if k != tokenizer.TokenOctets && k != tokenizer.TokenEquals {
					break
				}
				value += tokens[i].ValueString()
				i++
			}
			pos += len(value)
		}
		elements = append(elements, pairToNode(name, value))

		if i == len(tokens) {
			break
		}
		if tokens[i].Kind() != tokenizer.TokenSeparator {
			return nil, syntaxError(pos, "expected \"; \" between cookie pairs")
		}
		pos += 2
		i++
		if i == len(tokens) {
			return nil, syntaxError(pos, "empty cookie name")
		}
	}

	// The tokenizer stopped at pos. A quote opening a value that never
	// closes is reported where the quoted run ends.
	if !eos {
		if pos == valueStart && pos < len(p.data) && p.data[pos] == '"' {
			return nil, syntaxError(quotedEnd(p.data, pos), "unterminated quoted cookie value")
		}
		return nil, syntaxError(pos, "invalid character in cookie list")
	}

	return ast.NewArrayDataNode(elements, zeroPos), nil
}

// ParseDate parses the input as an HTTP date.
func (p *Parser) ParseDate() (ast.SchemaNode, error) {
	dt, layout, ok := fastparser.ParseHTTPDate(p.data)
	if !ok {
		return nil, fmt.Errorf("httpdate: invalid date %q", p.data)
	}
	return DateToNode(dt, layout), nil
}

func syntaxError(pos int, msg string) error {
	return &fastparser.SyntaxError{Pos: pos, Msg: msg}
}

// tokenPrefix returns the length of the leading run of token characters in s.
func tokenPrefix(s string) int {
	for i := 0; i < len(s); i++ {
		if !fastparser.IsTokenChar(s[i]) {
			return i
		}
	}
	return len(s)
}

// quotedEnd returns the offset just past the cookie-octets that follow the
// quote at s[i].
func quotedEnd(s string, i int) int {
	i++
	for i < len(s) && fastparser.IsCookieOctet(s[i]) {
		i++
	}
	return i
}

func pairToNode(name, value string) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"name":  ast.NewLiteralNode(name, zeroPos),
		"value": ast.NewLiteralNode(value, zeroPos),
	}, zeroPos)
}

// CookiesToNode converts pairs to an ArrayDataNode.
func CookiesToNode(pairs []fastparser.CookiePair) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(pairs))
	for i, p := range pairs {
		elements[i] = pairToNode(p.Name, p.Value)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToCookies converts an AST ArrayDataNode back to cookie pairs.
// Names and values are not validated here.
func NodeToCookies(node ast.SchemaNode) ([]fastparser.CookiePair, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for cookies, got %T", node)
	}

	elements := arr.Elements()
	pairs := make([]fastparser.CookiePair, 0, len(elements))
	for i, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			return nil, fmt.Errorf("cookie %d: expected ObjectNode, got %T", i, elem)
		}
		props := obj.Properties()
		var p fastparser.CookiePair
		if v, ok := props["name"]; ok {
			if lit, ok := v.(*ast.LiteralNode); ok {
				p.Name, _ = lit.Value().(string)
			}
		}
		if v, ok := props["value"]; ok {
			if lit, ok := v.(*ast.LiteralNode); ok {
				p.Value, _ = lit.Value().(string)
			}
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

// DateToNode converts a date to an ObjectNode. The weekday is computed from
// the date.
func DateToNode(dt fastparser.DateTime, layout fastparser.Layout) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":   ast.NewLiteralNode("http-date", zeroPos),
		"year":   ast.NewLiteralNode(int64(dt.Year), zeroPos),
		"month":  ast.NewLiteralNode(int64(dt.Month), zeroPos),
		"day":    ast.NewLiteralNode(int64(dt.Day), zeroPos),
		"hour":   ast.NewLiteralNode(int64(dt.Hour), zeroPos),
		"minute": ast.NewLiteralNode(int64(dt.Minute), zeroPos),
		"second": ast.NewLiteralNode(int64(dt.Second), zeroPos),
	}
	if layout != fastparser.LayoutNone {
		props["layout"] = ast.NewLiteralNode(layout.String(), zeroPos)
	}
	if calendar.CheckDate(dt.Year, dt.Month, dt.Day) {
		wday := calendar.WeekdayFromDays(calendar.DaysFromCivil(dt.Year, dt.Month, dt.Day))
		props["weekday"] = ast.NewLiteralNode(weekdayAbbr[wday], zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

var weekdayAbbr = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// NodeToDate converts an AST ObjectNode back to a date. Missing fields are
// zero; the result is not validated.
func NodeToDate(node ast.SchemaNode) (fastparser.DateTime, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return fastparser.DateTime{}, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	var dt fastparser.DateTime
	fields := []struct {
		key string
		dst *int
	}{
		{"year", &dt.Year},
		{"month", &dt.Month},
		{"day", &dt.Day},
		{"hour", &dt.Hour},
		{"minute", &dt.Minute},
		{"second", &dt.Second},
	}
	for _, f := range fields {
		v, ok := props[f.key]
		if !ok {
			continue
		}
		lit, ok := v.(*ast.LiteralNode)
		if !ok {
			return fastparser.DateTime{}, fmt.Errorf("%s: expected LiteralNode, got %T", f.key, v)
		}
		switch n := lit.Value().(type) {
		case int64:
			*f.dst = int(n)
		case float64:
			if n != math.Trunc(n) || math.IsInf(n, 0) {
				return fastparser.DateTime{}, fmt.Errorf("%s: non-integral number %v", f.key, n)
			}
			*f.dst = int(n)
		case int:
			*f.dst = n
		case string:
			i, err := strconv.Atoi(n)
			if err != nil {
				return fastparser.DateTime{}, fmt.Errorf("%s: invalid number %q", f.key, n)
			}
			*f.dst = i
		default:
			return fastparser.DateTime{}, fmt.Errorf("%s: unsupported literal %T", f.key, n)
		}
	}

	return dt, nil
}
