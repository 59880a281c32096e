package cookie

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpfield/internal/fastparser"
	"github.com/shapestone/shape-httpfield/internal/parser"
)

// ParseAST parses a Cookie field value into an AST.
//
// The result is an ast.ArrayDataNode with one ObjectNode per pair:
//
//	[ { "name": "foo", "value": "bar" },
//	  { "name": "theme", "value": "dark" } ]
//
// Quotes around a value are removed. ParseAST is strict: a malformed pair
// anywhere in s is a *ParseError at the same position Validate reports.
func ParseAST(s string) (ast.SchemaNode, error) {
	node, err := parser.NewParser(s).ParseCookies()
	if err != nil {
		return nil, convertError(err)
	}
	return node, nil
}

// ToAST converts cookies to the node form produced by ParseAST. Names and
// values are not validated; Render does that.
func ToAST(cookies []Cookie) ast.SchemaNode {
	pairs := make([]fastparser.CookiePair, len(cookies))
	for i, c := range cookies {
		pairs[i] = fastparser.CookiePair{Name: c.Name, Value: c.Value}
	}
	return parser.CookiesToNode(pairs)
}
