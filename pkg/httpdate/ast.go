package httpdate

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpfield/internal/fastparser"
	"github.com/shapestone/shape-httpfield/internal/parser"
)

// ParseAST parses an HTTP date into an AST.
//
// The result is an ast.ObjectNode:
//
//	{ "type": "http-date", "layout": "rfc850",
//	  "year": 1994, "month": 11, "day": 6,
//	  "hour": 8, "minute": 49, "second": 37,
//	  "weekday": "Sun" }
func ParseAST(s string) (ast.SchemaNode, error) {
	return parser.NewParser(s).ParseDate()
}

// ToAST converts dt to the node form produced by ParseAST, without a
// layout property.
func ToAST(dt DateTime) ast.SchemaNode {
	return parser.DateToNode(toFast(dt), fastparser.LayoutNone)
}

// Render converts an AST node (from ParseAST or ToAST) to the RFC 1123 form.
// The weekday property, if any, is ignored.
func Render(node ast.SchemaNode) (string, error) {
	v, err := parser.NodeToDate(node)
	if err != nil {
		return "", fmt.Errorf("httpdate: Render: %w", err)
	}
	dt := fromFast(v)
	if !dt.Valid() {
		return "", fmt.Errorf("httpdate: Render: invalid date %v", dt)
	}
	return Format(dt), nil
}
