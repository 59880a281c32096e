package cookie

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpfield/internal/parser"
)

// Render converts an AST node (from ParseAST) back to a Cookie field value.
func Render(node ast.SchemaNode) (string, error) {
	pairs, err := parser.NodeToCookies(node)
	if err != nil {
		return "", fmt.Errorf("cookie: Render: %w", err)
	}

	cookies := make([]Cookie, len(pairs))
	for i, p := range pairs {
		cookies[i] = Cookie{Name: p.Name, Value: p.Value}
	}
	s, err := Marshal(cookies)
	if err != nil {
		return "", fmt.Errorf("cookie: Render: %w", err)
	}
	return s, nil
}
