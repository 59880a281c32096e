package httpdate

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestParseAST(t *testing.T) {
	node, err := ParseAST("Sun Nov  6 08:49:37 1994")
	if err != nil {
		t.Fatalf("ParseAST() error = %v", err)
	}
	props := node.(*ast.ObjectNode).Properties()
	if v := props["layout"].(*ast.LiteralNode).Value(); v != "asctime" {
		t.Errorf("layout = %v, want asctime", v)
	}
	if v := props["day"].(*ast.LiteralNode).Value(); v != int64(6) {
		t.Errorf("day = %v, want 6", v)
	}
}

func TestParseAST_Invalid(t *testing.T) {
	if _, err := ParseAST("Monday, 08-Aug-20 19:06:22 GMT"); err == nil {
		t.Error("expected error")
	}
}

func TestRender(t *testing.T) {
	node, err := ParseAST("Sunday, 06-Nov-94 08:49:37 GMT")
	if err != nil {
		t.Fatalf("ParseAST() error = %v", err)
	}
	got, err := Render(node)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "Sun, 06 Nov 1994 08:49:37 GMT"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestToAST_Render(t *testing.T) {
	v := dt(2020, 8, 8, 19, 6, 22)
	node := ToAST(v)
	props := node.(*ast.ObjectNode).Properties()
	if _, ok := props["layout"]; ok {
		t.Error("ToAST() should not set layout")
	}
	if w := props["weekday"].(*ast.LiteralNode).Value(); w != "Sat" {
		t.Errorf("weekday = %v, want Sat", w)
	}
	got, err := Render(node)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != Format(v) {
		t.Errorf("Render() = %q, want %q", got, Format(v))
	}
}

func TestRender_Invalid(t *testing.T) {
	if _, err := Render(ToAST(dt(1994, 2, 29, 0, 0, 0))); err == nil {
		t.Error("expected error for invalid date")
	}
	if _, err := Render(ast.NewArrayDataNode(nil, ast.Position{})); err == nil {
		t.Error("expected error for ArrayDataNode")
	}
}
