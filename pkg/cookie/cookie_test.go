package cookie

import (
	"errors"
	"slices"
	"testing"
)

func collect(l List) []View {
	var got []View
	for c := range l.All() {
		got = append(got, c)
	}
	return got
}

func TestList_All(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []View
	}{
		{"empty", "", nil},
		{"single", "foo=bar", []View{{"foo", "bar"}}},
		{"empty value", "foo=", []View{{"foo", ""}}},
		{"quoted", `foo="bar"`, []View{{"foo", "bar"}}},
		{"quoted empty", `foo=""`, []View{{"foo", ""}}},
		{"single quotes kept", "foo=''", []View{{"foo", "''"}}},
		{"two empty", "foo=; bar=", []View{{"foo", ""}, {"bar", ""}}},
		{"mixed", `a=1; b="two"; c=; d=x=y`, []View{{"a", "1"}, {"b", "two"}, {"c", ""}, {"d", "x=y"}}},
		{"punctuation", "x=(1)/[2]?{3}", []View{{"x", "(1)/[2]?{3}"}}},
		{"token name", "__Host-id!#$%&'*+.^_`|~=1", []View{{"__Host-id!#$%&'*+.^_`|~", "1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Valid(tt.input) {
				t.Fatalf("Valid(%q) = false", tt.input)
			}
			got := collect(List(tt.input))
			if !slices.Equal(got, tt.want) {
				t.Errorf("All() = %v, want %v", got, tt.want)
			}
			if n := List(tt.input).Len(); n != len(tt.want) {
				t.Errorf("Len() = %d, want %d", n, len(tt.want))
			}
		})
	}
}

// A malformed pair ends the sequence without an error.
func TestList_All_Truncates(t *testing.T) {
	tests := []struct {
		input string
		want  []View
	}{
		{"foo=;bar=", []View{{"foo", ""}}},
		{"foo=bar, baz=qux", nil},
		{"a=1; b=2;c=3", []View{{"a", "1"}, {"b", "2"}}},
		{"a=1; b c=3", []View{{"a", "1"}}},
		{`a=1; b="2`, []View{{"a", "1"}}},
		{"a=1; ", []View{{"a", "1"}}},
		{"foo", nil},
		{"=foo", nil},
	}

	for _, tt := range tests {
		l := List(tt.input)
		if got := collect(l); !slices.Equal(got, tt.want) {
			t.Errorf("List(%q).All() = %v, want %v", tt.input, got, tt.want)
		}
		if l.Valid() {
			t.Errorf("List(%q).Valid() = true, want false", tt.input)
		}
	}
}

func TestList_All_Restartable(t *testing.T) {
	l := List("a=1; b=2; c=3")
	seq := l.All()

	var first []string
	for c := range seq {
		first = append(first, c.Name)
		if c.Name == "b" {
			break
		}
	}
	if !slices.Equal(first, []string{"a", "b"}) {
		t.Errorf("first pass = %v", first)
	}

	var second []string
	for c := range seq {
		second = append(second, c.Name)
	}
	if !slices.Equal(second, []string{"a", "b", "c"}) {
		t.Errorf("second pass = %v, want [a b c]", second)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"foo=", true},
		{"foo=bar; baz=", true},
		{"foo", false},
		{"foo ", false},
		{"=foo", false},
		{`foo="`, false},
		{`foo=";`, false},
		{`foo="bar"x`, false},
		{"foo=;bar=", false},
		{"foo=bar;", false},
		{"foo=bar; ", false},
		{"; foo=bar", false},
		{"foo=a b", false},
		{`foo=a\b`, false},
		{"foo=a,b", false},
		{"foo=\x7f", false},
		{"foo=\xc3\xa9", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.input); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if err := Validate(tt.input); (err == nil) != tt.want {
			t.Errorf("Validate(%q) = %v, want valid=%v", tt.input, err, tt.want)
		}
	}
}

func TestValidate_Position(t *testing.T) {
	tests := []struct {
		input   string
		wantPos int
	}{
		{"foo", 3},
		{"=foo", 0},
		{"foo=;bar=", 4},
		{"a=1; b=2, c=3", 8},
		{"a=1; ", 5},
		{`a="x`, 4},
	}

	for _, tt := range tests {
		err := Validate(tt.input)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Validate(%q) = %v, want *ParseError", tt.input, err)
			continue
		}
		if pe.Position != tt.wantPos {
			t.Errorf("Validate(%q) position = %d, want %d", tt.input, pe.Position, tt.wantPos)
		}
	}
}

// Views are substrings of the input.
func TestView_SharesInput(t *testing.T) {
	in := `name="value"`
	for c := range List(in).All() {
		if c.Value != in[6:11] {
			t.Errorf("Value = %q", c.Value)
		}
		cl := c.Clone()
		if cl.Name != c.Name || cl.Value != c.Value {
			t.Errorf("Clone() = %+v, want %+v", cl, c)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse(`sid=abc123; theme="dark"; lang=`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []Cookie{{"sid", "abc123"}, {"theme", "dark"}, {"lang", ""}}
	if !slices.Equal(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_Error(t *testing.T) {
	got, err := Parse("sid=abc123;theme=dark")
	if err == nil {
		t.Fatal("expected error")
	}
	if got != nil {
		t.Errorf("Parse() returned %v on error, want nil", got)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Position != 10 {
		t.Errorf("err = %v, want *ParseError at position 10", err)
	}
	if want := `cookie: parse error at position 10: expected "; " between cookie pairs`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// Every list accepted by Valid enumerates to the same pairs as Parse.
func TestValidInputsEnumerateFully(t *testing.T) {
	inputs := []string{
		"", "a=", `a=""`, "a=b; c=d", `a="b"; c="d"; e=f=g`, "x=!#$%&'()*+-./:<>?@[]^_`{|}~",
	}
	for _, in := range inputs {
		parsed, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		var viewed []Cookie
		for c := range List(in).All() {
			viewed = append(viewed, c.Clone())
		}
		if !slices.Equal(parsed, viewed) {
			t.Errorf("%q: Parse = %v, All = %v", in, parsed, viewed)
		}
	}
}
