package cookie

import (
	"fmt"

	"github.com/shapestone/shape-httpfield/internal/fastparser"
)

// ParseResult holds the result of lenient parsing.
type ParseResult struct {
	Cookies  []Cookie // pairs before the first malformed one
	Warnings []string // non-fatal issues
	Partial  bool     // true if a tail of the input was dropped
}

// UnmarshalLenient performs best-effort parsing of a Cookie field value.
// It never fails: it returns the pairs that precede the first malformed
// one, the same pairs List.All yields, and describes the dropped tail in
// Warnings.
func UnmarshalLenient(s string) *ParseResult {
	result := &ParseResult{}

	sc := fastparser.NewCookieScanner(s)
	for sc.Scan() {
		p := sc.Pair()
		result.Cookies = append(result.Cookies, View{Name: p.Name, Value: p.Value}.Clone())
	}

	if err := sc.Err(); err != nil {
		result.Partial = true
		result.Warnings = append(result.Warnings, convertError(err).Error())
		if dropped := len(s) - sc.Pos(); dropped > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("dropped %d trailing bytes: %q", dropped, s[sc.Pos():]))
		}
	}

	return result
}
