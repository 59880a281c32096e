package cookie

import "github.com/shapestone/shape-httpfield/internal/fastparser"

// Scanner reads the pairs of a cookie list one at a time and, unlike
// List.All, reports why it stopped.
// A single Scanner is not safe for concurrent use; create one per goroutine.
type Scanner struct {
	sc *fastparser.CookieScanner
}

// NewScanner returns a Scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{sc: fastparser.NewCookieScanner(s)}
}

// Scan advances to the next pair. It returns false when the input is
// exhausted or a malformed pair is found.
func (s *Scanner) Scan() bool { return s.sc.Scan() }

// View returns the pair found by the last call to Scan.
func (s *Scanner) View() View {
	p := s.sc.Pair()
	return View{Name: p.Name, Value: p.Value}
}

// Offset returns the byte offset just past the last pair scanned.
func (s *Scanner) Offset() int { return s.sc.Pos() }

// Err returns the *ParseError that stopped the scan, or nil if the whole
// input was consumed.
func (s *Scanner) Err() error { return convertError(s.sc.Err()) }
