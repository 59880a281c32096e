package cookie

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-httpfield/internal/fastparser"
)

// ParseError represents an error that occurred while parsing a cookie list.
type ParseError struct {
	Message  string // human-readable error message
	Position int    // byte offset in input; cookie index for Marshal errors
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cookie: parse error at position %d: %s", e.Position, e.Message)
}

func newParseErrorAtPos(msg string, pos int) *ParseError {
	return &ParseError{Message: msg, Position: pos}
}

// convertError maps a fast-path syntax error to a *ParseError.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	var se *fastparser.SyntaxError
	if errors.As(err, &se) {
		return newParseErrorAtPos(se.Msg, se.Pos)
	}
	return err
}
