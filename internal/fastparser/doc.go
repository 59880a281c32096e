// Package fastparser implements zero-allocation scanners for Cookie field
// values and HTTP dates without AST construction. Results are substrings of
// the input or plain value types.
package fastparser
