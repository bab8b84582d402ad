package csv

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-rfc4180/internal/parser"
)

// ParseError reports where the grammar stopped matching.
//
// The grammar has a single failure kind, so position is given as the
// remaining input rather than a line and column.
type ParseError struct {
	// Rule is the production that could not match, such as "etx".
	Rule string
	// Remaining is the input at the point matching stopped.
	Remaining string
	// Err is ErrNoMatch or ErrTrailingData.
	Err error
}

// Error returns a message naming the rule and the start of the unmatched
// input.
func (e *ParseError) Error() string {
	if e.Remaining == "" {
		return fmt.Sprintf("csv: %v: %s at end of input", e.Err, e.Rule)
	}
	return fmt.Sprintf("csv: %v: %s at %q", e.Err, e.Rule, parser.Preview(e.Remaining))
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	// ErrNoMatch indicates the input does not match the grammar.
	ErrNoMatch = errors.New("no match")

	// ErrTrailingData indicates input after the end-of-text sentinel.
	ErrTrailingData = errors.New("data after end-of-text sentinel")

	// ErrInvalidField indicates a value that is not a single field.
	ErrInvalidField = errors.New("invalid field")

	// ErrEmptyRecord indicates a record with no fields.
	ErrEmptyRecord = errors.New("record has no fields")

	// ErrNoRecords indicates a file with no records.
	ErrNoRecords = errors.New("file has no records")
)

func newParseError(err error) *ParseError {
	var me *parser.MatchError
	if errors.As(err, &me) {
		return &ParseError{Rule: me.Rule, Remaining: me.Remaining, Err: ErrNoMatch}
	}
	return &ParseError{Rule: "file", Err: err}
}
