package parser

import "fmt"

// MatchError reports that a production could not match.
// Remaining is the input at the point where matching stopped.
type MatchError struct {
	Rule      string
	Remaining string
}

func fail(rule, remaining string) *MatchError {
	return &MatchError{Rule: rule, Remaining: remaining}
}

// Error returns a short message naming the rule and the start of the
// unmatched input.
func (e *MatchError) Error() string {
	if e.Remaining == "" {
		return fmt.Sprintf("%s: no match at end of input", e.Rule)
	}
	return fmt.Sprintf("%s: no match at %q", e.Rule, Preview(e.Remaining))
}

const previewLen = 16

// Preview shortens s to its first 16 runes for use in error messages.
func Preview(s string) string {
	n := 0
	for i := range s {
		if n == previewLen {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
