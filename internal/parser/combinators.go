package parser

import (
	"strings"
	"unicode/utf8"
)

// Rule is a single PEG production. It matches a prefix of input and returns
// the unconsumed remainder together with the value it produced.
//
// On failure a Rule returns its input unchanged and a *MatchError, so a
// failed alternative never consumes anything.
type Rule[T any] func(input string) (string, T, error)

// Literal matches the exact text lit.
func Literal(name, lit string) Rule[string] {
	return func(input string) (string, string, error) {
		if !strings.HasPrefix(input, lit) {
			return input, "", fail(name, input)
		}
		return input[len(lit):], lit, nil
	}
}

// Empty always matches the empty string.
func Empty(input string) (string, string, error) {
	return input, "", nil
}

// Alt tries each rule in order and returns the first success.
// Later alternatives are never consulted once one has matched.
func Alt[T any](name string, rules ...Rule[T]) Rule[T] {
	return func(input string) (string, T, error) {
		for _, r := range rules {
			if rest, v, err := r(input); err == nil {
				return rest, v, nil
			}
		}
		var zero T
		return input, zero, fail(name, input)
	}
}

// Many0 applies r as many times as it matches. It never fails.
// A match that consumes nothing ends the repetition.
func Many0[T any](r Rule[T]) Rule[[]T] {
	return func(input string) (string, []T, error) {
		var out []T
		for {
			rest, v, err := r(input)
			if err != nil || len(rest) == len(input) {
				return input, out, nil
			}
			out = append(out, v)
			input = rest
		}
	}
}

// Preceded matches first then second and keeps second's value.
func Preceded[A, B any](first Rule[A], second Rule[B]) Rule[B] {
	return func(input string) (string, B, error) {
		var zero B
		rest, _, err := first(input)
		if err != nil {
			return input, zero, err
		}
		rest, v, err := second(rest)
		if err != nil {
			return input, zero, err
		}
		return rest, v, nil
	}
}

// Concat matches each rule in sequence and joins the matched text.
func Concat(name string, rules ...Rule[string]) Rule[string] {
	return func(input string) (string, string, error) {
		var sb strings.Builder
		rest := input
		for _, r := range rules {
			next, v, err := r(rest)
			if err != nil {
				return input, "", fail(name, input)
			}
			sb.WriteString(v)
			rest = next
		}
		return rest, sb.String(), nil
	}
}

// takeWhile consumes the longest prefix of runes satisfying pred.
// When min is 1 an empty prefix is a failure.
func takeWhile(name string, min int, pred func(rune) bool) Rule[string] {
	return func(input string) (string, string, error) {
		n := 0
		for n < len(input) {
			r, size := utf8.DecodeRuneInString(input[n:])
			if !pred(r) {
				break
			}
			n += size
		}
		if n < min {
			return input, "", fail(name, input)
		}
		return input[n:], input[:n], nil
	}
}
