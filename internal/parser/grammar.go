// Package parser implements the RFC 4180 CSV grammar as a parsing
// expression grammar.
//
// Each production is a Rule: a function from the remaining input to the
// new remainder and a value. Alternation is ordered and the first
// alternative to match wins. Repetition is greedy and never fails.
//
// Grammar:
//
//	file        = record *(CRLF record) maybe-crlf ETX ;
//	record      = field *(COMMA field) ;
//	field       = escaped / non-escaped ;
//	escaped     = DQUOTE *(TEXTDATA / COMMA / CR / LF / 2DQUOTE) DQUOTE ;
//	non-escaped = *TEXTDATA ;
//	maybe-crlf  = CRLF / "" ;
package parser

import "strings"

var (
	escapedPart  = Alt("escaped", TextData, Comma, CR, LF, DQuote2)
	escapedParts = Many0(escapedPart)
	textRuns     = Many0(TextData)

	// Field matches one escaped or non-escaped field.
	Field = Alt[string]("field", Escaped, NonEscaped)

	moreFields  = Many0(Preceded(Comma, Field))
	moreRecords = Many0(Preceded[string, []string](CRLF, Record))

	// MaybeCRLF matches an optional line break. It never fails.
	MaybeCRLF = Alt[string]("maybe-crlf", CRLF, Empty)
)

// NonEscaped matches a possibly empty run of TEXTDATA.
//
// Grammar:
//
//	non-escaped = *TEXTDATA ;
func NonEscaped(input string) (string, string, error) {
	rest, runs, _ := textRuns(input)
	return rest, strings.Join(runs, ""), nil
}

// Escaped matches a quoted field. The value is the field exactly as
// written, enclosing quotes and doubled quotes included.
//
// Grammar:
//
//	escaped = DQUOTE *(TEXTDATA / COMMA / CR / LF / 2DQUOTE) DQUOTE ;
func Escaped(input string) (string, string, error) {
	rest, _, err := DQuote(input)
	if err != nil {
		return input, "", err
	}
	rest, parts, _ := escapedParts(rest)
	rest, _, err = DQuote(rest)
	if err != nil {
		return input, "", fail("escaped", input)
	}
	return rest, `"` + strings.Join(parts, "") + `"`, nil
}

// Record matches one or more comma separated fields.
//
// Grammar:
//
//	record = field *(COMMA field) ;
func Record(input string) (string, []string, error) {
	rest, first, err := Field(input)
	if err != nil {
		return input, nil, err
	}
	rest, others, _ := moreFields(rest)
	return rest, append([]string{first}, others...), nil
}

// File matches one or more CRLF separated records followed by an optional
// line break and the mandatory ETX sentinel.
//
// Grammar:
//
//	file = record *(CRLF record) maybe-crlf ETX ;
func File(input string) (string, [][]string, error) {
	rest, first, err := Record(input)
	if err != nil {
		return input, nil, err
	}
	rest, others, _ := moreRecords(rest)
	rest, _, _ = MaybeCRLF(rest)
	rest, _, err = ETX(rest)
	if err != nil {
		return input, nil, err
	}
	return rest, append([][]string{first}, others...), nil
}
