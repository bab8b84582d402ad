package parser

import "strings"

// Parse matches a complete file at the start of input. It returns the
// input left after the ETX sentinel and the records in row order.
//
// On failure the records are nil and the error is a *MatchError whose
// Remaining field holds the input at the point matching stopped.
func Parse(input string) (string, [][]string, error) {
	rest, records, err := File(input)
	if err != nil {
		return input, nil, err
	}
	return rest, records, nil
}

// IsField reports whether s is exactly one field, with nothing left over.
func IsField(s string) bool {
	rest, _, err := Field(s)
	return err == nil && rest == ""
}

// Quote returns s in escaped form: enclosed in double quotes with every
// double quote doubled.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Unquote reverses Quote. Text not starting with a double quote is
// returned unchanged. field should satisfy IsField.
func Unquote(field string) string {
	if len(field) < 2 || field[0] != '"' {
		return field
	}
	return strings.ReplaceAll(field[1:len(field)-1], `""`, `"`)
}
