// Package csv parses RFC 4180 CSV text with a parsing expression grammar.
//
// The grammar is strict: records are separated by CRLF, unescaped fields
// hold only TEXTDATA (printable ASCII without comma or double quote), and
// every file must end with the ETX sentinel (0x03), optionally preceded by
// a CRLF. Input lacking the sentinel is rejected even when it is otherwise
// well formed.
//
// Grammar:
//
//	file        = record *(CRLF record) maybe-crlf ETX ;
//	record      = field *(COMMA field) ;
//	field       = escaped / non-escaped ;
//	escaped     = DQUOTE *(TEXTDATA / COMMA / CR / LF / 2DQUOTE) DQUOTE ;
//	non-escaped = *TEXTDATA ;
//
// Escaped fields are returned exactly as written, surrounding quotes and
// doubled quotes included. Use Unquote to obtain the logical value.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. The grammar holds no mutable state.
//
// # Example usage:
//
//	records, rest, err := csv.Parse("name,age\r\nAlice,30\x03")
//	if err != nil {
//	    // handle error
//	}
//	// records = [["name" "age"] ["Alice" "30"]], rest = ""
package csv

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-rfc4180/internal/fastparser"
	"github.com/shapestone/shape-rfc4180/internal/parser"
	"github.com/shapestone/shape-rfc4180/internal/tokenizer"
)

// Sentinel is the end-of-text character that terminates every file.
const Sentinel = '\x03'

// Parse matches a complete file at the start of input.
//
// It returns the records in row order, each with its fields in column
// order, and the input left over after the sentinel. On failure the error
// is a *ParseError and no records are returned.
//
// Example:
//
//	records, rest, err := csv.Parse("a,b\r\nc,d\x03")
//	// records = [["a" "b"] ["c" "d"]], rest = "", err = nil
func Parse(input string) ([][]string, string, error) {
	return parse(input, DefaultOptions())
}

// ParseStrict is like Parse but also fails with ErrTrailingData when any
// input follows the sentinel.
func ParseStrict(input string) ([][]string, error) {
	opts := DefaultOptions()
	opts.Strict = true
	records, _, err := parse(input, opts)
	return records, err
}

// ParseWithOptions parses input with custom options.
func ParseWithOptions(input string, opts Options) ([][]string, string, error) {
	return parse(input, opts)
}

func parse(input string, opts Options) ([][]string, string, error) {
	log := opts.logger()
	log.Debug("parsing csv", "bytes", len(input))

	rest, records, err := parser.Parse(input)
	if err != nil {
		perr := newParseError(err)
		log.Debug("csv did not match", "rule", perr.Rule, "remaining", len(perr.Remaining))
		return nil, input, perr
	}

	if opts.Strict && rest != "" {
		log.Debug("csv has trailing data", "remaining", len(rest))
		return nil, input, &ParseError{Rule: "file", Remaining: rest, Err: ErrTrailingData}
	}

	log.Debug("parsed csv", "records", len(records), "remaining", len(rest))
	return records, rest, nil
}

// ParseAST parses input into Shape's AST.
//
// Returns an *ast.ArrayDataNode of records, each an *ast.ArrayDataNode of
// *ast.LiteralNode string fields. Trailing data after the sentinel is an
// error.
func ParseAST(input string) (ast.SchemaNode, error) {
	records, err := ParseStrict(input)
	if err != nil {
		return nil, err
	}
	return toAST(records), nil
}

func toAST(records [][]string) *ast.ArrayDataNode {
	nodes := make([]ast.SchemaNode, len(records))
	for i, record := range records {
		fields := make([]ast.SchemaNode, len(record))
		for j, field := range record {
			fields[j] = ast.NewLiteralNode(field, ast.ZeroPosition())
		}
		nodes[i] = ast.NewArrayDataNode(fields, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(nodes, ast.ZeroPosition())
}

// Validate checks that input is exactly one file with nothing after the
// sentinel.
//
// Valid input is recognized by a DFA without building records. Only
// invalid input is reparsed with the grammar to produce a *ParseError.
//
//	if err := csv.Validate(input); err != nil {
//	    fmt.Println("Invalid CSV:", err)
//	}
func Validate(input string) error {
	if n, ok := fastparser.Match(input); ok && n == len(input) {
		return nil
	}
	_, err := ParseStrict(input)
	return err
}

// Format returns the format identifier for this parser.
func Format() string {
	return "CSV"
}

// Token is a terminal of the grammar found by Tokenize.
type Token struct {
	// Kind is one of the Token* constants.
	Kind string
	// Value is the matched text.
	Value string
	// Offset is the byte offset of the token in the input, so
	// input[Offset:] starts with Value.
	Offset int
}

// Token kinds returned by Tokenize.
const (
	TokenComma    = tokenizer.TokenComma
	TokenDQuote   = tokenizer.TokenDQuote
	TokenCRLF     = tokenizer.TokenCRLF
	TokenCR       = tokenizer.TokenCR
	TokenLF       = tokenizer.TokenLF
	TokenETX      = tokenizer.TokenETX
	TokenTextData = tokenizer.TokenTextData
	TokenOther    = tokenizer.TokenOther
)

// Tokenize splits input into grammar terminals without parsing it.
// It never fails: runes with no terminal are reported as TokenOther.
// This is a diagnostic aid for locating text the grammar cannot accept.
func Tokenize(input string) []Token {
	scanned := tokenizer.Scan(input)
	tokens := make([]Token, len(scanned))
	for i, t := range scanned {
		tokens[i] = Token{Kind: t.Kind, Value: t.Value, Offset: t.Offset}
	}
	return tokens
}

// Unquote returns the logical value of a field produced by Parse: escaped
// fields lose their enclosing quotes and doubled quotes collapse to one.
// Non-escaped fields are returned unchanged.
func Unquote(field string) (string, error) {
	if !parser.IsField(field) {
		return "", ErrInvalidField
	}
	return parser.Unquote(field), nil
}
