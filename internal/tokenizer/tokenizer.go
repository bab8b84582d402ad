package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-rfc4180/internal/parser"
)

// NewTokenizer creates a tokenizer for the grammar's terminals.
//
// Matchers are tried in order, so CRLF is listed before CR and LF to match
// the longer sequence first. TokenOther comes last and catches everything
// else, which means every input tokenizes completely.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenCRLF, "\r\n"),
		tokenizer.StringMatcherFunc(TokenCR, "\r"),
		tokenizer.StringMatcherFunc(TokenLF, "\n"),
		tokenizer.StringMatcherFunc(TokenComma, ","),
		tokenizer.StringMatcherFunc(TokenDQuote, `"`),
		tokenizer.StringMatcherFunc(TokenETX, "\x03"),
		TextDataMatcher(),
		OtherMatcher(),
	)
}

// TextDataMatcher matches the longest run of TEXTDATA runes.
//
// Grammar:
//
//	TEXTDATA = %x20-21 / %x23-2B / %x2D-7E ;
func TextDataMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || !parser.IsTextData(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenTextData, value)
	}
}

// OtherMatcher matches any single rune.
func OtherMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenOther, []rune{r})
	}
}

// Token is one scanned terminal.
type Token struct {
	Kind  string
	Value string
	// Offset is the byte offset of Value in the scanned input.
	Offset int
}

// Scan tokenizes the whole of input.
//
// The underlying stream counts runes, so offsets are rebuilt from token
// lengths. Tokens are contiguous and cover the input.
func Scan(input string) []Token {
	tok := NewTokenizer()
	tok.Initialize(input)

	var tokens []Token
	offset := 0
	for {
		t, ok := tok.NextToken()
		if !ok {
			return tokens
		}
		value := t.ValueString()
		tokens = append(tokens, Token{
			Kind:   t.Kind(),
			Value:  value,
			Offset: offset,
		})
		offset += len(value)
	}
}
