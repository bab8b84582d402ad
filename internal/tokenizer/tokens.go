// Package tokenizer splits CSV text into the terminals of the RFC 4180
// grammar using Shape's tokenizer framework.
package tokenizer

// Token kinds. Each corresponds to a terminal of the grammar, except
// TokenOther which covers any rune the grammar has no terminal for.
//
// The tokenizer is context free: a comma inside an escaped field is still
// a TokenComma. Field boundaries are decided by the parser alone.
const (
	TokenComma  = "Comma"  // ,
	TokenDQuote = "DQuote" // "
	TokenCRLF   = "CRLF"   // \r\n
	TokenCR     = "CR"     // \r not followed by \n
	TokenLF     = "LF"     // \n
	TokenETX    = "ETX"    // \x03 end-of-text sentinel

	TokenTextData = "TextData" // run of TEXTDATA
	TokenOther    = "Other"    // single rune outside every terminal
)
