package parser

// Terminals of the grammar. Each matches its literal completely or fails
// without consuming input.
var (
	Comma  = Literal("comma", ",")
	DQuote = Literal("dquote", `"`)
	LF     = Literal("lf", "\n")
	CR     = Literal("cr", "\r")
	SP     = Literal("sp", " ")
	HTab   = Literal("htab", "\t")

	// ETX is the end-of-text sentinel that must close every file.
	ETX = Literal("etx", "\x03")
)

var (
	// WS matches a single space or horizontal tab.
	WS = Alt("ws", SP, HTab)

	// CRLF matches a carriage return immediately followed by a line feed.
	CRLF = Concat("crlf", CR, LF)

	// DQuote2 matches the doubled quote used to escape a quote inside an
	// escaped field.
	DQuote2 = Concat("dquote2", DQuote, DQuote)
)
