package parser

// IsTextData reports whether r is TEXTDATA as defined in RFC 4180 section 2:
// printable ASCII other than comma and double quote.
func IsTextData(r rune) bool {
	return (r >= 0x20 && r <= 0x21) ||
		(r >= 0x23 && r <= 0x2B) ||
		(r >= 0x2D && r <= 0x7E)
}

// InRange returns a rule consuming the longest prefix of runes between start
// and end inclusive. The prefix may be empty, so the rule always matches.
func InRange(start, end rune) Rule[string] {
	return takeWhile("in-range", 0, func(r rune) bool {
		return start <= r && r <= end
	})
}

// TextData matches one or more TEXTDATA runes.
//
// Grammar:
//
//	TEXTDATA = %x20-21 / %x23-2B / %x2D-7E ;
var TextData = takeWhile("textdata", 1, IsTextData)
