// Package fastparser recognizes the CSV grammar with a DFA.
//
// The grammar in internal/parser is regular, so whether input matches can
// be decided by a table-driven automaton in a single pass without
// building any values. Match accepts exactly the inputs parser.Parse
// accepts and consumes exactly as much of them.
//
// The DFA reports only success and the consumed length. Callers needing
// the failing rule and remaining input rerun the grammar.
package fastparser

// charClass represents character classes for the DFA
type charClass uint8

const (
	classQuote    charClass = iota // "
	classComma                     // ,
	classCR                        // \r
	classLF                        // \n
	classETX                       // \x03
	classTextData                  // TEXTDATA
	classOther                     // everything else, including all non-ASCII bytes
	numCharClasses
)

// dfaState represents states in the DFA
type dfaState uint8

const (
	stateFieldStart dfaState = iota // start of a field
	stateUnquoted                   // inside a non-escaped field
	stateQuoted                     // inside an escaped field
	stateAfterQuote                 // quote seen inside an escaped field
	stateAfterCR                    // CR seen outside an escaped field
	stateAccept                     // sentinel consumed
	stateError
	numStates
)

// charClassTable is a 256-entry lookup table for byte classification.
var charClassTable [256]charClass

// dfaTransitions is the state transition table:
// [currentState][charClass] -> nextState
var dfaTransitions [numStates][numCharClasses]dfaState

func init() {
	initCharClassTable()
	initDFATransitions()
}

func initCharClassTable() {
	for i := 0; i < 256; i++ {
		charClassTable[i] = classOther
	}
	for _, r := range [][2]int{{0x20, 0x21}, {0x23, 0x2B}, {0x2D, 0x7E}} {
		for c := r[0]; c <= r[1]; c++ {
			charClassTable[c] = classTextData
		}
	}

	charClassTable['"'] = classQuote
	charClassTable[','] = classComma
	charClassTable['\r'] = classCR
	charClassTable['\n'] = classLF
	charClassTable[0x03] = classETX
}

func initDFATransitions() {
	for s := dfaState(0); s < numStates; s++ {
		for c := charClass(0); c < numCharClasses; c++ {
			dfaTransitions[s][c] = stateError
		}
	}

	// A field is over: a comma starts the next field, CR must begin a
	// CRLF record separator, ETX ends the file.
	endOfField := func(s dfaState) {
		dfaTransitions[s][classComma] = stateFieldStart
		dfaTransitions[s][classCR] = stateAfterCR
		dfaTransitions[s][classETX] = stateAccept
	}

	endOfField(stateFieldStart)
	dfaTransitions[stateFieldStart][classQuote] = stateQuoted
	dfaTransitions[stateFieldStart][classTextData] = stateUnquoted

	endOfField(stateUnquoted)
	dfaTransitions[stateUnquoted][classTextData] = stateUnquoted

	dfaTransitions[stateQuoted][classTextData] = stateQuoted
	dfaTransitions[stateQuoted][classComma] = stateQuoted
	dfaTransitions[stateQuoted][classCR] = stateQuoted
	dfaTransitions[stateQuoted][classLF] = stateQuoted
	dfaTransitions[stateQuoted][classQuote] = stateAfterQuote

	// A second quote is an escaped quote; anything else closed the field.
	endOfField(stateAfterQuote)
	dfaTransitions[stateAfterQuote][classQuote] = stateQuoted

	dfaTransitions[stateAfterCR][classLF] = stateFieldStart
}

// Match runs the DFA over data. It returns the number of bytes up to and
// including the sentinel and true when data starts with a complete file.
func Match(data string) (int, bool) {
	state := stateFieldStart
	for pos := 0; pos < len(data); pos++ {
		state = dfaTransitions[state][charClassTable[data[pos]]]
		switch state {
		case stateAccept:
			return pos + 1, true
		case stateError:
			return 0, false
		}
	}
	return 0, false
}
