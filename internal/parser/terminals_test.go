package parser

import (
	"errors"
	"testing"
)

func TestTerminals(t *testing.T) {
	tests := []struct {
		name      string
		rule      Rule[string]
		input     string
		wantRest  string
		wantValue string
		wantRule  string
	}{
		{"comma", Comma, ",x", "x", ",", ""},
		{"dquote", DQuote, `"x`, "x", `"`, ""},
		{"lf", LF, "\nx", "x", "\n", ""},
		{"cr", CR, "\rx", "x", "\r", ""},
		{"sp", SP, " x", "x", " ", ""},
		{"htab", HTab, "\tx", "x", "\t", ""},
		{"etx", ETX, "\x03", "", "\x03", ""},
		{"ws space", WS, " x", "x", " ", ""},
		{"ws tab", WS, "\tx", "x", "\t", ""},
		{"crlf", CRLF, "\r\nx", "x", "\r\n", ""},
		{"dquote2", DQuote2, `""x`, "x", `""`, ""},

		{"comma mismatch", Comma, "x,", "x,", "", "comma"},
		{"etx at end of input", ETX, "", "", "", "etx"},
		{"ws mismatch", WS, "x", "x", "", "ws"},
		{"crlf needs both", CRLF, "\rx", "\rx", "", "crlf"},
		{"crlf reversed", CRLF, "\n\r", "\n\r", "", "crlf"},
		{"dquote2 single quote", DQuote2, `"a`, `"a`, "", "dquote2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, value, err := tt.rule(tt.input)
			if rest != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
			if value != tt.wantValue {
				t.Errorf("value = %q, want %q", value, tt.wantValue)
			}

			if tt.wantRule == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var me *MatchError
			if !errors.As(err, &me) {
				t.Fatalf("expected *MatchError, got %v", err)
			}
			if me.Rule != tt.wantRule {
				t.Errorf("Rule = %q, want %q", me.Rule, tt.wantRule)
			}
			if me.Remaining != tt.input {
				t.Errorf("Remaining = %q, want %q", me.Remaining, tt.input)
			}
		})
	}
}
