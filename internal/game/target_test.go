package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParseQuery(t *testing.T) {
	tests := map[string]struct {
		input      string
		expKeyword string
		expOrdinal int
	}{
		"bare keyword":       {input: "goblin", expKeyword: "goblin", expOrdinal: 1},
		"trailing ordinal":   {input: "goblin 2", expKeyword: "goblin", expOrdinal: 2},
		"leading ordinal":    {input: "2.goblin", expKeyword: "goblin", expOrdinal: 2},
		"multi word keyword": {input: "town guard 3", expKeyword: "town guard", expOrdinal: 3},
		"zero ordinal kept as keyword": {
			input: "goblin 0", expKeyword: "goblin 0", expOrdinal: 1,
		},
		"dot without number": {input: "mr.goblin", expKeyword: "mr.goblin", expOrdinal: 1},
		"surrounding space":  {input: "  goblin 2 ", expKeyword: "goblin", expOrdinal: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			kw, n := ParseQuery(tt.input)
			testutil.AssertEqual(t, "keyword", kw, tt.expKeyword)
			testutil.AssertEqual(t, "ordinal", n, tt.expOrdinal)
		})
	}
}
