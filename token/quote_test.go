package token

import "testing"

func TestUnquote(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{`plain`, "plain"},
		{`say \"hi\"`, `say "hi"`},
		{`a\\b`, `a\b`},
		{`a\nb\tc`, "a\nb\tc"},
		{`\U00e9t\U00E9`, "été"},
		{`\q`, `\q`},
		{`\Uzz`, `\Uzz`},
	}
	for _, tt := range tests {
		if got := Unquote(tt.raw); got != tt.want {
			t.Errorf("Unquote(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, s := range []string{"", `a "b" c`, `\`, "x\ny\r\tz", "bell\a", `\q`, "été"} {
		q := Quote(s)
		toks, err := Tokenize([]byte(q))
		if err != nil {
			t.Fatalf("%s: %v", q, err)
		}
		if len(toks) != 1 || !toks[0].Quoted || toks[0].Text != s {
			t.Errorf("%q: quoted as %s, read back %v", s, q, toks)
		}
	}
}
