package search

import "testing"

func TestTokenize(t *testing.T) {
	toks := tokenize("Free 24/7 Counselling-Hotline for children", nil)
	for _, want := range []string{"free", "counselling", "hotline", "for", "children"} {
		if _, ok := toks[want]; !ok {
			t.Errorf("missing token %q in %v", want, toks)
		}
	}

	stop := map[string]struct{}{"for": {}}
	toks = tokenize("for for for", stop)
	if toks != nil && len(toks) != 0 {
		t.Fatalf("all-stopword input should yield no tokens, got %v", toks)
	}

	if toks := tokenize("!!! --- ...", nil); toks != nil {
		t.Fatalf("punctuation-only input should yield nil, got %v", toks)
	}
}

func TestOverlap(t *testing.T) {
	a := map[string]struct{}{"a": {}, "b": {}, "c": {}}
	b := map[string]struct{}{"b": {}, "c": {}, "d": {}, "e": {}}
	if got := overlap(a, b); got != 2 {
		t.Fatalf("overlap = %d, want 2", got)
	}
	// order-independent
	if got := overlap(b, a); got != 2 {
		t.Fatalf("overlap reversed = %d, want 2", got)
	}
	if got := overlap(nil, b); got != 0 {
		t.Fatalf("overlap with nil = %d, want 0", got)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	cases := map[string]string{
		"a  b":        "a b",
		"a\t\tb":      "a b",
		"a\nb":        "a b",
		"a \r\n b":    "a b",
		"no_change":   "no_change",
		"  leading":   " leading",
		"trailing  ":  "trailing ",
		"mixed \t\nx": "mixed x",
	}
	for in, want := range cases {
		if got := normalizeWhitespace(in); got != want {
			t.Errorf("normalizeWhitespace(%q) = %q, want %q", in, got, want)
		}
	}
}
