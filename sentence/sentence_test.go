package sentence

import "testing"

func TestAddErr(t *testing.T) {
	tok := Token{Text: "I", Tag: "PRP"}
	tok.AddErr("first person")
	tok.AddErr("first person")
	tok.AddErr("other")

	if len(tok.Errs) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", tok.Errs)
	}
	if !tok.HasErr("other") || tok.HasErr("none") {
		t.Errorf("unexpected HasErr result for %v", tok.Errs)
	}
}

func TestDoc(t *testing.T) {
	doc := Doc{Sentences: []Sentence{
		{Id: 0, Tokens: []Token{{Text: "I", Errs: []string{"a", "b"}}, {Text: "ran"}}},
		{Id: 1},
		{Id: 2, Tokens: []Token{{Text: "Go", Errs: []string{"c"}}}},
	}}

	if n := doc.NumErrs(); n != 3 {
		t.Errorf("expected 3 diagnostics, got %d", n)
	}
	if !doc.Sentences[1].IsBreak() || doc.Sentences[0].IsBreak() {
		t.Errorf("unexpected paragraph breaks")
	}
	if w := doc.Sentences[0].Words(); len(w) != 2 || w[1] != "ran" {
		t.Errorf("unexpected words %v", w)
	}
}
