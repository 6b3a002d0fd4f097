package tagger

import (
	"reflect"
	"testing"
)

func tags(t *Tagger, text string) []string {
	var out []string
	for _, tok := range t.Tag(Lex(text)) {
		out = append(out, tok.Tag)
	}
	return out
}

func TestSplit(t *testing.T) {
	got := Split("This is a sentence.\nThis is a new paragraph.")
	want := []string{"This is a sentence.", "", "This is a new paragraph."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSplitKeepsTerminators(t *testing.T) {
	got := Split("Stop! Why? Because... Fine")
	want := []string{"Stop!", "Why?", "Because...", "Fine"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSplitLeadingNewline(t *testing.T) {
	got := Split("\n\nFirst. Second.\n\nThird.")
	want := []string{"First.", "Second.", "", "Third."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split("   \n "); len(got) != 0 {
		t.Fatalf("expected no sentences, got %q", got)
	}
}

func TestLex(t *testing.T) {
	cases := map[string][]string{
		"The dog's bone.":         {"The", "dog", "'", "s", "bone", "."},
		"On 1/2/2000 it rained.":  {"On", "1", "/", "2", "/", "2000", "it", "rained", "."},
		"A well-known fact (sic)": {"A", "well-known", "fact", "(", "sic", ")"},
		"Wait - what?!":           {"Wait", "-", "what", "?!"},
	}

	for in, want := range cases {
		if got := Lex(in); !reflect.DeepEqual(got, want) {
			t.Errorf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestTag(t *testing.T) {
	tg := New(nil)

	cases := map[string][]string{
		"This is a test.":               {"DT", "VBZ", "DT", "NN", "."},
		"I like fluffy cats, fat dogs":  {"PRP", "VBP", "JJ", "NNS", ",", "JJ", "NNS"},
		"She will arrive quickly!":      {"PRP", "MD", "VB", "RB", "."},
		"We saw Alice in 2019":          {"PRP", "VBD", "NNP", "IN", "CD"},
		"They grok it":                  {"PRP", "VBP", "PRP"},
		"(a)":                           {"(", "DT", ")"},
		"Well...":                       {"UH", "."},
		"The dog ran, and the cat sat.": {"DT", "NN", "VBD", ",", "CC", "DT", "NN", "VBD", "."},
	}

	for in, want := range cases {
		if got := tags(tg, in); !reflect.DeepEqual(got, want) {
			t.Errorf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestTagIndexes(t *testing.T) {
	toks := New(nil).Tag([]string{"a", "b", "c"})
	for i, tok := range toks {
		if tok.Index != i {
			t.Errorf("token %d has index %d", i, tok.Index)
		}
	}
}

func TestTagExtraLexicon(t *testing.T) {
	tg := New(map[string]string{"Blorf": "VBZ"})
	if got := tags(tg, "it blorf"); got[1] != "VBZ" {
		t.Fatalf("expected the extra entry to apply, got %v", got)
	}
}

func TestSentence(t *testing.T) {
	s := New(nil).Sentence(3, "This is a new paragraph.")
	if s.Id != 3 || len(s.Tokens) != 6 {
		t.Fatalf("expected sentence 3 with 6 tokens, got %d with %d", s.Id, len(s.Tokens))
	}
}
