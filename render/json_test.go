package render

import (
	"bytes"
	"encoding/json"
	"testing"

	sent "github.com/revelaction/strunk/sentence"
)

func testDoc() sent.Doc {
	return sent.Doc{
		Id:    "01JB3V8V6E0000000000000000",
		Title: "essay.txt",
		Sentences: []sent.Sentence{
			{Id: 0, Tokens: []sent.Token{
				{Index: 0, Text: "I", Tag: "PRP", Errs: []string{"Do not use the first person in formal writing."}},
				{Index: 1, Text: "ran", Tag: "VBD"},
				{Index: 2, Text: "!", Tag: "."},
			}},
			{Id: 1},
			{Id: 2, Tokens: []sent.Token{
				{Index: 0, Text: "It", Tag: "PRP"},
				{Index: 1, Text: "rained", Tag: "VBD"},
				{Index: 2, Text: ".", Tag: "."},
			}},
		},
		Metrics: map[string]float64{"exclamations": 0.5},
	}
}

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(sent.Doc{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if _, ok := result["trees"]; ok {
		t.Fatalf("expected no trees")
	}
}

func TestJSONRendererRenderDoc(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(testDoc(), []string{"( TOP [S] [.] )", "", ""}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		sent.Doc
		Trees []string `json:"trees"`
	}
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if result.Title != "essay.txt" || result.Id != "01JB3V8V6E0000000000000000" {
		t.Errorf("unexpected doc header %q %q", result.Id, result.Title)
	}

	if len(result.Sentences) != 3 || !result.Sentences[1].IsBreak() {
		t.Fatalf("expected 3 sentences with a break, got %+v", result.Sentences)
	}

	if errs := result.Sentences[0].Tokens[0].Errs; len(errs) != 1 {
		t.Errorf("expected 1 diagnostic, got %v", errs)
	}

	if result.Metrics["exclamations"] != 0.5 {
		t.Errorf("unexpected metrics %v", result.Metrics)
	}

	if len(result.Trees) != 3 || result.Trees[0] != "( TOP [S] [.] )" {
		t.Errorf("unexpected trees %v", result.Trees)
	}
}
