package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/strunk/check"
)

const testConfig = `
grammar:
  translations:
    - label: NP
      tags: [NN, NNS]
    - label: VP
      tags: [VB, VBZ]
  rules:
    - {left: NP, right: VP, result: TOP}
wordmatch:
  replace: true
  entries:
    - word: irregardless
      diagnostics: ["Use regardless."]
lexicon:
  grok: VB
disabled: [oxfordComma]
`

func TestLoad(t *testing.T) {
	f, err := Load(strings.NewReader(testConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Grammar == nil || len(f.Grammar.Rules) != 1 {
		t.Fatalf("expected one grammar rule, got %+v", f.Grammar)
	}
	if f.Wordmatch == nil || !f.Wordmatch.Replace || len(f.Wordmatch.Entries) != 1 {
		t.Errorf("unexpected wordmatch %+v", f.Wordmatch)
	}
	if f.Lexicon["grok"] != "VB" {
		t.Errorf("unexpected lexicon %v", f.Lexicon)
	}
	if len(f.Disabled) != 1 || f.Disabled[0] != "oxfordComma" {
		t.Errorf("unexpected disabled %v", f.Disabled)
	}
}

func TestLoadEmpty(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Grammar != nil || f.Wordmatch != nil || len(f.Disabled) != 0 {
		t.Errorf("expected the zero config, got %+v", f)
	}
}

func TestLoadUnknownCheck(t *testing.T) {
	if _, err := Load(strings.NewReader("disabled: [nope]")); err == nil {
		t.Fatalf("expected an error for an unknown check")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing explicit config")
	}
}

func TestValue(t *testing.T) {
	t.Setenv(EnvDict, "env")

	if got := Value("flag", EnvDict, "file"); got != "flag" {
		t.Errorf("expected flag, got %s", got)
	}
	if got := Value("", EnvDict, "file"); got != "env" {
		t.Errorf("expected env, got %s", got)
	}

	t.Setenv(EnvDict, "")
	if got := Value("", EnvDict, "file"); got != "file" {
		t.Errorf("expected file, got %s", got)
	}
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	dict := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(dict, []byte("# words\nupperclass\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "strunk.yaml")
	if err := os.WriteFile(path, []byte(testConfig+"dictionary: "+dict+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvDict, "")

	l := &Loader{ConfigPath: path, Disabled: []string{"firstPerson"}}
	ck, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !ck.Disabled["oxfordComma"] || !ck.Disabled["firstPerson"] {
		t.Errorf("unexpected disabled checks %v", ck.Disabled)
	}
	if ck.Words.Len() != 1 || len(ck.Words.Run("Irregardless")) != 1 {
		t.Errorf("expected the replaced catalogue")
	}
	if !ck.Dictionary.Contains("upperclass") {
		t.Errorf("expected the dictionary to be loaded")
	}
	if _, ok := ck.Grammar.Rule("NP", "VP"); !ok {
		t.Errorf("expected the configured grammar")
	}

	_, doc, err := ck.Check(context.Background(), "", "I grok upper-class irregardless.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	toks := doc.Sentences[0].Tokens
	if toks[1].Tag != "VB" {
		t.Errorf("expected the configured lexicon, got %s", toks[1].Tag)
	}
	if !toks[2].HasErr(check.DashErr) {
		t.Errorf("expected a dash diagnostic on %s", toks[2].Text)
	}
	if len(toks[0].Errs) != 0 {
		t.Errorf("expected no first person diagnostic, got %v", toks[0].Errs)
	}
}

func TestLoaderDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvDict, "")

	ck, err := (&Loader{}).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ck.Words.Len() == 0 || len(ck.Disabled) != 0 || ck.Dictionary != nil {
		t.Errorf("expected built-in defaults, got %+v", ck)
	}
}
