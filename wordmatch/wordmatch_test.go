package wordmatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/revelaction/strunk/mdfa"
)

func runCheck(word string) []string {
	return New(Default(), nil).Run(word)
}

func hasErr(errs []string, err string) bool {
	for _, e := range errs {
		if e == err {
			return true
		}
	}
	return false
}

func TestExclamation(t *testing.T) {
	if !hasErr(runCheck("!"), ExclamationErr) {
		t.Errorf("expected the exclamation diagnostic")
	}
	if hasErr(runCheck("x"), ExclamationErr) {
		t.Errorf("unexpected exclamation diagnostic")
	}
}

func TestParentheses(t *testing.T) {
	for _, w := range []string{"(", ")"} {
		if !hasErr(runCheck(w), ParensErr) {
			t.Errorf("%q: expected the parentheses diagnostic", w)
		}
	}
	if hasErr(runCheck("x"), ParensErr) {
		t.Errorf("unexpected parentheses diagnostic")
	}
}

func TestFirstPerson(t *testing.T) {
	words := []string{"I", "i", "me", "Me", "my", "My", "mine", "Mine", "we", "We", "us", "Us", "our", "Our", "ours", "Ours"}
	for _, w := range words {
		if !hasErr(runCheck(w), FirstPersonErr) {
			t.Errorf("%q: expected the first person diagnostic", w)
		}
	}

	for _, w := range []string{"x", "m", "mind", "ourselves", "use"} {
		if hasErr(runCheck(w), FirstPersonErr) {
			t.Errorf("%q: unexpected first person diagnostic", w)
		}
	}
}

func TestNewReportsInvalidEntries(t *testing.T) {
	var reported []error
	c := New([]Entry{{"", []string{"x"}}, {"very", []string{"Omit very."}}}, func(err error) {
		reported = append(reported, err)
	})

	if len(reported) != 1 || !errors.Is(reported[0], mdfa.ErrInvalidWord) {
		t.Fatalf("expected one ErrInvalidWord, got %v", reported)
	}

	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}

	if got := c.Run("Very"); len(got) != 1 || got[0] != "Omit very." {
		t.Errorf("expected [Omit very.], got %v", got)
	}
}

func TestLoadMerge(t *testing.T) {
	src := `
entries:
  - word: irregardless
    diagnostics: ["Use regardless."]
  - word: we
    diagnostics: ["Second diagnostic."]
`
	f, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := New(f.Merge(), nil)
	if got := c.Run("irregardless"); len(got) != 1 {
		t.Errorf("expected the loaded entry, got %v", got)
	}

	got := c.Run("We")
	if len(got) != 2 || got[0] != FirstPersonErr || got[1] != "Second diagnostic." {
		t.Errorf("expected accumulated diagnostics, got %v", got)
	}
}

func TestLoadReplace(t *testing.T) {
	f, err := Load(strings.NewReader("replace: true\nentries:\n  - word: very\n    diagnostics: [x]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := New(f.Merge(), nil)
	if got := c.Run("I"); len(got) != 0 {
		t.Errorf("expected the defaults to be replaced, got %v", got)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}
