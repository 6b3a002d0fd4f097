package check

import (
	"strings"

	sent "github.com/revelaction/strunk/sentence"
	"github.com/revelaction/strunk/wordmatch"
)

const DashErr = "Do not use a hyphen between words that can be better written as one word."

var firstPersonPronouns = map[string]bool{
	"I": true, "me": true, "Me": true, "my": true, "My": true,
	"mine": true, "Mine": true, "we": true, "We": true, "us": true,
	"Us": true, "our": true, "Our": true, "ours": true, "Ours": true,
}

func (v *Validator) exclamations(tok *sent.Token) {
	if tok.Text == "!" {
		tok.AddErr(wordmatch.ExclamationErr)
	}
}

// inWordDashes flags a hyphenated word when the word without its first hyphen
// is in the dictionary.
func (v *Validator) inWordDashes(tok *sent.Token) {
	if !strings.Contains(tok.Text, "-") {
		return
	}

	if v.Dictionary.Contains(strings.Replace(tok.Text, "-", "", 1)) {
		tok.AddErr(DashErr)
	}
}

func (v *Validator) parentheses(tok *sent.Token) {
	if tok.Tag == "(" || tok.Tag == ")" {
		tok.AddErr(wordmatch.ParensErr)
	}
}

func (v *Validator) firstPerson(tok *sent.Token) {
	if firstPersonPronouns[tok.Text] {
		tok.AddErr(wordmatch.FirstPersonErr)
	}
}
