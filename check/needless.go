package check

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	sent "github.com/revelaction/strunk/sentence"
)

// matchAny matches any single word in a phrase.
const matchAny = "*"

type replacement struct {
	bad, good []string
}

var needlessPhrases = []replacement{
	{[]string{"the", "question", "as", "to", "whether"}, []string{"whether"}},
	{[]string{"there", "is", "no", "doubt", "but", "that"}, []string{"doubtless"}},
	{[]string{"for", matchAny, "purposes"}, []string{"for", matchAny}},
	{[]string{"in", "a", matchAny, "manner"}, []string{"ADV(" + matchAny + ")"}},
	{[]string{"this", "is", "a", matchAny, "that"}, []string{"this", matchAny}},
	{[]string{"a", matchAny, "one"}, []string{matchAny}},
	{[]string{"the", "reason", "why", "is", "that"}, []string{"because"}},
	{[]string{"enters", "in"}, []string{"enters"}},
}

// NeedlessWordsErr returns the diagnostic for replacing bad with good.
func NeedlessWordsErr(bad, good []string) string {
	return fmt.Sprintf("Vigorous writing is concise. Omit needless words by replacing %q with %q.",
		strings.Join(bad, " "), strings.Join(good, " "))
}

// omitNeedlessWords flags every word of the first occurrence of a known
// wordy phrase.
func (v *Validator) omitNeedlessWords() {
	v.eachSentence(func(_ int, toks []sent.Token) {
		for _, r := range needlessPhrases {
			idx := indexOfPhrase(toks, r.bad)
			if idx == -1 {
				continue
			}

			msg := NeedlessWordsErr(r.bad, r.good)
			for i := idx; i < idx+len(r.bad); i++ {
				toks[i].AddErr(msg)
			}
		}
	})
}

// indexOfPhrase returns the index of the first occurrence of phrase in toks,
// or -1.
func indexOfPhrase(toks []sent.Token, phrase []string) int {
	for i := 0; i < len(toks)-len(phrase)+1; i++ {
		if phraseEqual(toks[i:i+len(phrase)], phrase) {
			return i
		}
	}
	return -1
}

// phraseEqual compares words one by one. matchAny on either side matches
// anything and the first word may differ in the case of its first letter.
func phraseEqual(toks []sent.Token, phrase []string) bool {
	for i, w := range phrase {
		t := toks[i].Text
		if t == matchAny || w == matchAny {
			continue
		}

		if i == 0 {
			if t != w && capitalize(t) != w && capitalize(w) != t {
				return false
			}
			continue
		}

		if t != w {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
