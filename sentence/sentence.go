package sentence

import "time"

// Doc is a checked document: its sentences, the diagnostics attached to their
// tokens and the corpus metrics.
type Doc struct {
	// Id is a ULID assigned when the report is created.
	Id string `json:"id"`

	Title string `json:"title"`

	Created time.Time `json:"created"`

	Sentences []Sentence `json:"sentences"`

	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence is a tagged sentence. A sentence without tokens marks a paragraph
// break.
type Sentence struct {
	// Id is the index of the sentence inside of the doc.
	Id     int     `json:"id"`
	Tokens []Token `json:"tokens"`
}

// IsBreak reports whether the sentence is a paragraph break.
func (s Sentence) IsBreak() bool {
	return len(s.Tokens) == 0
}

// Words returns the text of the tokens.
func (s Sentence) Words() []string {
	words := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		words[i] = t.Text
	}
	return words
}

// Token represents a word of the sentence, with its POS tag and the
// diagnostics found by the checks.
type Token struct {
	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// The unmodified word
	Text string `json:"text"`

	// Penn Treebank part of speech
	Tag string `json:"tag"`

	Errs []string `json:"errs,omitempty"`
}

// AddErr attaches msg to the token unless it is already attached.
func (t *Token) AddErr(msg string) {
	if t.HasErr(msg) {
		return
	}
	t.Errs = append(t.Errs, msg)
}

// HasErr reports whether msg is attached to the token.
func (t *Token) HasErr(msg string) bool {
	for _, e := range t.Errs {
		if e == msg {
			return true
		}
	}
	return false
}

// NumErrs returns the number of diagnostics in the doc.
func (d Doc) NumErrs() int {
	n := 0
	for _, s := range d.Sentences {
		for _, t := range s.Tokens {
			n += len(t.Errs)
		}
	}
	return n
}
