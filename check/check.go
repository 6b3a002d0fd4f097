// Package check runs the style checks over a corpus and attaches the
// diagnostics to the offending tokens.
//
// There are three families of checks:
//
//   - context dependent checks look at a whole sentence, its parse chart or
//     a run of sentences (singularPossessive, oxfordComma, looseSentences...)
//   - context free checks look at one token at a time (exclamations,
//     inWordDashes...)
//   - word match checks look the token up in a catalogue (wordmatch package)
//
// Every check has a name and can be disabled by it.
package check

import (
	"github.com/revelaction/strunk/corpus"
	"github.com/revelaction/strunk/dictionary"
	sent "github.com/revelaction/strunk/sentence"
	"github.com/revelaction/strunk/stat"
	"github.com/revelaction/strunk/wordmatch"
)

// WordMatch is the name of the word match check family.
const WordMatch = "wordMatch"

type sentenceCheck struct {
	name string
	run  func(v *Validator)
}

type tokenCheck struct {
	name string
	run  func(v *Validator, tok *sent.Token)
}

var contextDepChecks = []sentenceCheck{
	{"singularPossessive", (*Validator).singularPossessive},
	{"asXOrYThan", (*Validator).asXOrYThan},
	{"asToWhether", (*Validator).asToWhether},
	{"asYet", (*Validator).asYet},
	{"oxfordComma", (*Validator).oxfordComma},
	{"dateFormat", (*Validator).dateFormat},
	{"omitNeedlessWords", (*Validator).omitNeedlessWords},
	{"looseSentences", (*Validator).looseSentences},
}

var contextFreeChecks = []tokenCheck{
	{"exclamations", (*Validator).exclamations},
	{"inWordDashes", (*Validator).inWordDashes},
	{"parentheses", (*Validator).parentheses},
	{"firstPerson", (*Validator).firstPerson},
}

// Names returns the names of all the checks in the order they run.
func Names() []string {
	var names []string
	for _, c := range contextDepChecks {
		names = append(names, c.name)
	}
	for _, c := range contextFreeChecks {
		names = append(names, c.name)
	}
	return append(names, WordMatch)
}

// IsName reports whether name is the name of a check.
func IsName(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Validator runs the checks over a corpus.
type Validator struct {
	Corpus *corpus.Corpus

	// Dictionary is used by inWordDashes. A nil dictionary is empty.
	Dictionary *dictionary.Dictionary

	// Words is the word match catalogue. Nil means the built-in one.
	Words *wordmatch.Checks

	// Disabled holds the names of the checks that must not run.
	Disabled map[string]bool
}

// New returns a Validator with the built-in word match catalogue.
func New(c *corpus.Corpus, dict *dictionary.Dictionary) *Validator {
	return &Validator{
		Corpus:     c,
		Dictionary: dict,
		Words:      wordmatch.New(wordmatch.Default(), nil),
	}
}

func (v *Validator) enabled(name string) bool {
	return !v.Disabled[name]
}

// RunAll runs every enabled check and returns the corpus metrics.
func (v *Validator) RunAll() map[string]float64 {
	v.RunContextDepChecks()
	v.RunContextFreeChecks()
	v.RunWordMatchChecks()
	return stat.Compute(v.Corpus.Sentences())
}

// RunContextDepChecks runs the checks that look at whole sentences.
func (v *Validator) RunContextDepChecks() {
	for _, c := range contextDepChecks {
		if v.enabled(c.name) {
			c.run(v)
		}
	}
}

// RunContextFreeChecks runs the checks that look at one token at a time.
func (v *Validator) RunContextFreeChecks() {
	for _, c := range contextFreeChecks {
		if !v.enabled(c.name) {
			continue
		}
		v.eachToken(func(tok *sent.Token) {
			c.run(v, tok)
		})
	}
}

// RunWordMatchChecks attaches the diagnostics of the word match catalogue.
func (v *Validator) RunWordMatchChecks() {
	if !v.enabled(WordMatch) {
		return
	}

	words := v.Words
	if words == nil {
		words = wordmatch.New(wordmatch.Default(), nil)
	}

	v.eachToken(func(tok *sent.Token) {
		for _, msg := range words.Run(tok.Text) {
			tok.AddErr(msg)
		}
	})
}

// Run runs the check called name only. It reports false for an unknown
// name.
func (v *Validator) Run(name string) bool {
	for _, c := range contextDepChecks {
		if c.name == name {
			c.run(v)
			return true
		}
	}

	for _, c := range contextFreeChecks {
		if c.name == name {
			v.eachToken(func(tok *sent.Token) {
				c.run(v, tok)
			})
			return true
		}
	}

	if name == WordMatch {
		d := v.Disabled
		v.Disabled = nil
		v.RunWordMatchChecks()
		v.Disabled = d
		return true
	}

	return false
}

func (v *Validator) eachToken(fn func(tok *sent.Token)) {
	for i := 0; i < v.Corpus.Len(); i++ {
		toks := v.Corpus.Sentence(i).Tokens
		for j := range toks {
			fn(&toks[j])
		}
	}
}

// eachSentence calls fn with the tokens of every sentence.
func (v *Validator) eachSentence(fn func(i int, toks []sent.Token)) {
	for i := 0; i < v.Corpus.Len(); i++ {
		fn(i, v.Corpus.Sentence(i).Tokens)
	}
}
