// Package tagger splits text into sentences and words and assigns Penn
// Treebank part of speech tags to the words.
//
// The tagger is a lexicon lookup followed by suffix heuristics for unknown
// words and a pass of contextual corrections. It is not meant to be accurate,
// only good enough for the style checks.
package tagger

import (
	"strings"
	"unicode"

	sent "github.com/revelaction/strunk/sentence"
)

// Tagger assigns tags to words. It is safe for concurrent use once built.
type Tagger struct {
	lexicon map[string]string
}

// New returns a Tagger with the built-in lexicon extended by extra, a map of
// lower case word to tag. Entries of extra take precedence.
func New(extra map[string]string) *Tagger {
	lex := make(map[string]string, len(defaultLexicon)+len(extra))
	for w, tag := range defaultLexicon {
		lex[w] = tag
	}
	for w, tag := range extra {
		lex[strings.ToLower(w)] = tag
	}
	return &Tagger{lexicon: lex}
}

// Sentence lexes and tags a sentence.
func (t *Tagger) Sentence(id int, text string) sent.Sentence {
	return sent.Sentence{Id: id, Tokens: t.Tag(Lex(text))}
}

// Tag returns one token per word.
func (t *Tagger) Tag(words []string) []sent.Token {
	tokens := make([]sent.Token, len(words))
	guessed := make([]bool, len(words))

	for i, w := range words {
		tag, known := t.lookup(w, i == 0)
		tokens[i] = sent.Token{Index: i, Text: w, Tag: tag}
		guessed[i] = !known
	}

	for i := 1; i < len(tokens); i++ {
		prev := tokens[i-1].Tag
		tok := &tokens[i]

		switch {
		// a determiner or adjective is followed by a noun, not a verb
		case (prev == "DT" || prev == "JJ" || prev == "PRP$") && (tok.Tag == "VB" || tok.Tag == "VBP"):
			tok.Tag = "NN"

		// base form after a modal or to
		case (prev == "MD" || prev == "TO") && (tok.Tag == "NN" || tok.Tag == "NNS" || tok.Tag == "VBP"):
			tok.Tag = "VB"

		// a subject followed by a plural looking word: third person verb
		case (prev == "NNP" || prev == "PRP" || prev == "NN") && guessed[i] && tok.Tag == "NNS":
			tok.Tag = "VBZ"

		// a pronoun followed by a noun looking word: present verb
		case prev == "PRP" && ((guessed[i] && tok.Tag == "NN") || strings.EqualFold(tok.Text, "like")):
			tok.Tag = "VBP"
		}
	}

	return tokens
}

// lookup returns the tag of w and whether it came from the lexicon.
func (t *Tagger) lookup(w string, first bool) (string, bool) {
	if tag, ok := punctuation[w]; ok {
		return tag, true
	}

	// terminator runs
	if w != "" && strings.Trim(w, ".!?") == "" {
		return ".", true
	}

	if tag, ok := t.lexicon[w]; ok {
		return tag, true
	}

	lower := strings.ToLower(w)
	if tag, ok := t.lexicon[lower]; ok {
		// "I" is always a pronoun, other capitalized words are proper
		// nouns unless they start the sentence
		if first || lower == "i" || !isCapitalized(w) {
			return tag, true
		}
	}

	return guess(w, first), false
}

// guess tags an unknown word from its shape.
func guess(w string, first bool) string {
	r := []rune(w)
	if len(r) == 0 {
		return "NN"
	}

	if isNumber(w) {
		return "CD"
	}

	if !unicode.IsLetter(r[0]) && !unicode.IsDigit(r[0]) {
		return "SYM"
	}

	if isCapitalized(w) && !first {
		if strings.HasSuffix(w, "s") && len(r) > 3 && !isUpper(w) {
			return "NNPS"
		}
		return "NNP"
	}

	lower := strings.ToLower(w)
	switch {
	case strings.HasSuffix(lower, "ly") && len(r) > 3:
		return "RB"
	case strings.HasSuffix(lower, "ing") && len(r) > 4:
		return "VBG"
	case strings.HasSuffix(lower, "ed") && len(r) > 3:
		return "VBD"
	case strings.HasSuffix(lower, "est") && len(r) > 4:
		return "JJS"
	case hasAnySuffix(lower, "ous", "ful", "ive", "able", "ible", "ic", "al", "less", "ish", "ary") && len(r) > 4:
		return "JJ"
	case strings.HasSuffix(lower, "s") && !hasAnySuffix(lower, "ss", "us", "is") && len(r) > 2:
		return "NNS"
	}

	return "NN"
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func isCapitalized(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r)
	}
	return false
}

func isUpper(w string) bool {
	return strings.ToUpper(w) == w
}

func isNumber(w string) bool {
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return w != ""
}
