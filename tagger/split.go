package tagger

import (
	"regexp"
	"strings"
)

var (
	terminatorRe = regexp.MustCompile(`[.!?]+`)

	// words with inner hyphens, terminator runs, every other visible rune
	// alone
	tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:-[\p{L}\p{N}]+)*|[.!?]+|\S`)
)

// Split splits text into sentences. Every sentence keeps its terminator
// (a run of '.', '!' or '?'). A sentence preceded by a line break, other than
// the first one, is preceded by an empty string marking a paragraph break. A
// trailing fragment without terminator is returned as the last sentence.
func Split(text string) []string {
	var sentences []string
	started := false

	add := func(raw string) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return
		}

		if startsParagraph(raw) {
			if started {
				sentences = append(sentences, "")
			}
		} else {
			started = true
		}

		sentences = append(sentences, trimmed)
	}

	last := 0
	for _, loc := range terminatorRe.FindAllStringIndex(text, -1) {
		add(text[last:loc[1]])
		last = loc[1]
	}

	add(text[last:])

	return sentences
}

// startsParagraph reports whether the leading whitespace of raw holds a line
// break.
func startsParagraph(raw string) bool {
	for _, r := range raw {
		switch r {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		}
		return false
	}
	return false
}

// Lex splits a sentence into words. Hyphenated words and runs of terminators
// stay whole, apostrophes and every other punctuation rune become tokens of
// their own:
//
//	dog's      -> dog ' s
//	1/2/2000   -> 1 / 2 / 2000
//	well-known -> well-known
//	what?!     -> what ?!
func Lex(sentence string) []string {
	return tokenRe.FindAllString(sentence, -1)
}
