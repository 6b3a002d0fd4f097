package check

import (
	"slices"

	"github.com/revelaction/strunk/chart"
	sent "github.com/revelaction/strunk/sentence"
)

const (
	PossessiveErr  = "Form the possessive singular of nouns by adding 's."
	AsXOrYThanErr  = `Expressions of this type should be corrected by rearranging the sentences. e.g. "My opinion is as good or better than his." -> "My opinion is as good as his, if not better."`
	AsToWhetherErr = `Do not use "as to whether." "Whether" is sufficient.`
	AsYetErr       = `Do not use "as yet." "Yet" nearly always is as good, if not better.`
	OxfordCommaErr = "In a series of three or more terms with a single conjunction, use a comma after each term except the last."
	LooseErr       = "Avoid a succession of loose sentences."
)

// a run of at least this many loose sentences is flagged
const looseThreshold = 3

var (
	singularNounTags = []string{"NN", "NNP"}
	adjectiveTags    = []string{"JJ", "JJR", "JJS"}
	looseStructure   = [2]string{"S", "compound_piece"}
)

// singularPossessive flags a singular noun followed by an apostrophe without
// s. NN covers mass nouns too, so the check over reports.
func (v *Validator) singularPossessive() {
	v.eachSentence(func(_ int, toks []sent.Token) {
		for i := 0; i < len(toks)-2; i++ {
			if slices.Contains(singularNounTags, toks[i].Tag) &&
				toks[i+1].Text == "'" &&
				toks[i+2].Text != "s" {
				toks[i].AddErr(PossessiveErr)
			}
		}
	})
}

// asXOrYThan flags "as good or better than".
func (v *Validator) asXOrYThan() {
	v.eachSentence(func(_ int, toks []sent.Token) {
		for i := 0; i < len(toks)-4; i++ {
			if toks[i].Text == "as" &&
				slices.Contains(adjectiveTags, toks[i+1].Tag) &&
				toks[i+2].Text == "or" &&
				slices.Contains(adjectiveTags, toks[i+3].Tag) &&
				toks[i+4].Text == "than" {
				toks[i].AddErr(AsXOrYThanErr)
			}
		}
	})
}

func (v *Validator) asToWhether() {
	v.eachSentence(func(_ int, toks []sent.Token) {
		for i := 0; i < len(toks)-2; i++ {
			if isAs(toks[i].Text) && toks[i+1].Text == "to" && toks[i+2].Text == "whether" {
				toks[i].AddErr(AsToWhetherErr)
			}
		}
	})
}

func (v *Validator) asYet() {
	v.eachSentence(func(_ int, toks []sent.Token) {
		for i := 0; i < len(toks)-1; i++ {
			if isAs(toks[i].Text) && toks[i+1].Text == "yet" {
				toks[i].AddErr(AsYetErr)
			}
		}
	})
}

func isAs(w string) bool {
	return w == "as" || w == "As"
}

// oxfordComma flags the conjunction of a series "X, X CC X" lacking the
// comma before it. A label derivable over the term between the last comma and
// the conjunction must also be derivable over a span starting right after the
// conjunction and over a span ending right before the last comma. The comma
// is often needed to resolve an ambiguity, so the check over reports.
func (v *Validator) oxfordComma() {
	v.eachSentence(func(i int, toks []sent.Token) {
		comma1, comma2, cc, ok := seriesPattern(toks)
		if !ok {
			return
		}

		p := v.Corpus.Parsed(i)
		for _, label := range p.Labels(comma2+1, cc-1) {
			checkSeries(label, comma1, comma2, cc, p, toks)
		}
	})
}

// seriesPattern finds the shape "X, Y CC Z". It returns the index of the
// comma before the last one (-1 if there is none), the index of the last
// comma and the index of the conjunction. The word right after the first
// comma is never a comma or a conjunction.
func seriesPattern(toks []sent.Token) (comma1, comma2, cc int, ok bool) {
	if len(toks) < 6 {
		return 0, 0, 0, false
	}

	found := false
	comma1, comma2 = -1, -1
	for i := 1; i < len(toks)-1; i++ {
		if !found {
			found = toks[i].Tag == ","
			if found {
				comma2 = i
				i++
			}
			continue
		}

		switch toks[i].Tag {
		case ",":
			comma1, comma2 = comma2, i
		case "CC":
			return comma1, comma2, i, true
		}
	}

	return 0, 0, 0, false
}

func checkSeries(label string, comma1, comma2, cc int, p *chart.Parser, toks []sent.Token) {
	shared := false
	for i := cc + 1; i < len(toks); i++ {
		if shared = p.HasLabel(cc+1, i, label); shared {
			break
		}
	}

	if !shared {
		return
	}

	for i := comma2 - 1; i >= comma1+1; i-- {
		if p.HasLabel(i, comma2-1, label) {
			toks[cc].AddErr(OxfordCommaErr)
		}
	}
}

// looseSentences flags the first word of every sentence in a run of loose
// sentences: two clauses, the second introduced by a conjunction. Sentences
// shorter than the threshold, paragraph breaks included, neither extend nor
// break a run.
func (v *Validator) looseSentences() {
	begin := -1
	n := v.Corpus.Len()

	for i := 0; i < n; i++ {
		if len(v.Corpus.Sentence(i).Tokens) < looseThreshold {
			continue
		}

		if ps, ok := v.Corpus.Parsed(i).PrimaryStructure(); ok && ps == looseStructure {
			if begin == -1 {
				begin = i
			}
			continue
		}

		v.flagLoose(begin, i)
		begin = -1
	}

	v.flagLoose(begin, n)
}

// flagLoose flags sentences [begin, end) if they are enough.
func (v *Validator) flagLoose(begin, end int) {
	if begin == -1 || end-begin < looseThreshold {
		return
	}

	for i := begin; i < end; i++ {
		toks := v.Corpus.Sentence(i).Tokens
		if len(toks) > 0 {
			toks[0].AddErr(LooseErr)
		}
	}
}
