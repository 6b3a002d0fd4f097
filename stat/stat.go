// Package stat computes corpus metrics and compares them with the metrics of
// a set of reference books.
package stat

import (
	sent "github.com/revelaction/strunk/sentence"
)

const (
	Exclamations       = "exclamations"
	AvgParagraphLength = "avgParagraphLength"
)

// Metrics lists the metric names in display order.
var Metrics = []string{Exclamations, AvgParagraphLength}

// Compute returns the value of every metric for sentences, where an empty
// sentence is a paragraph break.
func Compute(sentences []sent.Sentence) map[string]float64 {
	return map[string]float64{
		Exclamations:       ExclamationRatio(sentences),
		AvgParagraphLength: ParagraphLength(sentences),
	}
}

// ExclamationRatio returns the share of sentence terminators that are
// exclamation marks, 0 if there are no terminators.
func ExclamationRatio(sentences []sent.Sentence) float64 {
	var terms, excl float64
	for _, s := range sentences {
		for _, t := range s.Tokens {
			switch t.Text {
			case "!":
				excl++
				terms++
			case ".", "?":
				terms++
			}
		}
	}

	if terms == 0 {
		return 0
	}
	return excl / terms
}

// ParagraphLength returns the mean number of sentences per paragraph.
func ParagraphLength(sentences []sent.Sentence) float64 {
	numSens, numParas := 0.0, 1.0
	for _, s := range sentences {
		if s.IsBreak() {
			numParas++
			continue
		}
		numSens++
	}
	return numSens / numParas
}

// Handler aggregates counts over one or more reports.
type Handler struct {
	stats Stats
}

type Stats struct {
	NumDocs               int
	NumSentences          int
	NumParagraphs         int
	NumTokens             int
	NumErrs               int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// ErrsPerMsg counts the diagnostics per message.
	ErrsPerMsg map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}, ErrsPerMsg: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumDocs++
	if len(doc.Sentences) > 0 {
		h.stats.NumParagraphs++
	}

	for _, sentence := range doc.Sentences {
		if sentence.IsBreak() {
			h.stats.NumParagraphs++
			continue
		}

		h.stats.NumSentences++
		h.stats.NumTokens += len(sentence.Tokens)
		h.stats.TokensPerSentenceDis[len(sentence.Tokens)]++

		for _, t := range sentence.Tokens {
			h.stats.NumErrs += len(t.Errs)
			for _, e := range t.Errs {
				h.stats.ErrsPerMsg[e]++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
