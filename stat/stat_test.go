package stat

import (
	"testing"

	sent "github.com/revelaction/strunk/sentence"
)

func sentence(words ...string) sent.Sentence {
	s := sent.Sentence{}
	for i, w := range words {
		s.Tokens = append(s.Tokens, sent.Token{Index: i, Text: w})
	}
	return s
}

func TestExclamationRatio(t *testing.T) {
	sentences := []sent.Sentence{
		sentence("x", "x", "."),
		sentence("x", "x", "."),
		sentence("x", "x", "!"),
		sentence("x", "x", "?"),
	}

	if got := ExclamationRatio(sentences); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
}

func TestExclamationRatioNoTerminator(t *testing.T) {
	if got := ExclamationRatio([]sent.Sentence{sentence("x")}); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestParagraphLength(t *testing.T) {
	one := sentence("x")
	brk := sentence()
	sentences := []sent.Sentence{one, brk, one, one, one, one, brk, one}

	if got := ParagraphLength(sentences); got != 2.0 {
		t.Fatalf("expected 2, got %v", got)
	}

	m := Compute(sentences)
	if len(m) != len(Metrics) || m[AvgParagraphLength] != 2.0 {
		t.Errorf("unexpected metrics %v", m)
	}
}

func TestSummaries(t *testing.T) {
	cases := []struct {
		metric string
		want   Summary
	}{
		{Exclamations, Summary{
			Metric: Exclamations,
			Min:    0,
			Q1:     0.013791800491214812,
			Median: 0.02355072463768116,
			Q3:     0.16309202493413022,
			Max:    0.1958762886597938,
		}},
		{AvgParagraphLength, Summary{
			Metric: AvgParagraphLength,
			Min:    2.0303030303030303,
			Q1:     3.095958609918001,
			Median: 4.893203883495145,
			Q3:     5.5954738330975955,
			Max:    6.065934065934066,
		}},
	}

	for _, c := range cases {
		got, err := Summarize(c.metric)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.metric, err)
		}
		if got != c.want {
			t.Errorf("%s: expected %+v, got %+v", c.metric, c.want, got)
		}
	}

	if q1, _ := Q1(Exclamations); q1 != 0.013791800491214812 {
		t.Errorf("unexpected q1 %v", q1)
	}
	if max, _ := Max(AvgParagraphLength); max != 6.065934065934066 {
		t.Errorf("unexpected max %v", max)
	}
}

func TestUnknownMetric(t *testing.T) {
	if _, err := Median("adverbs"); err == nil {
		t.Fatalf("expected an error for an unknown metric")
	}
}

func TestNormalized(t *testing.T) {
	if n, _ := Normalized(AvgParagraphLength, 2.0303030303030303); n != 0 {
		t.Errorf("expected the minimum to be 0, got %v", n)
	}
	if n, _ := Normalized(AvgParagraphLength, 6.065934065934066); n != 1 {
		t.Errorf("expected the maximum to be 1, got %v", n)
	}
}

func TestGraphingDataCoversAllBooks(t *testing.T) {
	rows := GraphingData(map[string]float64{Exclamations: 0, AvgParagraphLength: 0})

	covered := map[string]map[string]bool{}
	yourText := 0
	for _, r := range rows {
		if r.Name == YourText {
			yourText++
			continue
		}
		if covered[r.Metric] == nil {
			covered[r.Metric] = map[string]bool{}
		}
		covered[r.Metric][r.Name] = true
	}

	if yourText != 2 {
		t.Errorf("expected 2 rows for the checked text, got %d", yourText)
	}

	for _, m := range Metrics {
		for _, b := range Books {
			if !covered[m][b] {
				t.Errorf("%s %s not covered", m, b)
			}
		}
	}
}

func TestHandler(t *testing.T) {
	s := sentence("I", "run", ".")
	s.Tokens[0].AddErr("first person")
	doc := sent.Doc{Sentences: []sent.Sentence{s, sentence(), sentence("Go", ".")}}

	h := NewHandler()
	h.Aggregate(doc)
	st := h.Get()

	if st.NumSentences != 2 || st.NumParagraphs != 2 || st.NumTokens != 5 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if st.NumErrs != 1 || st.ErrsPerMsg["first person"] != 1 {
		t.Errorf("unexpected errs %+v", st)
	}
	if st.TokensPerSentenceMean != 2 {
		t.Errorf("expected a mean of 2 tokens, got %d", st.TokensPerSentenceMean)
	}
}
