package stat

import (
	"fmt"
	"slices"
)

// YourText names the checked text in GraphingData.
const YourText = "Your Text"

// Books lists the reference books in display order.
var Books = []string{
	"A Modest Proposal",
	"A Tale of Two Cities",
	"The Call of the Wild",
	"Charlotte's Web",
	"Fight Club",
	"Huckleberry Finn",
	"The Great Gatsby",
	"The Hobbit",
	"Wuthering Heights",
}

// bookMetrics caches the metrics of the reference books, computed once over
// their cleaned text.
var bookMetrics = map[string]map[string]float64{
	Exclamations: {
		"A Modest Proposal":    0.014925373134328358,
		"A Tale of Two Cities": 0.1396761133603239,
		"The Call of the Wild": 0.012658227848101266,
		"Charlotte's Web":      0.09631147540983606,
		"Fight Club":           0.0,
		"Huckleberry Finn":     0.02355072463768116,
		"The Great Gatsby":     0.019704433497536946,
		"The Hobbit":           0.1958762886597938,
		"Wuthering Heights":    0.1865079365079365,
	},
	AvgParagraphLength: {
		"A Modest Proposal":    2.0303030303030303,
		"A Tale of Two Cities": 5.428571428571429,
		"The Call of the Wild": 4.471698113207547,
		"Charlotte's Web":      4.153846153846154,
		"Fight Club":           2.0380710659898478,
		"Huckleberry Finn":     6.065934065934066,
		"The Great Gatsby":     4.951219512195122,
		"The Hobbit":           5.762376237623762,
		"Wuthering Heights":    4.893203883495145,
	},
}

// Book returns the cached value of metric for book.
func Book(metric, book string) (float64, bool) {
	v, ok := bookMetrics[metric][book]
	return v, ok
}

// Summary is the five number summary of a reference distribution.
type Summary struct {
	Metric string  `json:"metric"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Summarize returns the five number summary of metric.
func Summarize(metric string) (Summary, error) {
	sorted, err := sortedValues(metric)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Metric: metric,
		Min:    sorted[0],
		Q1:     median(lowerHalf(sorted)),
		Median: median(sorted),
		Q3:     median(upperHalf(sorted)),
		Max:    sorted[len(sorted)-1],
	}, nil
}

// Min returns the minimum of the reference distribution of metric.
func Min(metric string) (float64, error) {
	s, err := Summarize(metric)
	return s.Min, err
}

// Q1 returns the lower quartile: the median of the values below the median,
// the middle value excluded.
func Q1(metric string) (float64, error) {
	s, err := Summarize(metric)
	return s.Q1, err
}

// Median returns the median of the reference distribution of metric.
func Median(metric string) (float64, error) {
	s, err := Summarize(metric)
	return s.Median, err
}

// Q3 returns the upper quartile: the median of the values above the median,
// the middle value excluded.
func Q3(metric string) (float64, error) {
	s, err := Summarize(metric)
	return s.Q3, err
}

// Max returns the maximum of the reference distribution of metric.
func Max(metric string) (float64, error) {
	s, err := Summarize(metric)
	return s.Max, err
}

// Normalized scales v to the range of the reference distribution of metric:
// the minimum is 0 and the maximum 1.
func Normalized(metric string, v float64) (float64, error) {
	s, err := Summarize(metric)
	if err != nil {
		return 0, err
	}

	r := s.Max - s.Min
	if r == 0 {
		return 0, nil
	}
	return (v - s.Min) / r, nil
}

// Row is a normalized metric value of a book or of the checked text.
type Row struct {
	Metric     string  `json:"metric"`
	Name       string  `json:"name"`
	Normalized float64 `json:"normalized value"`
}

// GraphingData returns a row per metric and book followed, per metric, by
// the row of the checked text whose metrics are given.
func GraphingData(metrics map[string]float64) []Row {
	var rows []Row
	for _, m := range Metrics {
		for _, b := range Books {
			n, _ := Normalized(m, bookMetrics[m][b])
			rows = append(rows, Row{Metric: m, Name: b, Normalized: n})
		}

		n, _ := Normalized(m, metrics[m])
		rows = append(rows, Row{Metric: m, Name: YourText, Normalized: n})
	}
	return rows
}

func sortedValues(metric string) ([]float64, error) {
	books, ok := bookMetrics[metric]
	if !ok || len(books) == 0 {
		return nil, fmt.Errorf("unknown metric %q", metric)
	}

	values := make([]float64, 0, len(books))
	for _, v := range books {
		values = append(values, v)
	}
	slices.Sort(values)
	return values, nil
}

func lowerHalf(sorted []float64) []float64 {
	return sorted[:len(sorted)/2]
}

func upperHalf(sorted []float64) []float64 {
	return sorted[(len(sorted)+1)/2:]
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[(n-1)/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
