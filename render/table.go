package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/revelaction/strunk/grammar"
	"github.com/revelaction/strunk/stat"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}

// MetricsTable writes the metrics of a text next to the summary of the
// reference distributions. A nil metrics map prints the references only.
func MetricsTable(w io.Writer, metrics map[string]float64) error {
	header := []string{"METRIC", "MIN", "Q1", "MEDIAN", "Q3", "MAX"}
	if metrics != nil {
		header = append(header, "TEXT", "NORMALIZED")
	}

	var data [][]string
	for _, m := range stat.Metrics {
		s, err := stat.Summarize(m)
		if err != nil {
			return err
		}

		row := []string{m, formatFloat(s.Min), formatFloat(s.Q1), formatFloat(s.Median), formatFloat(s.Q3), formatFloat(s.Max)}
		if metrics != nil {
			n, err := stat.Normalized(m, metrics[m])
			if err != nil {
				return err
			}
			row = append(row, formatFloat(metrics[m]), formatFloat(n))
		}
		data = append(data, row)
	}

	newTable(w, header, data)
	return nil
}

// DocTable writes one row per stored report.
func DocTable(w io.Writer, rows [][]string) {
	newTable(w, []string{"ID", "TITLE", "CREATED", "SENTENCES", "ERRS"}, rows)
}

// GrammarTables writes the translations of g, one row per label, followed by
// its binary rules.
func GrammarTables(w io.Writer, g *grammar.Table) {
	var labels [][]string
	for _, tr := range g.Translations() {
		labels = append(labels, []string{tr.Label, strings.Join(tr.Tags, " ")})
	}
	newTable(w, []string{"LABEL", "TAGS"}, labels)

	fmt.Fprintln(w)

	var rules [][]string
	for _, r := range g.Rules() {
		rules = append(rules, []string{r.Left, r.Right, r.Result})
	}
	newTable(w, []string{"LEFT", "RIGHT", "RESULT"}, rules)
}

func newTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
