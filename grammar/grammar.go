// Package grammar holds the label space of the chart parser: the translation
// from Penn Treebank tags to grammar labels and the binary rules that combine
// two adjacent labels into one.
package grammar

import (
	"errors"
	"fmt"
)

// Top is the label of a complete sentence derivation.
const Top = "TOP"

var (
	// ErrUnsupportedTag is returned by Translate when no label claims a tag.
	ErrUnsupportedTag = errors.New("unsupported POS tag")

	// ErrDuplicateRule is returned when an ordered label pair is given two
	// different results.
	ErrDuplicateRule = errors.New("duplicate binary rule")
)

// Translation maps a grammar label to the POS tags that translate to it.
type Translation struct {
	Label string   `yaml:"label"`
	Tags  []string `yaml:"tags"`
}

// Rule combines a Left and a Right label, in this order in the sentence, into
// Result.
type Rule struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Result string `yaml:"result"`
}

// Table is a read-only grammar. The zero value has no labels and no rules.
type Table struct {
	translations []Translation

	// left label -> right label -> result
	rules map[string]map[string]string

	// rule declaration order, for Rules()
	order []Rule
}

// New builds a Table. Translations keep their declaration order. Two rules
// with the same ordered pair and a different result are rejected; an exact
// duplicate is ignored.
func New(translations []Translation, rules []Rule) (*Table, error) {
	t := &Table{
		translations: make([]Translation, len(translations)),
		rules:        map[string]map[string]string{},
	}

	for i, tr := range translations {
		t.translations[i] = Translation{Label: tr.Label, Tags: append([]string(nil), tr.Tags...)}
	}

	for _, r := range rules {
		if err := t.addRule(r); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (t *Table) addRule(r Rule) error {
	right, ok := t.rules[r.Left]
	if !ok {
		right = map[string]string{}
		t.rules[r.Left] = right
	}

	if res, ok := right[r.Right]; ok {
		if res == r.Result {
			return nil
		}
		return fmt.Errorf("%w: %s,%s -> %s and %s", ErrDuplicateRule, r.Left, r.Right, res, r.Result)
	}

	right[r.Right] = r.Result
	t.order = append(t.order, r)
	return nil
}

// Translate returns every label whose translation contains tag, in
// declaration order. An unclaimed tag yields no labels and an error wrapping
// ErrUnsupportedTag; callers treat it as a warning.
func (t *Table) Translate(tag string) ([]string, error) {
	var labels []string
	for _, tr := range t.translations {
		for _, tg := range tr.Tags {
			if tg == tag {
				labels = append(labels, tr.Label)
				break
			}
		}
	}

	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTag, tag)
	}

	return labels, nil
}

// Rule returns the label licensed by the ordered pair (left, right). The
// boolean is false when no rule combines them, which is the common case.
func (t *Table) Rule(left, right string) (string, bool) {
	res, ok := t.rules[left][right]
	return res, ok
}

// Labels returns the labels of the translation table in declaration order.
func (t *Table) Labels() []string {
	labels := make([]string, 0, len(t.translations))
	for _, tr := range t.translations {
		labels = append(labels, tr.Label)
	}
	return labels
}

// Translations returns a copy of the translation table.
func (t *Table) Translations() []Translation {
	out := make([]Translation, len(t.translations))
	for i, tr := range t.translations {
		out[i] = Translation{Label: tr.Label, Tags: append([]string(nil), tr.Tags...)}
	}
	return out
}

// Rules returns the binary rules in declaration order.
func (t *Table) Rules() []Rule {
	return append([]Rule(nil), t.order...)
}
