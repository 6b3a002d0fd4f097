// Package chart builds an approximate parse structure for a tagged sentence
// with the CKY algorithm over the binary rules of a grammar.Table.
//
// The chart is an N×N grid of cells, one per span [i, j] of the sentence;
// only the upper triangle (i <= j) is ever filled. Every cell keeps at most
// one item per label: ambiguity between distinct labels is preserved,
// ambiguity within one label is not (a later derivation replaces the earlier
// one). KeepDerivations records the replaced derivations as well.
package chart

import (
	"fmt"
	"strings"

	"github.com/revelaction/strunk/grammar"
	sent "github.com/revelaction/strunk/sentence"
)

// Item is a node of the parse forest. A leaf has no children.
type Item struct {
	Label    string
	Children []*Item
}

// IsLeaf reports whether the item was seeded from a word.
func (it *Item) IsLeaf() bool {
	return len(it.Children) == 0
}

// String renders the derivation rooted at the item: leaves as [label],
// internal nodes as ( label child child ).
func (it *Item) String() string {
	var b strings.Builder
	it.write(&b)
	return b.String()
}

func (it *Item) write(b *strings.Builder) {
	if it.IsLeaf() {
		b.WriteString("[" + it.Label + "]")
		return
	}

	b.WriteString("( " + it.Label + " ")
	for _, child := range it.Children {
		child.write(b)
		b.WriteString(" ")
	}
	b.WriteString(")")
}

// cell stores all the items that share a span.
type cell struct {
	// labels in first-insertion order
	labels []string
	items  map[string]*Item

	// all derivations per label, only with KeepDerivations
	derivations map[string][]*Item
}

func (c *cell) add(it *Item, keep bool) {
	if c.items == nil {
		c.items = map[string]*Item{}
	}

	if _, ok := c.items[it.Label]; !ok {
		c.labels = append(c.labels, it.Label)
	}
	c.items[it.Label] = it

	if keep {
		if c.derivations == nil {
			c.derivations = map[string][]*Item{}
		}
		c.derivations[it.Label] = append(c.derivations[it.Label], it)
	}
}

// Option configures a Parser.
type Option func(*Parser)

// KeepDerivations makes every cell remember all the derivations of a label,
// not only the last one. Labels, Item and Root are not affected.
func KeepDerivations() Option {
	return func(p *Parser) {
		p.keep = true
	}
}

// WithReporter calls fn for every warning raised while parsing, in addition
// to collecting it in Warnings.
func WithReporter(fn func(error)) Option {
	return func(p *Parser) {
		p.report = fn
	}
}

// Parser holds the chart of one sentence. It is fully populated by New and
// read-only afterwards, so it can be queried from several goroutines.
type Parser struct {
	g     *grammar.Table
	n     int
	cells [][]cell

	keep     bool
	report   func(error)
	warnings []error
}

// New parses words with the grammar g.
func New(g *grammar.Table, words []sent.Token, opts ...Option) *Parser {
	p := &Parser{g: g, n: len(words)}
	for _, opt := range opts {
		opt(p)
	}

	p.cells = make([][]cell, p.n)
	for i := range p.cells {
		p.cells[i] = make([]cell, p.n)
	}

	p.populateLeaves(words)
	p.populateInternal()

	return p
}

// populateLeaves fills the diagonal of the chart with the labels of every
// word's tag.
func (p *Parser) populateLeaves(words []sent.Token) {
	for i, w := range words {
		labels, err := p.g.Translate(w.Tag)
		if err != nil {
			p.warn(fmt.Errorf("word %d %q: %w", i, w.Text, err))
		}

		c := &p.cells[i][i]
		for _, label := range labels {
			c.add(&Item{Label: label}, p.keep)
		}
	}
}

// populateInternal fills the spans by increasing width, so that every
// subspan is complete before a wider span consults it.
func (p *Parser) populateInternal() {
	for width := 1; width < p.n; width++ {
		for j := width; j < p.n; j++ {
			p.fillCell(j-width, j)
		}
	}
}

// fillCell considers every binary split
//
//	w[i]...w[k] | w[k+1]...w[j]
func (p *Parser) fillCell(i, j int) {
	c := &p.cells[i][j]
	for k := i; k < j; k++ {
		left := &p.cells[i][k]
		right := &p.cells[k+1][j]
		p.checkSplit(c, left, right)
	}
}

func (p *Parser) checkSplit(c, left, right *cell) {
	for _, ll := range left.labels {
		for _, rl := range right.labels {
			res, ok := p.g.Rule(ll, rl)
			if !ok {
				continue
			}
			c.add(&Item{Label: res, Children: []*Item{left.items[ll], right.items[rl]}}, p.keep)
		}
	}
}

func (p *Parser) warn(err error) {
	p.warnings = append(p.warnings, err)
	if p.report != nil {
		p.report(err)
	}
}

func (p *Parser) cell(i, j int) *cell {
	if i < 0 || j < 0 || i >= p.n || j >= p.n {
		panic(fmt.Sprintf("chart: span (%d, %d) out of range for sentence of length %d", i, j, p.n))
	}
	return &p.cells[i][j]
}

// Len returns the length of the parsed sentence.
func (p *Parser) Len() int {
	return p.n
}

// Warnings returns the warnings raised while parsing (unsupported tags).
func (p *Parser) Warnings() []error {
	return p.warnings
}

// Labels returns the labels derivable over words i..j (inclusive), in the
// order they were first derived. It panics if i or j is outside the sentence.
func (p *Parser) Labels(i, j int) []string {
	return append([]string(nil), p.cell(i, j).labels...)
}

// HasLabel reports whether label is derivable over words i..j.
func (p *Parser) HasLabel(i, j int, label string) bool {
	_, ok := p.cell(i, j).items[label]
	return ok
}

// Item returns the item stored for label over words i..j.
func (p *Parser) Item(i, j int, label string) (*Item, bool) {
	it, ok := p.cell(i, j).items[label]
	return it, ok
}

// Derivations returns every derivation of label over words i..j. Without
// KeepDerivations it holds at most the stored item.
func (p *Parser) Derivations(i, j int, label string) []*Item {
	c := p.cell(i, j)
	if p.keep {
		return append([]*Item(nil), c.derivations[label]...)
	}

	if it, ok := c.items[label]; ok {
		return []*Item{it}
	}
	return nil
}

// Root returns the TOP item of the whole sentence. A sentence without a
// complete derivation has no root.
func (p *Parser) Root() (*Item, bool) {
	if p.n == 0 {
		return nil, false
	}
	return p.Item(0, p.n-1, grammar.Top)
}

// PrimaryStructure returns the labels of the two children under the root's
// first child, the top-level shape of the sentence.
func (p *Parser) PrimaryStructure() ([2]string, bool) {
	root, ok := p.Root()
	if !ok || root.IsLeaf() {
		return [2]string{}, false
	}

	primary := root.Children[0]
	if primary.IsLeaf() {
		return [2]string{}, false
	}

	return [2]string{primary.Children[0].Label, primary.Children[1].Label}, true
}

// String renders the root derivation, or the empty string if there is none.
func (p *Parser) String() string {
	root, ok := p.Root()
	if !ok {
		return ""
	}
	return root.String()
}
