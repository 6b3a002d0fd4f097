// Package corpus turns a text into tagged sentences and their parse charts,
// the input of the style checks.
package corpus

import (
	"context"
	"crypto/rand"
	"runtime"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/revelaction/strunk/chart"
	"github.com/revelaction/strunk/grammar"
	sent "github.com/revelaction/strunk/sentence"
	"github.com/revelaction/strunk/tagger"
)

// Corpus holds the sentences of a text, with an empty sentence for every
// paragraph break, and one chart per sentence.
type Corpus struct {
	sentences []sent.Sentence
	parsed    []*chart.Parser
}

type config struct {
	grammar *grammar.Table
	tagger  *tagger.Tagger
	report  func(error)
	keep    bool
	workers int
}

// Option configures how a Corpus is built.
type Option func(*config)

// WithGrammar parses with g instead of the built-in grammar.
func WithGrammar(g *grammar.Table) Option {
	return func(c *config) {
		c.grammar = g
	}
}

// WithTagger tags with t instead of the built-in lexicon.
func WithTagger(t *tagger.Tagger) Option {
	return func(c *config) {
		c.tagger = t
	}
}

// WithReporter calls fn for every parse warning, in sentence order.
func WithReporter(fn func(error)) Option {
	return func(c *config) {
		c.report = fn
	}
}

// KeepDerivations makes every chart keep all the derivations of a label.
func KeepDerivations() Option {
	return func(c *config) {
		c.keep = true
	}
}

// WithWorkers bounds the number of sentences parsed at once. The default is
// the number of CPUs.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

func newConfig(opts []Option) *config {
	c := &config{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(c)
	}

	if c.grammar == nil {
		c.grammar = grammar.Default()
	}
	if c.tagger == nil {
		c.tagger = tagger.New(nil)
	}
	if c.workers < 1 {
		c.workers = 1
	}
	return c
}

// New splits text into sentences, tags them and parses them.
func New(ctx context.Context, text string, opts ...Option) (*Corpus, error) {
	c := newConfig(opts)

	var sentences []sent.Sentence
	for i, s := range tagger.Split(text) {
		sentences = append(sentences, c.tagger.Sentence(i, s))
	}

	return parse(ctx, sentences, c)
}

// FromSentences parses already tagged sentences.
func FromSentences(ctx context.Context, sentences []sent.Sentence, opts ...Option) (*Corpus, error) {
	return parse(ctx, sentences, newConfig(opts))
}

func parse(ctx context.Context, sentences []sent.Sentence, c *config) (*Corpus, error) {
	parsed := make([]*chart.Parser, len(sentences))

	var chartOpts []chart.Option
	if c.keep {
		chartOpts = append(chartOpts, chart.KeepDerivations())
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i := range sentences {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parsed[i] = chart.New(c.grammar, sentences[i].Tokens, chartOpts...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if c.report != nil {
		for _, p := range parsed {
			for _, w := range p.Warnings() {
				c.report(w)
			}
		}
	}

	return &Corpus{sentences: sentences, parsed: parsed}, nil
}

// Len returns the number of sentences, paragraph breaks included.
func (c *Corpus) Len() int {
	return len(c.sentences)
}

// Sentences returns the sentences. Checks attach their diagnostics to the
// tokens in place.
func (c *Corpus) Sentences() []sent.Sentence {
	return c.sentences
}

// Sentence returns the sentence i.
func (c *Corpus) Sentence(i int) *sent.Sentence {
	return &c.sentences[i]
}

// Parsed returns the chart of sentence i.
func (c *Corpus) Parsed(i int) *chart.Parser {
	return c.parsed[i]
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewId returns a new report id, sortable by creation time.
func NewId(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Doc returns the corpus as a report with a new id.
func (c *Corpus) Doc(title string) sent.Doc {
	now := time.Now()
	return sent.Doc{
		Id:        NewId(now),
		Title:     title,
		Created:   now.UTC(),
		Sentences: c.sentences,
	}
}

// Trees returns the chart dump of every sentence, empty for a sentence
// without a parse.
func (c *Corpus) Trees() []string {
	trees := make([]string, len(c.parsed))
	for i, p := range c.parsed {
		trees[i] = p.String()
	}
	return trees
}
