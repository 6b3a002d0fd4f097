package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	sent "github.com/revelaction/strunk/sentence"
)

const (
	Defaultformat = "all"
)

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Red256    = "\033[1;38;5;160m"
	ClearLine = "\033[K"
)

func SupportedFormats() []string {
	return []string{"all", "errs", "tree"}
}

// IsSupportedFormat reports whether f is one of SupportedFormats.
func IsSupportedFormat(f string) bool {
	for _, s := range SupportedFormats() {
		if s == f {
			return true
		}
	}
	return false
}

// Renderer prints checked docs.
type Renderer interface {
	// Render prints doc. trees, if not nil, holds the chart dump of every
	// sentence of doc.
	Render(doc sent.Doc, trees []string) error
}

// TextRenderer prints docs for the terminal.
type TextRenderer struct {
	W io.Writer

	HasColor bool

	HasPrefix bool

	// Format determines what is printed
	//
	// all: print every sentence, flagged words highlighted, followed by
	// their diagnostics
	// errs: print only the sentences with diagnostics
	// tree: as all, followed by the parse of the sentence
	Format string
}

func NewRenderer() *TextRenderer {
	return &TextRenderer{W: os.Stdout, Format: Defaultformat}
}

func (r *TextRenderer) Render(doc sent.Doc, trees []string) error {
	if r.HasPrefix && doc.Title != "" {
		if _, err := fmt.Fprintf(r.W, "%s\n", r.title(doc.Title)); err != nil {
			return err
		}
	}

	for i, s := range doc.Sentences {
		if s.IsBreak() {
			if r.Format != "errs" {
				fmt.Fprintln(r.W)
			}
			continue
		}

		if r.Format == "errs" && !hasErrs(s) {
			continue
		}

		if _, err := fmt.Fprintf(r.W, "%s%s\n", r.prefix(s), r.SentenceString(s.Tokens)); err != nil {
			return err
		}

		r.diagnostics(s)

		if r.Format == "tree" && i < len(trees) {
			tree := trees[i]
			if tree == "" {
				tree = "(no parse)"
			}
			fmt.Fprintf(r.W, "%s%s\n", r.indent(), r.color(Gray, tree))
		}
	}

	return nil
}

// Sentence prints a single sentence and its diagnostics.
func (r *TextRenderer) Sentence(s sent.Sentence, tree string) {
	fmt.Fprintf(r.W, "%s%s\n", r.prefix(s), r.SentenceString(s.Tokens))
	r.diagnostics(s)
	if r.Format == "tree" && tree != "" {
		fmt.Fprintf(r.W, "%s%s\n", r.indent(), r.color(Gray, tree))
	}
}

// SentenceString returns the text of the sentence with the flagged words
// highlighted.
func (r *TextRenderer) SentenceString(tokens []sent.Token) string {
	var str strings.Builder
	for i, token := range tokens {
		if i > 0 && spaceBetween(tokens[i-1].Text, token.Text) {
			str.WriteString(" ")
		}
		str.WriteString(colorToken(token, r.HasColor))
	}
	return str.String()
}

func (r *TextRenderer) diagnostics(s sent.Sentence) {
	n := 0
	for _, t := range s.Tokens {
		for _, e := range t.Errs {
			n++
			fmt.Fprintf(r.W, "%s%2d. %s: %s\n", r.indent(), n, r.color(Yellow256, t.Text), e)
		}
	}
}

func (r *TextRenderer) prefix(s sent.Sentence) string {
	if !r.HasPrefix {
		return ""
	}
	return fmt.Sprintf("%3d ✍  ", s.Id)
}

func (r *TextRenderer) indent() string {
	if !r.HasPrefix {
		return "    "
	}
	return "        "
}

func (r *TextRenderer) color(c, text string) string {
	if !r.HasColor {
		return text
	}
	return c + text + Off
}

func (r *TextRenderer) title(title string) string {
	l := len(title)
	var part string
	if l <= 20 {
		part = fmt.Sprintf("%-20s", title)
	} else {
		part = title[:20]
	}

	return r.color(Grey256, part)
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *TextRenderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *TextRenderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}

func colorToken(token sent.Token, hasColor bool) string {
	if !hasColor || len(token.Errs) == 0 {
		return token.Text
	}

	return Red256 + token.Text + Off
}

func hasErrs(s sent.Sentence) bool {
	for _, t := range s.Tokens {
		if len(t.Errs) > 0 {
			return true
		}
	}
	return false
}

// spaceBetween reports whether the words prev and next are separated by a
// space in running text.
func spaceBetween(prev, next string) bool {
	switch next {
	case ".", ",", "!", "?", ";", ":", ")", "]", "'", "’":
		return false
	}
	if strings.Trim(next, ".!?") == "" {
		return false
	}

	switch prev {
	case "(", "[", "'", "’", "/":
		return false
	}
	return next != "/"
}
