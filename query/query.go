package query

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/strunk/check"
	"github.com/revelaction/strunk/render"
)

const (
	// commandPrefix is the Character in the prompt that prefixes a command
	commandPrefix = ":"

	cmdQuit   = ":quit"
	cmdTree   = ":tree"
	cmdFormat = ":format"
	cmdChecks = ":checks"
)

var commands = []prompt.Suggest{
	{Text: cmdFormat, Description: "set the output format"},
	{Text: cmdTree, Description: "print the parse of every sentence"},
	{Text: cmdChecks, Description: "list the checks"},
	{Text: cmdQuit, Description: "exit"},
}

type Handler struct {
	Checker  *check.Checker
	Renderer *render.TextRenderer
	Out      io.Writer
}

func NewHandler(ck *check.Checker, r *render.TextRenderer, out io.Writer) *Handler {
	return &Handler{
		Checker:  ck,
		Renderer: r,
		Out:      out,
	}
}

func (h *Handler) Run(ctx context.Context) error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      ✍ ", h.completer,
			prompt.OptionTitle("strunk repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Out, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Out, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		history = append(history, in)

		quit, err := h.Exec(ctx, in)
		if err != nil {
			fmt.Fprintf(h.Out, "Error: %v\n", err)
		}
		if quit {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Exec runs one line of the prompt: a command, or a text to check. It
// reports whether the prompt must exit.
func (h *Handler) Exec(ctx context.Context, in string) (bool, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return false, nil
	}

	if in == "quit" {
		return true, nil
	}

	if strings.HasPrefix(in, commandPrefix) {
		return h.command(strings.Fields(in))
	}

	c, doc, err := h.Checker.Check(ctx, "", in)
	if err != nil {
		return false, err
	}

	return false, h.Renderer.Render(doc, c.Trees())
}

func (h *Handler) command(fields []string) (bool, error) {
	switch fields[0] {
	case cmdQuit:
		return true, nil

	case cmdTree:
		h.Renderer.Format = "tree"
		fmt.Fprintln(h.Out, "Format set to: "+h.Renderer.Format)

	case cmdFormat:
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: %s <%s>", cmdFormat, strings.Join(render.SupportedFormats(), "|"))
		}
		if !render.IsSupportedFormat(fields[1]) {
			return false, fmt.Errorf("unsupported format %q", fields[1])
		}
		h.Renderer.Format = fields[1]
		fmt.Fprintln(h.Out, "Format set to: "+h.Renderer.Format)

	case cmdChecks:
		for _, name := range check.Names() {
			state := "on"
			if h.Checker.Disabled[name] {
				state = "off"
			}
			fmt.Fprintf(h.Out, "%-20s %s\n", name, state)
		}

	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}

	return false, nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}
	befCursor := in.TextBeforeCursor()

	if !strings.HasPrefix(befCursor, commandPrefix) {
		return s
	}

	tokens := strings.Split(befCursor, " ")

	if len(tokens) == 1 {
		return prompt.FilterHasPrefix(commands, tokens[0], false)
	}

	// format argument
	if len(tokens) == 2 && tokens[0] == cmdFormat {
		for _, f := range render.SupportedFormats() {
			if strings.HasPrefix(f, tokens[1]) {
				s = append(s, prompt.Suggest{Text: f, Description: "format"})
			}
		}
	}

	return s
}
