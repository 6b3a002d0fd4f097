package main

import (
	"fmt"
	"strings"

	"github.com/revelaction/strunk/check"
)

var commands = []string{
	"check",
	"tree",
	"repl",
	"serve",
	"import",
	"export",
	"ls",
	"show",
	"stat",
	"find",
	"metrics",
	"grammar",
	"checks",
	"env",
	"bash",
	"version",
	"help",
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	completions := getCompletions(args)
	for _, c := range completions {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

func getCompletions(args []string) []string {
	if len(args) < 1 {
		return nil
	}

	// args[0] is "strunk" (binary name from COMP_WORDS[0])
	commandIndex := 1
	cursorIndex := len(args) - 1
	lastWord := args[cursorIndex]

	if cursorIndex == commandIndex {
		return withPrefix(commands, lastWord)
	}

	if cursorIndex < commandIndex {
		return nil
	}

	// check names after -disable
	if args[cursorIndex-1] == "-disable" || args[cursorIndex-1] == "--disable" {
		return withPrefix(check.Names(), lastWord)
	}

	if args[commandIndex] == "help" && cursorIndex == commandIndex+1 {
		return withPrefix(commands, lastWord)
	}

	return nil
}

func withPrefix(words []string, prefix string) []string {
	var completions []string
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			completions = append(completions, w)
		}
	}
	return completions
}
