package main

import (
	"fmt"
)

// bashScript completes with the words printed by the complete command, and
// falls back to file names when it prints none. Only the words up to the
// cursor are passed.
const bashScript = `# bash completion for %[1]s
# add to ~/.bashrc: eval "$(%[1]s bash)"

_%[1]s_complete() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    local words

    words=$(%[1]s complete -- "${COMP_WORDS[@]:0:COMP_CWORD+1}") || return

    if [[ -z "$words" ]]; then
        compopt -o filenames 2>/dev/null
        COMPREPLY=( $(compgen -f -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -W "$words" -- "$cur") )
}

complete -F _%[1]s_complete %[1]s
`

func bashCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, bashScript, "strunk")
	return err
}
