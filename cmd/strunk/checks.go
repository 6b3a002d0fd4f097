package main

import (
	"fmt"

	"github.com/revelaction/strunk/check"
)

func checksCommand(ui UI) error {
	for _, name := range check.Names() {
		if _, err := fmt.Fprintf(ui.Out, "✔ %s\n", name); err != nil {
			return err
		}
	}
	return nil
}
