package main

import (
	"fmt"
	"sort"

	"github.com/revelaction/strunk/config"
)

func envCommand(ui UI) error {
	vars := config.AsMap()

	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		v := vars[n]
		fmt.Fprintf(ui.Out, "%-14s %s\n", v.Name, v.Description)
		if v.Value != "" {
			fmt.Fprintf(ui.Out, "%-14s = %s\n", "", v.Value)
		}
	}
	return nil
}
