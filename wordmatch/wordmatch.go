// Package wordmatch flags single tokens found in a fixed catalogue of words,
// such as first person pronouns or parentheses.
package wordmatch

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/strunk/mdfa"
)

const (
	ExclamationErr = "Do not attempt to emphasize simple statements by using a mark of exclamation. The exclamation mark is to be reserved for use after true exclamations or commands."
	ParensErr      = "Enclose parenthetic expressions between commas."
	FirstPersonErr = "Do not use the first person in formal writing."
)

// Entry is a catalogue word and the diagnostics reported for it.
type Entry struct {
	Word        string   `yaml:"word"`
	Diagnostics []string `yaml:"diagnostics"`
}

// Default returns the built-in catalogue.
func Default() []Entry {
	return []Entry{
		{"!", []string{ExclamationErr}},
		{"(", []string{ParensErr}},
		{")", []string{ParensErr}},
		{"I", []string{FirstPersonErr}},
		{"me", []string{FirstPersonErr}},
		{"my", []string{FirstPersonErr}},
		{"mine", []string{FirstPersonErr}},
		{"we", []string{FirstPersonErr}},
		{"us", []string{FirstPersonErr}},
		{"our", []string{FirstPersonErr}},
		{"ours", []string{FirstPersonErr}},
	}
}

// Checks holds the catalogue in a prefix automaton. It is read-only after
// New returns.
type Checks struct {
	mdfa *mdfa.Automaton
	size int
}

// New builds the checks from entries. Invalid entries are passed to report,
// when not nil, and skipped.
func New(entries []Entry, report func(error)) *Checks {
	c := &Checks{mdfa: mdfa.New()}
	for i, e := range entries {
		if err := c.mdfa.Insert(e.Word, e.Diagnostics); err != nil {
			if report != nil {
				report(fmt.Errorf("wordmatch entry %d: %w", i, err))
			}
			continue
		}
		c.size++
	}
	return c
}

// Run returns the diagnostics for word.
func (c *Checks) Run(word string) []string {
	return c.mdfa.Query(word)
}

// Len returns the number of entries loaded.
func (c *Checks) Len() int {
	return c.size
}

// File is the YAML representation of a catalogue.
type File struct {
	// Replace drops the built-in catalogue instead of extending it.
	Replace bool    `yaml:"replace"`
	Entries []Entry `yaml:"entries"`
}

// Merge returns the entries to load for the file.
func (f File) Merge() []Entry {
	if f.Replace {
		return f.Entries
	}
	return append(Default(), f.Entries...)
}

// Load decodes a YAML catalogue from r.
func Load(r io.Reader) (File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode wordmatch catalogue: %w", err)
	}
	return f, nil
}

// LoadFile decodes a YAML catalogue from path.
func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()
	return Load(fh)
}
