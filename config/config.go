// Package config loads the strunk.yaml configuration and the environment,
// and builds the Checker they describe.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/strunk/check"
	"github.com/revelaction/strunk/grammar"
	"github.com/revelaction/strunk/wordmatch"
)

// DefaultPath is the config file read when no path is given. It may be
// missing.
const DefaultPath = "strunk.yaml"

// File is the YAML configuration. Every section is optional.
type File struct {
	Grammar    *grammar.File     `yaml:"grammar"`
	Wordmatch  *wordmatch.File   `yaml:"wordmatch"`
	Lexicon    map[string]string `yaml:"lexicon"`
	Dictionary string            `yaml:"dictionary"`
	Disabled   []string          `yaml:"disabled"`
}

// Validate reports unknown check names.
func (f File) Validate() error {
	for _, name := range f.Disabled {
		if !check.IsName(name) {
			return fmt.Errorf("disabled: unknown check %q", name)
		}
	}
	return nil
}

// Load decodes a YAML configuration from r. An empty input is the zero File.
func Load(r io.Reader) (File, error) {
	var f File
	err := yaml.NewDecoder(r).Decode(&f)
	if err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode config: %w", err)
	}

	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// LoadFile decodes the configuration at path. A missing DefaultPath is the
// zero File; any other missing path is an error.
func LoadFile(path string) (File, error) {
	if path == "" {
		path = DefaultPath
	}

	fh, err := os.Open(path)
	if err != nil {
		if path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
			return File{}, nil
		}
		return File{}, err
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
