package grammar

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML representation of a grammar.
type File struct {
	Translations []Translation `yaml:"translations"`
	Rules        []Rule        `yaml:"rules"`
}

// Table builds the grammar described by the file.
func (f File) Table() (*Table, error) {
	if len(f.Translations) == 0 {
		return nil, errors.New("grammar has no translations")
	}

	for i, r := range f.Rules {
		if r.Left == "" || r.Right == "" || r.Result == "" {
			return nil, fmt.Errorf("rule %d: left, right and result are required", i)
		}
	}

	return New(f.Translations, f.Rules)
}

// Load reads a YAML grammar from r.
func Load(r io.Reader) (*Table, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode grammar: %w", err)
	}
	return f.Table()
}

// LoadFile reads a YAML grammar from path.
func LoadFile(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	t, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
