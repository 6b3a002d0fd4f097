// Package dictionary holds the list of known words used by the in-word dash
// check.
package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Dictionary is a set of words. The zero value is empty and usable.
type Dictionary struct {
	words map[string]struct{}
}

// New returns a dictionary holding words.
func New(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.words[w] = struct{}{}
	}
	return d
}

// Contains reports whether word is in the dictionary. Lookups are case
// sensitive.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[word]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Load reads one word per line from r. Blank lines and lines starting with #
// are skipped.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d.words[line] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	return d, nil
}

// LoadFile reads a word list from path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Fetch downloads a word list.
func Fetch(ctx context.Context, url string) (*Dictionary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dictionary: HTTP %d", resp.StatusCode)
	}

	return Load(resp.Body)
}

// Open loads the dictionary from src, a URL when it starts with http:// or
// https://, a file path otherwise.
func Open(ctx context.Context, src string) (*Dictionary, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return Fetch(ctx, src)
	}
	return LoadFile(src)
}
