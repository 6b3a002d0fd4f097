package file

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	sent "github.com/revelaction/strunk/sentence"
)

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, err
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

// ReadText returns the text to check in path. HTML files (.html, .htm) are
// reduced to their text, any other file is read as is. The path "-" reads
// stdin.
func ReadText(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return HTMLText(strings.NewReader(string(b)))
	}

	return string(b), nil
}

// HTMLText extracts the text of an HTML document. Script and style contents
// are skipped, block elements end a paragraph and white space inside a
// paragraph collapses to one space.
func HTMLText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(collapseSpace(n.Data))
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Head, atom.Noscript, atom.Template:
				return
			case atom.Br:
				buf.WriteString(" ")
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}

		if n.Type == html.ElementNode && isBlock(n.DataAtom) {
			buf.WriteString("\n\n")
		}
	}
	extractText(doc)

	return paragraphs(buf.String()), nil
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Blockquote, atom.Section, atom.Article,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Pre, atom.Tr,
		atom.Dd, atom.Dt, atom.Figcaption, atom.Header, atom.Footer, atom.Main:
		return true
	}
	return false
}

func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}

	out := strings.Join(fields, " ")
	if strings.TrimLeft(s[:1], " \t\r\n") == "" {
		out = " " + out
	}
	if strings.TrimRight(s[len(s)-1:], " \t\r\n") == "" {
		out += " "
	}
	return out
}

// paragraphs trims every paragraph and drops the empty ones.
func paragraphs(s string) string {
	var paras []string
	for _, p := range strings.Split(s, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	return strings.Join(paras, "\n\n")
}
