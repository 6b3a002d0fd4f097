package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/strunk/sentence"
)

// JSONRenderer writes checked docs as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type jsonReport struct {
	sent.Doc
	Trees []string `json:"trees,omitempty"`
}

// Render serializes the doc, and the trees if any, as a JSON object.
func (r *JSONRenderer) Render(doc sent.Doc, trees []string) error {
	return json.NewEncoder(r.W).Encode(jsonReport{Doc: doc, Trees: trees})
}

// compile-time interface check
var (
	_ Renderer = (*JSONRenderer)(nil)
	_ Renderer = (*TextRenderer)(nil)
)
