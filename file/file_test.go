package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sent "github.com/revelaction/strunk/sentence"
)

func TestHTMLText(t *testing.T) {
	src := `<html><head><title>x</title><style>p {color: red}</style></head>
<body>
  <h1>Title</h1>
  <p>First   sentence.
     Second <b>bold</b> one.</p>
  <script>var a = "no.";</script>
  <p>New paragraph.</p>
</body></html>`

	got, err := HTMLText(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Title\n\nFirst sentence. Second bold one.\n\nNew paragraph."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(txt, []byte("Plain <b>text</b>."), 0o644); err != nil {
		t.Fatal(err)
	}
	htm := filepath.Join(dir, "a.HTML")
	if err := os.WriteFile(htm, []byte("<p>Plain <b>text</b>.</p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got, err := ReadText(txt); err != nil || got != "Plain <b>text</b>." {
		t.Errorf("unexpected text %q %v", got, err)
	}
	if got, err := ReadText(htm); err != nil || got != "Plain text." {
		t.Errorf("unexpected html text %q %v", got, err)
	}
	if _, err := ReadText(filepath.Join(dir, "missing.txt")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestReadDoc(t *testing.T) {
	doc := sent.Doc{Id: "01JB3V8V6E0000000000000000", Title: "t", Sentences: []sent.Sentence{{Id: 0}}}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadDoc(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Id != doc.Id || len(got.Sentences) != 1 {
		t.Errorf("unexpected doc %+v", got)
	}
}
