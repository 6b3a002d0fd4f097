package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/strunk/config"
	sent "github.com/revelaction/strunk/sentence"
	"github.com/revelaction/strunk/wordmatch"
)

func testUI() (UI, *bytes.Buffer, *bytes.Buffer) {
	var out, errb bytes.Buffer
	return UI{Out: &out, Err: &errb}, &out, &errb
}

// testEnv isolates a test from the config and repository of the user.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvDict, "")
	t.Setenv(config.EnvRepo, "")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckCommand(t *testing.T) {
	dir := testEnv(t)
	path := writeFile(t, dir, "essay.txt", "I like fluffy cats!\nThe end.")

	ui, out, _ := testUI()
	if err := runCommand(context.Background(), "check", []string{"-c", "-x", path}, ui); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, s := range []string{"I like fluffy cats!", wordmatch.FirstPersonErr, wordmatch.ExclamationErr, "The end."} {
		if !strings.Contains(got, s) {
			t.Errorf("expected %q in\n%s", s, got)
		}
	}
}

func TestCheckCommandJSON(t *testing.T) {
	dir := testEnv(t)
	path := writeFile(t, dir, "page.html", "<p>Stop it!</p>")

	ui, out, _ := testUI()
	if err := runCommand(context.Background(), "check", []string{"-json", "-disable", "exclamations,wordMatch", path}, ui); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc sent.Doc
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if doc.Title != "page.html" || !strings.Contains(out.String(), `"Stop"`) {
		t.Fatalf("unexpected doc %+v", doc)
	}
	if doc.NumErrs() != 0 {
		t.Errorf("expected the disabled checks not to run, got %d diagnostics", doc.NumErrs())
	}
}

func TestCheckCommandUnknownCheck(t *testing.T) {
	dir := testEnv(t)
	path := writeFile(t, dir, "a.txt", "Text.")

	ui, _, _ := testUI()
	if err := runCommand(context.Background(), "check", []string{"-disable", "nope", path}, ui); err == nil {
		t.Fatalf("expected an error for an unknown check")
	}
}

func TestCheckCommandConfig(t *testing.T) {
	dir := testEnv(t)
	writeFile(t, dir, config.DefaultPath, "disabled: [firstPerson, wordMatch]\n")
	path := writeFile(t, dir, "a.txt", "I ran.")

	ui, out, _ := testUI()
	if err := runCommand(context.Background(), "check", []string{"-c", "-x", "-f", "errs", path}, ui); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.String(), wordmatch.FirstPersonErr) {
		t.Errorf("expected the config to disable the check, got\n%s", out.String())
	}
}

func TestSaveLsShowStat(t *testing.T) {
	for _, repoName := range []string{"reports", "reports.db"} {
		t.Run(repoName, func(t *testing.T) {
			dir := testEnv(t)
			path := writeFile(t, dir, "essay.txt", "We won!")
			repo := filepath.Join(dir, repoName)

			ui, out, _ := testUI()
			if err := runCommand(context.Background(), "check", []string{"-save", repo, path}, ui); err != nil {
				t.Fatalf("check: %v", err)
			}

			out.Reset()
			if err := runCommand(context.Background(), "ls", []string{"-r", repo}, ui); err != nil {
				t.Fatalf("ls: %v", err)
			}
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			if len(lines) != 2 || !strings.Contains(lines[1], "essay.txt") {
				t.Fatalf("unexpected ls output\n%s", out.String())
			}
			id := strings.Fields(lines[1])[0]

			out.Reset()
			if err := runCommand(context.Background(), "show", []string{"-r", repo, "-c", "-json", id}, ui); err != nil {
				t.Fatalf("show: %v", err)
			}
			var doc sent.Doc
			if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if doc.Id != id || doc.NumErrs() == 0 {
				t.Errorf("unexpected report %+v", doc)
			}

			out.Reset()
			if err := runCommand(context.Background(), "stat", []string{"-r", repo}, ui); err != nil {
				t.Fatalf("stat: %v", err)
			}
			if !strings.Contains(out.String(), "Num reports 1") {
				t.Errorf("unexpected stat output\n%s", out.String())
			}

			out.Reset()
			if err := runCommand(context.Background(), "find", []string{"-r", repo, "-c", "exclamation"}, ui); err != nil {
				t.Fatalf("find: %v", err)
			}
			if !strings.Contains(out.String(), "We won!") || !strings.Contains(out.String(), "1 sentence(s) found") {
				t.Errorf("unexpected find output\n%s", out.String())
			}

			if err := runCommand(context.Background(), "show", []string{"-r", repo, "01JB3V8V6E0000000000000009"}, ui); err == nil {
				t.Errorf("expected an error for a missing report")
			}
		})
	}
}

func TestLsSkipsBrokenReport(t *testing.T) {
	dir := testEnv(t)
	repo := filepath.Join(dir, "reports")
	if err := os.Mkdir(repo, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, repo, "broken.json", "{")

	ui, out, errb := testUI()
	if err := runCommand(context.Background(), "ls", []string{"-r", repo}, ui); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "ID") {
		t.Errorf("expected the table header, got\n%s", out.String())
	}
	if !strings.Contains(errb.String(), "broken.json") || !strings.Contains(errb.String(), "WARN") {
		t.Errorf("expected a warning for the skipped file, got\n%s", errb.String())
	}
}

func TestLsMissingRepo(t *testing.T) {
	dir := testEnv(t)

	ui, _, _ := testUI()
	if err := runCommand(context.Background(), "ls", []string{"-r", filepath.Join(dir, "nope")}, ui); err == nil {
		t.Fatalf("expected an error for a missing repository")
	}
	if err := runCommand(context.Background(), "ls", nil, ui); err == nil {
		t.Fatalf("expected an error without a repository")
	}
}

func TestTreeCommand(t *testing.T) {
	dir := testEnv(t)
	path := writeFile(t, dir, "a.txt", "I like fluffy cats. Ok #.")

	ui, out, _ := testUI()
	if err := runCommand(context.Background(), "tree", []string{"-all", path}, ui); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, s := range []string{"( TOP ", "(no parse)", "derivation(s) of TOP"} {
		if !strings.Contains(got, s) {
			t.Errorf("expected %q in\n%s", s, got)
		}
	}
}

func TestMetricsCommand(t *testing.T) {
	dir := testEnv(t)
	path := writeFile(t, dir, "a.txt", "Go! Now.")

	ui, out, _ := testUI()
	if err := runCommand(context.Background(), "metrics", nil, ui); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "MEDIAN") || strings.Contains(out.String(), "NORMALIZED") {
		t.Errorf("unexpected metrics output\n%s", out.String())
	}

	out.Reset()
	if err := runCommand(context.Background(), "metrics", []string{path}, ui); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "NORMALIZED") || !strings.Contains(out.String(), "0.500") {
		t.Errorf("unexpected metrics output\n%s", out.String())
	}
}

func TestSimpleCommands(t *testing.T) {
	testEnv(t)

	tests := []struct {
		cmd  string
		want string
	}{
		{"grammar", "compound_piece"},
		{"checks", "oxfordComma"},
		{"env", config.EnvRepo},
		{"bash", "complete -F _strunk_complete strunk"},
		{"version", "strunk version"},
		{"help", "Commands:"},
	}

	for _, tt := range tests {
		ui, out, _ := testUI()
		if err := runCommand(context.Background(), tt.cmd, nil, ui); err != nil {
			t.Errorf("%s: unexpected error: %v", tt.cmd, err)
			continue
		}
		if !strings.Contains(out.String(), tt.want) {
			t.Errorf("%s: expected %q in\n%s", tt.cmd, tt.want, out.String())
		}
	}
}

func TestHelpCommand(t *testing.T) {
	testEnv(t)

	ui, out, _ := testUI()
	err := runCommand(context.Background(), "help", []string{"check"}, ui)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if !strings.Contains(out.String(), "-save") {
		t.Errorf("expected the check usage, got\n%s", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	ui, _, _ := testUI()
	if err := runCommand(context.Background(), "nope", nil, ui); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestParseMainArgs(t *testing.T) {
	ui, _, errb := testUI()

	cmd, args, err := parseMainArgs([]string{"check", "-f", "errs", "a.txt"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != "check" || len(args) != 3 {
		t.Errorf("unexpected command %s %v", cmd, args)
	}

	if _, _, err := parseMainArgs(nil, ui); err == nil {
		t.Errorf("expected an error without a command")
	}
	if !strings.Contains(errb.String(), "Usage:") {
		t.Errorf("expected the usage on stderr")
	}
}

func TestGetCompletions(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"strunk", "ch"}, []string{"check", "checks"}},
		{[]string{"strunk", "check", "-disable", "oxf"}, []string{"oxfordComma"}},
		{[]string{"strunk", "help", "se"}, []string{"serve"}},
		{[]string{"strunk", "check", "a.txt"}, nil},
	}

	for _, tt := range tests {
		got := getCompletions(tt.args)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("%v: expected %v, got %v", tt.args, tt.want, got)
		}
	}
}

func TestPool(t *testing.T) {
	dir := t.TempDir()
	p := &Pool{}

	if err := p.Close(); err != nil {
		t.Fatalf("closing an unopened pool: %v", err)
	}

	a, err := p.Open(filepath.Join(dir, "a.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := p.Open(filepath.Join(dir, "a.db"))
	if err != nil || a != b {
		t.Fatalf("expected the same pool, got %v", err)
	}

	if _, err := p.Open(filepath.Join(dir, "b.db")); err == nil {
		t.Errorf("expected an error for a second database")
	}

	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := p.Open(filepath.Join(dir, "b.db")); err != nil {
		t.Errorf("expected a closed pool to open again: %v", err)
	}
	p.Close()
}

func TestNewDocRepository(t *testing.T) {
	dir := t.TempDir()
	p := &Pool{}
	defer p.Close()

	if _, err := NewDocRepository(p, filepath.Join(dir, "missing"), false, nil); err == nil {
		t.Errorf("expected an error for a missing repository")
	}

	if _, err := NewDocRepository(p, filepath.Join(dir, "reports"), true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(filepath.Join(dir, "reports")); err != nil || !info.IsDir() {
		t.Errorf("expected a report directory")
	}

	if _, err := NewDocRepository(p, filepath.Join(dir, "reports.db"), true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(filepath.Join(dir, "reports.db")); err != nil || info.IsDir() {
		t.Errorf("expected a SQLite file")
	}
}
