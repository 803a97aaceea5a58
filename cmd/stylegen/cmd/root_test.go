package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderSinglePersona(t *testing.T) {
	out, err := run(t, "render", "Designer")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, "/* Designer (body class theme-designer) */") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "--persona-primary: #FF6B35;") {
		t.Fatalf("missing designer primary color:\n%s", out)
	}
	if strings.Contains(out, "theme-developer") {
		t.Fatalf("only the requested persona should be rendered")
	}
}

func TestRenderToDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "css")
	if _, err := run(t, "render", "--out", dir); err != nil {
		t.Fatalf("render error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 6 {
		t.Fatalf("wrote %d files, want 6", len(entries))
	}
	css, err := os.ReadFile(filepath.Join(dir, "student.css"))
	if err != nil {
		t.Fatalf("read student.css: %v", err)
	}
	if !strings.HasPrefix(string(css), ":root {") {
		t.Fatalf("student.css should start with the variable block:\n%s", css)
	}
}

func TestRenderUnknownPersona(t *testing.T) {
	if _, err := run(t, "render", "wizard"); err == nil {
		t.Fatal("expected error for unknown persona")
	}
}

func TestPrompt(t *testing.T) {
	out, err := run(t, "prompt", "manager")
	if err != nil {
		t.Fatalf("prompt error = %v", err)
	}
	if !strings.Contains(out, "Manager") {
		t.Fatalf("prompt should name the persona:\n%s", out)
	}

	if _, err := run(t, "prompt"); err == nil {
		t.Fatal("prompt without a persona should fail")
	}
}

func TestListJSON(t *testing.T) {
	out, err := run(t, "list", "--json")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	var entries []listEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode list output: %v\n%s", err, out)
	}
	if len(entries) != 6 {
		t.Fatalf("entries = %d, want 6", len(entries))
	}
	dark := 0
	for _, entry := range entries {
		if entry.Dark {
			dark++
		}
	}
	if dark != 2 {
		t.Fatalf("dark personas = %d, want 2", dark)
	}
}

func TestListTable(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.HasPrefix(out, "ID") || !strings.Contains(out, "entrepreneur") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := run(t, "--log-level", "loud", "list"); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}
