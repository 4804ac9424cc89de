package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/catdocs/internal/output"
)

func TestGenerateCommand(t *testing.T) {
	dir := newProjectDir(t, sampleTree)

	runInDir(t, dir, func() {
		if _, _, err := execute(t, "generate"); err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		page := readFile(t, "categories.mdx")

		wantPrefix := "---\ntitle: Categories\ndescription: Understanding categories on Channel3\n---\n" +
			"Browse the full category hierarchy. Each section expands to reveal subcategories.\n\n" +
			"<AccordionGroup>\n<Accordion title=\"Audio (audio)\">\n"
		if !strings.HasPrefix(page, wantPrefix) {
			t.Errorf("page prefix mismatch:\n%s", page)
		}
		if !strings.Contains(page, `<Accordion title="Poetry &amp; Verse (poetry)">`) {
			t.Errorf("title not escaped:\n%s", page)
		}
		if strings.Contains(page, "ghost") {
			t.Errorf("undefined id should not appear:\n%s", page)
		}
	})
}

func TestGenerateCommand_Idempotent(t *testing.T) {
	dir := newProjectDir(t, sampleTree)

	runInDir(t, dir, func() {
		var pages []string
		for range 3 {
			if _, _, err := execute(t, "generate"); err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			pages = append(pages, readFile(t, "categories.mdx"))
		}
		if pages[0] != pages[1] || pages[1] != pages[2] {
			t.Error("repeated runs should produce identical pages")
		}
	})
}

func TestGenerateCommand_Flags(t *testing.T) {
	dir := t.TempDir()
	treePath := filepath.Join(newProjectDir(t, sampleTree), "categories_tree.json")
	outPath := filepath.Join(dir, "out.mdx")

	stdout, _, err := execute(t, "generate", "--tree", treePath, "--output", outPath)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(stdout, outPath) {
		t.Errorf("stdout = %q, want it to name %s", stdout, outPath)
	}
	if page := readFile(t, outPath); !strings.Contains(page, "Books (books)") {
		t.Errorf("unexpected page:\n%s", page)
	}
}

func TestGenerateCommand_JSON(t *testing.T) {
	dir := newProjectDir(t, sampleTree)

	runInDir(t, dir, func() {
		stdout, _, err := execute(t, "generate", "--json")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		var result map[string]any
		if err := json.Unmarshal([]byte(stdout), &result); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, stdout)
		}
		if path, _ := result["path"].(string); !strings.HasSuffix(path, "categories.mdx") {
			t.Errorf("path = %v", result["path"])
		}
		if rendered, _ := result["rendered"].(float64); int(rendered) != 5 {
			t.Errorf("rendered = %v, want 5", result["rendered"])
		}
		missing, _ := result["missing_ids"].([]any)
		if len(missing) != 1 || missing[0] != "ghost" {
			t.Errorf("missing_ids = %v, want [ghost]", result["missing_ids"])
		}
	})
}

func TestGenerateCommand_Strict(t *testing.T) {
	dir := newProjectDir(t, sampleTree)

	runInDir(t, dir, func() {
		_, stderr, err := execute(t, "generate", "--strict")
		if output.GetExitCode(err) != output.ExitUserError {
			t.Fatalf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
		}
		if !strings.Contains(stderr, `"ghost"`) {
			t.Errorf("stderr should name the undefined id: %q", stderr)
		}
	})
}

func TestGenerateCommand_MalformedTree(t *testing.T) {
	dir := newProjectDir(t, `{"nodes": [`)

	runInDir(t, dir, func() {
		_, stderr, err := execute(t, "generate")
		if output.GetExitCode(err) != output.ExitUserError {
			t.Fatalf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
		}
		if !strings.Contains(stderr, "invalid category tree") {
			t.Errorf("stderr = %q", stderr)
		}
	})
}
