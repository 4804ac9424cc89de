package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const sampleTree = `{
  "nodes": {
    "books":    {"id": "books", "title": "Books", "children": ["fiction", "poetry"]},
    "fiction":  {"id": "fiction", "title": "Fiction", "children": []},
    "poetry":   {"id": "poetry", "title": "Poetry & Verse", "children": []},
    "audio":    {"id": "audio", "title": "Audio", "children": []},
    "clothing": {"id": "clothing", "title": "Clothing", "children": ["ghost"]}
  },
  "root_category_ids": ["books", "audio", "clothing"]
}`

// runInDir runs testFunc with dir as the working directory.
func runInDir(t *testing.T, dir string, testFunc func()) {
	t.Helper()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	defer func() {
		if err := os.Chdir(oldDir); err != nil {
			t.Errorf("failed to restore dir: %v", err)
		}
	}()
	testFunc()
}

// newProjectDir creates a temp dir holding categories_tree.json.
func newProjectDir(t *testing.T, tree string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "categories_tree.json"), []byte(tree), 0o600); err != nil {
		t.Fatalf("failed to write tree: %v", err)
	}
	return dir
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// readFile returns the contents of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// writeString writes content to path in the working directory.
func writeString(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
