package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestShowCommand(t *testing.T) {
	dir := newProjectDir(t, sampleTree)

	runInDir(t, dir, func() {
		stdout, _, err := execute(t, "show")
		if err != nil {
			t.Fatalf("show failed: %v", err)
		}

		order := []string{"Audio (audio)", "Books (books)", "Fiction (fiction)", "Poetry & Verse (poetry)", "Clothing (clothing)"}
		last := -1
		for _, label := range order {
			idx := strings.Index(stdout, label)
			if idx < 0 {
				t.Fatalf("output missing %q:\n%s", label, stdout)
			}
			if idx < last {
				t.Errorf("%q out of order:\n%s", label, stdout)
			}
			last = idx
		}
		if strings.Contains(stdout, "ghost") {
			t.Errorf("undefined id should be skipped:\n%s", stdout)
		}
	})
}

func TestShowCommand_JSON(t *testing.T) {
	dir := newProjectDir(t, sampleTree)

	runInDir(t, dir, func() {
		stdout, _, err := execute(t, "show", "--json")
		if err != nil {
			t.Fatalf("show failed: %v", err)
		}

		var result struct {
			Roots []struct {
				ID       string `json:"id"`
				Title    string `json:"title"`
				Children []struct {
					ID string `json:"id"`
				} `json:"children"`
			} `json:"roots"`
			Count int `json:"count"`
		}
		if err := json.Unmarshal([]byte(stdout), &result); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, stdout)
		}

		if result.Count != 5 {
			t.Errorf("count = %d, want 5", result.Count)
		}
		if len(result.Roots) != 3 || result.Roots[1].ID != "books" {
			t.Fatalf("roots = %+v", result.Roots)
		}
		if len(result.Roots[1].Children) != 2 || result.Roots[1].Children[0].ID != "fiction" {
			t.Errorf("books children = %+v", result.Roots[1].Children)
		}
	})
}

func TestShowCommand_Empty(t *testing.T) {
	dir := newProjectDir(t, `{"nodes": {}, "root_category_ids": []}`)

	runInDir(t, dir, func() {
		stdout, _, err := execute(t, "show")
		if err != nil {
			t.Fatalf("show failed: %v", err)
		}
		if strings.TrimSpace(stdout) != "No categories." {
			t.Errorf("stdout = %q", stdout)
		}
	})
}
