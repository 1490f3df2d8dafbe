// Package testutil provides shared test helpers for setting up fixture directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	// Populate the shape registry for tests.
	_ "github.com/dive2Pro/roam-types/pkg/extension"
	_ "github.com/dive2Pro/roam-types/pkg/query"
	_ "github.com/dive2Pro/roam-types/pkg/write"
)

// FixtureDir creates a temporary fixture directory populated with the
// given documents (relative path -> raw JSON content).
func FixtureDir(t *testing.T, docs map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range docs {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// WriteFixture writes (or overwrites) one document in an existing
// fixture directory.
func WriteFixture(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
