package checker

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dive2Pro/roam-types/internal/apperr"
	"github.com/dive2Pro/roam-types/internal/testutil"
)

const goodCreate = `{
  "shape": "write.create-block",
  "value": {
    "location": {"parent-uid": "p1", "order": "last"},
    "block": {"string": "hello"}
  }
}`

const badCreate = `{
  "shape": "write.create-block",
  "value": {
    "block": {"string": "hello"}
  }
}`

func TestCheckDocument_UnknownShape(t *testing.T) {
	err := CheckDocument(&Document{Shape: "no.such-shape", Value: map[string]any{}})
	if !errors.Is(err, apperr.ErrUnknownShape) {
		t.Fatalf("err = %v, want ErrUnknownShape", err)
	}
}

func TestCheckFile_PassAndFail(t *testing.T) {
	root := testutil.FixtureDir(t, map[string]string{
		"good.json": goodCreate,
		"bad.json":  badCreate,
	})

	good := CheckFile(root, filepath.Join(root, "good.json"))
	if !good.Passed {
		t.Errorf("good fixture failed: %s", good.Detail)
	}
	if good.Shape != "write.create-block" {
		t.Errorf("shape = %q", good.Shape)
	}

	bad := CheckFile(root, filepath.Join(root, "bad.json"))
	if bad.Passed {
		t.Error("fixture without location should fail")
	}
}

func TestCheckFile_BadJSON(t *testing.T) {
	root := testutil.FixtureDir(t, map[string]string{
		"broken.json": `{not json`,
	})
	res := CheckFile(root, filepath.Join(root, "broken.json"))
	if res.Passed {
		t.Error("unparseable document should fail")
	}
}

func TestLoadFile_MissingShapeName(t *testing.T) {
	root := testutil.FixtureDir(t, map[string]string{
		"anon.json": `{"value": {}}`,
	})
	_, err := LoadFile(filepath.Join(root, "anon.json"))
	if !errors.Is(err, apperr.ErrBadDocument) {
		t.Fatalf("err = %v, want ErrBadDocument", err)
	}
}

func TestRun_WalksSubdirs(t *testing.T) {
	root := testutil.FixtureDir(t, map[string]string{
		"write/good.json":  goodCreate,
		"write/bad.json":   badCreate,
		"notes/readme.txt": "not a fixture",
	})

	results, err := Run(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	passed, failed := Summary(results)
	if passed != 1 || failed != 1 {
		t.Errorf("summary = %d/%d, want 1/1", passed, failed)
	}
}

func TestCheckDocument_UnionFixture(t *testing.T) {
	doc := &Document{
		Shape: "extension.setting-action",
		Value: map[string]any{"type": "select", "items": []any{"A", "B"}},
	}
	if err := CheckDocument(doc); err != nil {
		t.Errorf("select action rejected: %v", err)
	}

	doc.Value = map[string]any{"type": "button"}
	err := CheckDocument(doc)
	if !errors.Is(err, apperr.ErrConformance) {
		t.Fatalf("err = %v, want ErrConformance", err)
	}
}
