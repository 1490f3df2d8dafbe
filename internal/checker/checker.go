// Package checker runs recorded payload documents against the shape
// registry. A fixture directory holds JSON documents of the form
// {"shape": "<name>", "value": <payload>}; each is checked for
// structural conformance with the named shape.
package checker

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dive2Pro/roam-types/internal/apperr"
	"github.com/dive2Pro/roam-types/pkg/schema"
)

// Document is one recorded payload paired with the shape it claims to
// satisfy.
type Document struct {
	Shape string `json:"shape"`
	Value any    `json:"value"`
}

// Result is the outcome of checking one document.
type Result struct {
	Path   string `json:"path"`
	Shape  string `json:"shape"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// LoadFile reads and decodes one fixture document.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperr.ErrBadDocument, path, err)
	}
	if doc.Shape == "" {
		return nil, fmt.Errorf("%w: %s: missing shape name", apperr.ErrBadDocument, path)
	}
	return &doc, nil
}

// CheckDocument checks a decoded document against its named shape.
func CheckDocument(doc *Document) error {
	s := schema.Lookup(doc.Shape)
	if s == nil {
		return fmt.Errorf("%w: %q", apperr.ErrUnknownShape, doc.Shape)
	}
	if err := s.Check(doc.Value); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrConformance, err)
	}
	return nil
}

// CheckFile loads one fixture file and checks it, folding any load or
// conformance error into the result.
func CheckFile(root, path string) Result {
	rel := path
	if r, err := filepath.Rel(root, path); err == nil {
		rel = r
	}
	doc, err := LoadFile(path)
	if err != nil {
		return Result{Path: rel, Passed: false, Detail: err.Error()}
	}
	res := Result{Path: rel, Shape: doc.Shape, Passed: true}
	if err := CheckDocument(doc); err != nil {
		res.Passed = false
		res.Detail = err.Error()
	}
	return res
}

// Run walks root and checks every .json fixture, returning one result
// per document in walk order.
func Run(root string) ([]Result, error) {
	var results []Result
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		results = append(results, CheckFile(root, path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Summary counts passed and failed results.
func Summary(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
