package query

import (
	"encoding/json"
	"testing"

	"github.com/dive2Pro/roam-types/pkg/schema"
)

func TestShapes_Registered(t *testing.T) {
	for _, name := range []string{ShapeQueryResult, ShapeEntityRef, ShapePullResult} {
		if schema.Lookup(name) == nil {
			t.Errorf("shape %q not registered", name)
		}
	}
}

func TestShapeQueryResult_OpenRecord(t *testing.T) {
	s := schema.Lookup(ShapeQueryResult)
	var doc map[string]any
	if err := json.Unmarshal([]byte(`{":block/uid": "abc", ":vendor/extra": 1}`), &doc); err != nil {
		t.Fatal(err)
	}
	if err := s.Check(doc); err != nil {
		t.Errorf("open result shape should admit extra fields: %v", err)
	}
}

func TestShapePullResult_RequiredAndEnums(t *testing.T) {
	s := schema.Lookup(ShapePullResult)

	ok := map[string]any{":db/id": float64(1), ":block/uid": "abc", ":block/text-align": "right"}
	if err := s.Check(ok); err != nil {
		t.Errorf("valid pull result rejected: %v", err)
	}

	missing := map[string]any{":db/id": float64(1)}
	if err := s.Check(missing); err == nil {
		t.Error("pull result without uid should fail")
	}

	badEnum := map[string]any{":db/id": float64(1), ":block/uid": "abc", ":block/text-align": "middle"}
	if err := s.Check(badEnum); err == nil {
		t.Error("out-of-domain text-align should fail")
	}
}
