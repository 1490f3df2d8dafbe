package query

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestQueryResult_TypedFields(t *testing.T) {
	in := `{":db/id": 5, ":block/uid": "abc", ":block/string": "hello", ":block/open": true}`
	var r QueryResult
	if err := json.Unmarshal([]byte(in), &r); err != nil {
		t.Fatal(err)
	}
	if r.DBID == nil || *r.DBID != 5 {
		t.Errorf("db id = %v, want 5", r.DBID)
	}
	if r.UID != "abc" || r.String != "hello" {
		t.Errorf("uid/string = %q/%q", r.UID, r.String)
	}
	if r.Open == nil || !*r.Open {
		t.Errorf("open = %v, want true", r.Open)
	}
	if len(r.Extra) != 0 {
		t.Errorf("no extra fields expected, got %v", r.Extra)
	}
}

func TestQueryResult_ExtraFields(t *testing.T) {
	in := `{":block/uid": "abc", ":block/props": {"image-size": 1}, ":block/refs": [{":db/id": 9}]}`
	var r QueryResult
	if err := json.Unmarshal([]byte(in), &r); err != nil {
		t.Fatal(err)
	}
	if r.UID != "abc" {
		t.Errorf("uid = %q", r.UID)
	}
	if len(r.Extra) != 2 {
		t.Fatalf("extra = %v, want 2 entries", r.Extra)
	}
	if _, ok := r.Extra[":block/props"]; !ok {
		t.Error("missing :block/props in extra")
	}
}

func TestQueryResult_MarshalMergesExtra(t *testing.T) {
	r := QueryResult{
		UID:   "abc",
		Extra: map[string]any{":block/props": map[string]any{"k": "v"}},
	}
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, `":block/uid":"abc"`) {
		t.Errorf("typed field missing in %s", s)
	}
	if !strings.Contains(s, `":block/props"`) {
		t.Errorf("extra field missing in %s", s)
	}
}

func TestQueryResult_WireRoundTrip(t *testing.T) {
	in := `{":block/uid": "abc", ":block/children": [{":db/id": 1}, {":db/id": 2}], ":custom/field": "x"}`
	var r QueryResult
	if err := json.Unmarshal([]byte(in), &r); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	var again QueryResult
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatal(err)
	}
	if len(again.Children) != 2 || again.Children[1].DBID != 2 {
		t.Errorf("children = %v", again.Children)
	}
	if again.Extra[":custom/field"] != "x" {
		t.Errorf("extra = %v", again.Extra)
	}
}

func TestPullResult_PageAndBlock(t *testing.T) {
	page := `{":db/id": 1, ":block/uid": "p1", ":node/title": "Daily Notes"}`
	var p PullResult
	if err := json.Unmarshal([]byte(page), &p); err != nil {
		t.Fatal(err)
	}
	if !p.IsPage() {
		t.Error("record with title should be a page")
	}

	block := `{":db/id": 2, ":block/uid": "b1", ":block/string": "todo", ":block/text-align": "center"}`
	var b PullResult
	if err := json.Unmarshal([]byte(block), &b); err != nil {
		t.Fatal(err)
	}
	if b.IsPage() {
		t.Error("record without title should be a block")
	}
	if b.TextAlign != TextAlignCenter {
		t.Errorf("text-align = %q", b.TextAlign)
	}
}

func TestPullResult_EntityID(t *testing.T) {
	r := PullResult{DBID: 9, UID: "abc"}
	id := r.EntityID()
	attr, value, ok := id.Lookup()
	if !ok || attr != ":block/uid" || value != "abc" {
		t.Errorf("EntityID() = %v, want uid lookup", id)
	}

	noUID := PullResult{DBID: 9}
	if dbid, ok := noUID.EntityID().DBID(); !ok || dbid != 9 {
		t.Errorf("EntityID() without uid = %v, want db id", noUID.EntityID())
	}
}

func TestEnums_Validate(t *testing.T) {
	if err := TextAlign("center").Validate(); err != nil {
		t.Errorf("center should pass: %v", err)
	}
	if err := TextAlign("middle").Validate(); err == nil {
		t.Error("middle should fail")
	}
	if err := ViewType("numbered").Validate(); err != nil {
		t.Errorf("numbered should pass: %v", err)
	}
	if err := ViewType("grid").Validate(); err == nil {
		t.Error("grid should fail")
	}
	if err := Heading(3).Validate(); err != nil {
		t.Errorf("heading 3 should pass: %v", err)
	}
	if err := Heading(4).Validate(); err == nil {
		t.Error("heading 4 should fail")
	}
}
