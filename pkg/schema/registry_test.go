package schema

import (
	"strings"
	"testing"
)

func TestRegister_Duplicate(t *testing.T) {
	s := &Shape{Name: "test.dup", Fields: []Field{{Name: "a", Kind: KindString}}}
	if err := Register(s); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := Register(&Shape{Name: "test.dup"})
	if err == nil {
		t.Fatal("duplicate register should fail")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRegister_Nil(t *testing.T) {
	if err := Register(nil); err == nil {
		t.Fatal("nil shape should fail")
	}
}

func TestRegister_Unnamed(t *testing.T) {
	if err := Register(&Shape{}); err == nil {
		t.Fatal("unnamed shape should fail")
	}
}

func TestRegister_DuplicateVariantTag(t *testing.T) {
	err := Register(&Shape{
		Name:         "test.dup-tag",
		Discriminant: "type",
		Variants:     []Variant{{Tag: "a"}, {Tag: "a"}},
	})
	if err == nil {
		t.Fatal("duplicate variant tag should fail")
	}
}

func TestRegister_VariantsWithoutDiscriminant(t *testing.T) {
	err := Register(&Shape{
		Name:     "test.no-disc",
		Variants: []Variant{{Tag: "a"}},
	})
	if err == nil {
		t.Fatal("variants without discriminant should fail")
	}
}

func TestLookup(t *testing.T) {
	s := &Shape{Name: "test.lookup", Fields: []Field{{Name: "a", Kind: KindString}}}
	if err := Register(s); err != nil {
		t.Fatal(err)
	}
	if got := Lookup("test.lookup"); got != s {
		t.Errorf("Lookup returned %v, want the registered shape", got)
	}
	if got := Lookup("test.missing"); got != nil {
		t.Errorf("Lookup for unknown name returned %v, want nil", got)
	}
}

func TestAll_Sorted(t *testing.T) {
	if err := Register(&Shape{Name: "test.zz"}); err != nil {
		t.Fatal(err)
	}
	if err := Register(&Shape{Name: "test.aa"}); err != nil {
		t.Fatal(err)
	}
	shapes := All()
	if len(shapes) < 2 {
		t.Fatalf("expected at least 2 shapes, got %d", len(shapes))
	}
	for i := 1; i < len(shapes); i++ {
		if shapes[i-1].Name >= shapes[i].Name {
			t.Fatalf("shapes not sorted: %q before %q", shapes[i-1].Name, shapes[i].Name)
		}
	}
}
