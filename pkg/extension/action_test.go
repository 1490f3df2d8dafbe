package extension

import (
	"strings"
	"testing"
)

func TestUnmarshalAction_Variants(t *testing.T) {
	cases := []struct {
		name string
		in   string
		tag  string
	}{
		{"switch", `{"type": "switch"}`, ActionTypeSwitch},
		{"input", `{"type": "input", "placeholder": "API key"}`, ActionTypeInput},
		{"text", `{"type": "text"}`, ActionTypeText},
		{"number", `{"type": "number"}`, ActionTypeNumber},
		{"select", `{"type": "select", "items": ["A", "B"]}`, ActionTypeSelect},
		{"button", `{"type": "button", "content": "Sync now"}`, ActionTypeButton},
		{"component", `{"type": "component"}`, ActionTypeComponent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := UnmarshalAction([]byte(tc.in))
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if a.ActionType() != tc.tag {
				t.Errorf("tag = %q, want %q", a.ActionType(), tc.tag)
			}
		})
	}
}

func TestUnmarshalAction_UnknownTag(t *testing.T) {
	_, err := UnmarshalAction([]byte(`{"type": "slider"}`))
	if err == nil {
		t.Fatal("unknown tag should fail")
	}
	if !strings.Contains(err.Error(), "slider") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnmarshalAction_MissingTag(t *testing.T) {
	if _, err := UnmarshalAction([]byte(`{"items": ["A"]}`)); err == nil {
		t.Fatal("missing tag should fail")
	}
}

func TestUnmarshalAction_ForeignVariantField(t *testing.T) {
	// items belongs to select; under the button tag it must be rejected.
	_, err := UnmarshalAction([]byte(`{"type": "button", "content": "Go", "items": ["A"]}`))
	if err == nil {
		t.Fatal("foreign variant field should fail")
	}
}

func TestSelectAction_Validate(t *testing.T) {
	if err := (SelectAction{Items: []string{"A", "B"}}).Validate(); err != nil {
		t.Errorf("select with items rejected: %v", err)
	}
	if err := (SelectAction{}).Validate(); err == nil {
		t.Error("select without items should fail")
	}
}

func TestButtonAction_Validate(t *testing.T) {
	ok := ButtonAction{Content: "Sync now", OnClick: func() {}}
	if err := ok.Validate(); err != nil {
		t.Errorf("complete button rejected: %v", err)
	}
	if err := (ButtonAction{OnClick: func() {}}).Validate(); err == nil {
		t.Error("button without content should fail")
	}
	if err := (ButtonAction{Content: "Sync now"}).Validate(); err == nil {
		t.Error("button without click handler should fail")
	}
}

func TestComponentAction_Validate(t *testing.T) {
	if err := (ComponentAction{Component: struct{}{}}).Validate(); err != nil {
		t.Errorf("component with handle rejected: %v", err)
	}
	if err := (ComponentAction{}).Validate(); err == nil {
		t.Error("component without handle should fail")
	}
}

func TestMarshalAction_TagMergedIn(t *testing.T) {
	out, err := MarshalAction(SelectAction{Items: []string{"A"}})
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, `"type":"select"`) {
		t.Errorf("missing tag in %s", s)
	}
	if !strings.Contains(s, `"items":["A"]`) {
		t.Errorf("missing items in %s", s)
	}
}

func TestMarshalAction_Nil(t *testing.T) {
	if _, err := MarshalAction(nil); err == nil {
		t.Fatal("nil action should fail")
	}
}
