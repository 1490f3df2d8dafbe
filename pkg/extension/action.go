// Package extension describes the extension-loading surface of the Roam
// host: the per-extension settings store and panel builder, UI
// registration (command palette, context menus, component mounts), and
// the read-only environment descriptors handed to a loaded extension.
package extension

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Action is the behavior descriptor of one settings panel entry. It is a
// discriminated union keyed by a literal "type" tag; each variant
// requires its own companion fields and forbids the others'.
type Action interface {
	// ActionType returns the variant's literal tag value.
	ActionType() string
	// Validate enforces the variant's companion-field requirements.
	Validate() error
}

// Action tag values.
const (
	ActionTypeSwitch    = "switch"
	ActionTypeInput     = "input"
	ActionTypeText      = "text"
	ActionTypeNumber    = "number"
	ActionTypeSelect    = "select"
	ActionTypeButton    = "button"
	ActionTypeComponent = "component"
)

// requiredFunc rejects nil function fields. ozzo treats func values as
// non-empty regardless of nilness, so Required alone cannot express this.
func requiredFunc(value any) error {
	v := reflect.ValueOf(value)
	if !v.IsValid() || (v.Kind() == reflect.Func && v.IsNil()) {
		return errors.New("cannot be blank")
	}
	return nil
}

// SwitchAction renders a toggle bound to a boolean setting.
type SwitchAction struct {
	OnChange func(value bool) `json:"-"`
}

// ActionType returns "switch".
func (SwitchAction) ActionType() string { return ActionTypeSwitch }

// Validate always passes; a switch has no required companions.
func (SwitchAction) Validate() error { return nil }

// InputAction renders a single-line free text field.
type InputAction struct {
	Placeholder string             `json:"placeholder,omitempty"`
	OnChange    func(value string) `json:"-"`
}

// ActionType returns "input".
func (InputAction) ActionType() string { return ActionTypeInput }

// Validate always passes; placeholder and handler are optional.
func (InputAction) Validate() error { return nil }

// TextAction renders a multi-line text area.
type TextAction struct {
	Placeholder string             `json:"placeholder,omitempty"`
	OnChange    func(value string) `json:"-"`
}

// ActionType returns "text".
func (TextAction) ActionType() string { return ActionTypeText }

// Validate always passes.
func (TextAction) Validate() error { return nil }

// NumberAction renders a numeric field.
type NumberAction struct {
	OnChange func(value float64) `json:"-"`
}

// ActionType returns "number".
func (NumberAction) ActionType() string { return ActionTypeNumber }

// Validate always passes.
func (NumberAction) Validate() error { return nil }

// SelectAction renders a single-select over a fixed item list. Items is
// required and must be non-empty.
type SelectAction struct {
	Items    []string           `json:"items"`
	OnChange func(value string) `json:"-"`
}

// ActionType returns "select".
func (SelectAction) ActionType() string { return ActionTypeSelect }

// Validate enforces the required item list.
func (a SelectAction) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Items, validation.Required, validation.Length(1, 0)),
	)
}

// ButtonAction renders a button. Both the display text and the click
// handler are required.
type ButtonAction struct {
	Content string `json:"content"`
	OnClick func() `json:"-"`
}

// ActionType returns "button".
func (ButtonAction) ActionType() string { return ActionTypeButton }

// Validate enforces the required content and handler.
func (a ButtonAction) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Content, validation.Required),
		validation.Field(&a.OnClick, validation.By(requiredFunc)),
	)
}

// ComponentAction mounts a caller-supplied custom component into the
// panel entry. The component handle is required and opaque to this
// contract.
type ComponentAction struct {
	Component Component `json:"-"`
}

// ActionType returns "component".
func (ComponentAction) ActionType() string { return ActionTypeComponent }

// Validate enforces the required component handle.
func (a ComponentAction) Validate() error {
	if a.Component == nil {
		return errors.New("component: cannot be blank")
	}
	return nil
}

// MarshalAction emits the variant's wire form with the literal "type"
// tag merged in.
func MarshalAction(a Action) ([]byte, error) {
	if a == nil {
		return nil, errors.New("action: cannot marshal nil")
	}
	body, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, err
	}
	obj["type"] = a.ActionType()
	return json.Marshal(obj)
}

// UnmarshalAction decodes an action document into the variant selected
// by its "type" tag. Unknown tags are rejected, and so are fields that
// belong to a different variant: each variant decodes strictly against
// its own field set.
func UnmarshalAction(data []byte) (Action, error) {
	var head struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	if head.Type == nil {
		return nil, errors.New("action: missing type tag")
	}

	var target Action
	switch *head.Type {
	case ActionTypeSwitch:
		target = &SwitchAction{}
	case ActionTypeInput:
		target = &InputAction{}
	case ActionTypeText:
		target = &TextAction{}
	case ActionTypeNumber:
		target = &NumberAction{}
	case ActionTypeSelect:
		target = &SelectAction{}
	case ActionTypeButton:
		target = &ButtonAction{}
	case ActionTypeComponent:
		target = &ComponentAction{}
	default:
		return nil, fmt.Errorf("action: unknown type %q", *head.Type)
	}
	if err := decodeVariant(data, target); err != nil {
		return nil, err
	}
	return target, nil
}

// decodeVariant strictly decodes into the variant struct after dropping
// the discriminant, so foreign fields surface as errors.
func decodeVariant(data []byte, dst any) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	delete(obj, "type")
	stripped, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(stripped))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
