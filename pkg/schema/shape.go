// Package schema is a compile-time-populated registry of the shapes the
// Roam host exchanges with extensions. Each documented operation of the
// host API registers the shape of its parameter and result objects here,
// and Shape.Check gives runtime structural conformance for JSON payloads
// crossing the host boundary, where no static checker can run.
package schema

import (
	"fmt"
	"sort"
)

// Kind classifies a field value as it appears in a decoded JSON document.
type Kind int

// Field kinds.
const (
	KindAny Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
	// KindCallback marks host-invoked function fields. They never cross
	// the JSON boundary, so Check skips them; they are recorded so the
	// registry stays a complete description of each shape.
	KindCallback
)

var kindNames = map[Kind]string{
	KindAny:      "any",
	KindString:   "string",
	KindNumber:   "number",
	KindBool:     "bool",
	KindArray:    "array",
	KindObject:   "object",
	KindCallback: "callback",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText renders the kind as its lowercase name for JSON/YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	name := string(text)
	for kind, s := range kindNames {
		if s == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("schema: unknown kind %q", name)
}

// Delivery records whether the host answers an operation synchronously or
// through a deferred result. The registry only records this; enforcing an
// await point at call sites belongs to the consumer.
type Delivery int

// Delivery modes.
const (
	DeliverySync Delivery = iota
	DeliveryDeferred
)

func (d Delivery) String() string {
	if d == DeliveryDeferred {
		return "deferred"
	}
	return "sync"
}

// MarshalText renders the delivery mode for JSON/YAML output.
func (d Delivery) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a delivery mode produced by MarshalText.
func (d *Delivery) UnmarshalText(text []byte) error {
	switch string(text) {
	case "sync":
		*d = DeliverySync
	case "deferred":
		*d = DeliveryDeferred
	default:
		return fmt.Errorf("schema: unknown delivery mode %q", string(text))
	}
	return nil
}

// Field describes one named field of a shape.
type Field struct {
	Name     string   `json:"name"`
	Kind     Kind     `json:"kind"`
	Required bool     `json:"required,omitempty"`
	// Enum restricts a string field to a fixed literal domain.
	Enum []string `json:"enum,omitempty"`
	Doc  string   `json:"doc,omitempty"`
}

// Variant is one alternative of a discriminated union, selected when the
// discriminant field carries Tag.
type Variant struct {
	Tag    string  `json:"tag"`
	Fields []Field `json:"fields,omitempty"`
	Doc    string  `json:"doc,omitempty"`
}

// Shape describes one documented parameter or result object of the host
// API. A shape with a non-empty Discriminant is a tagged union: Fields
// are common to every variant and Variants carries the per-tag rest.
type Shape struct {
	Name     string   `json:"name"`
	Doc      string   `json:"doc,omitempty"`
	Delivery Delivery `json:"delivery"`
	// Open admits fields beyond the declared set. Result shapes carrying
	// the host's catch-all are open; parameter shapes are closed.
	Open         bool      `json:"open,omitempty"`
	Fields       []Field   `json:"fields,omitempty"`
	Discriminant string    `json:"discriminant,omitempty"`
	Variants     []Variant `json:"variants,omitempty"`
	// Model is an optional Go value whose type mirrors this shape; it is
	// used for JSON Schema reflection and never instantiated.
	Model any `json:"-"`
}

// IsUnion reports whether the shape is a discriminated union.
func (s *Shape) IsUnion() bool {
	return s.Discriminant != ""
}

// validate checks internal consistency before registration.
func (s *Shape) validate() error {
	if s.Name == "" {
		return fmt.Errorf("schema: shape must have a name")
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema: shape %q has an unnamed field", s.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("schema: shape %q declares field %q twice", s.Name, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	if s.Discriminant == "" {
		if len(s.Variants) > 0 {
			return fmt.Errorf("schema: shape %q has variants but no discriminant", s.Name)
		}
		return nil
	}
	if len(s.Variants) == 0 {
		return fmt.Errorf("schema: union %q has no variants", s.Name)
	}
	tags := make(map[string]struct{}, len(s.Variants))
	for _, v := range s.Variants {
		if v.Tag == "" {
			return fmt.Errorf("schema: union %q has a variant with an empty tag", s.Name)
		}
		if _, dup := tags[v.Tag]; dup {
			return fmt.Errorf("schema: union %q declares tag %q twice", s.Name, v.Tag)
		}
		tags[v.Tag] = struct{}{}
	}
	return nil
}

// Check verifies that a decoded JSON value structurally conforms to the
// shape: required fields present, enumerated fields within their literal
// domain, undeclared fields rejected unless the shape is open, and for
// unions exactly the variant selected by the discriminant admitted.
func (s *Shape) Check(value any) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("shape %s: expected an object, got %T", s.Name, value)
	}
	if s.IsUnion() {
		return s.checkUnion(obj)
	}
	if err := checkFields(s.Name, s.Fields, obj); err != nil {
		return err
	}
	if !s.Open {
		return rejectUndeclared(s.Name, obj, s.Fields)
	}
	return nil
}

func (s *Shape) checkUnion(obj map[string]any) error {
	raw, ok := obj[s.Discriminant]
	if !ok {
		return fmt.Errorf("shape %s: missing discriminant %q", s.Name, s.Discriminant)
	}
	tag, ok := raw.(string)
	if !ok {
		return fmt.Errorf("shape %s: discriminant %q must be a string, got %T", s.Name, s.Discriminant, raw)
	}
	variant := s.variantFor(tag)
	if variant == nil {
		return fmt.Errorf("shape %s: unknown %s %q", s.Name, s.Discriminant, tag)
	}
	if err := checkFields(s.Name, s.Fields, obj); err != nil {
		return err
	}
	if err := checkFields(s.Name+"/"+tag, variant.Fields, obj); err != nil {
		return err
	}
	// Fields exclusive to other variants are rejected under this tag.
	for name := range obj {
		if name == s.Discriminant || fieldDeclared(s.Fields, name) || fieldDeclared(variant.Fields, name) {
			continue
		}
		if owner := s.ownerVariant(name, tag); owner != "" {
			return fmt.Errorf("shape %s: field %q belongs to variant %q, not %q", s.Name, name, owner, tag)
		}
		if !s.Open {
			return fmt.Errorf("shape %s: undeclared field %q", s.Name, name)
		}
	}
	return nil
}

func (s *Shape) variantFor(tag string) *Variant {
	for i := range s.Variants {
		if s.Variants[i].Tag == tag {
			return &s.Variants[i]
		}
	}
	return nil
}

// ownerVariant returns the tag of a variant (other than current) that
// declares the field, or "" when none does.
func (s *Shape) ownerVariant(field, current string) string {
	for _, v := range s.Variants {
		if v.Tag == current {
			continue
		}
		if fieldDeclared(v.Fields, field) {
			return v.Tag
		}
	}
	return ""
}

func checkFields(shapeName string, fields []Field, obj map[string]any) error {
	for _, f := range fields {
		raw, present := obj[f.Name]
		if !present {
			if f.Required && f.Kind != KindCallback {
				return fmt.Errorf("shape %s: missing required field %q", shapeName, f.Name)
			}
			continue
		}
		if f.Kind == KindCallback {
			continue
		}
		if err := checkKind(f.Kind, raw); err != nil {
			return fmt.Errorf("shape %s: field %q: %w", shapeName, f.Name, err)
		}
		if len(f.Enum) > 0 {
			lit, _ := raw.(string)
			if !contains(f.Enum, lit) {
				return fmt.Errorf("shape %s: field %q: %q is not one of %v", shapeName, f.Name, lit, f.Enum)
			}
		}
	}
	return nil
}

func checkKind(k Kind, v any) error {
	switch k {
	case KindAny:
		return nil
	case KindString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("expected string, got %T", v)
		}
	case KindNumber:
		switch v.(type) {
		case float64, int, int64:
		default:
			return fmt.Errorf("expected number, got %T", v)
		}
	case KindBool:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("expected bool, got %T", v)
		}
	case KindArray:
		if _, ok := v.([]any); !ok {
			return fmt.Errorf("expected array, got %T", v)
		}
	case KindObject:
		if _, ok := v.(map[string]any); !ok {
			return fmt.Errorf("expected object, got %T", v)
		}
	}
	return nil
}

func rejectUndeclared(shapeName string, obj map[string]any, fields []Field) error {
	var undeclared []string
	for name := range obj {
		if fieldDeclared(fields, name) {
			continue
		}
		undeclared = append(undeclared, name)
	}
	if len(undeclared) == 0 {
		return nil
	}
	sort.Strings(undeclared)
	return fmt.Errorf("shape %s: undeclared field %q", shapeName, undeclared[0])
}

func fieldDeclared(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
