package query

import validation "github.com/go-ozzo/ozzo-validation/v4"

// TextAlign is the block text alignment domain.
type TextAlign string

// Text alignments.
const (
	TextAlignLeft    TextAlign = "left"
	TextAlignCenter  TextAlign = "center"
	TextAlignRight   TextAlign = "right"
	TextAlignJustify TextAlign = "justify"
)

// TextAligns lists every admitted alignment literal.
func TextAligns() []any {
	return []any{TextAlignLeft, TextAlignCenter, TextAlignRight, TextAlignJustify}
}

// Validate rejects literals outside the documented domain. The empty
// string means "not set" and is admitted.
func (a TextAlign) Validate() error {
	if a == "" {
		return nil
	}
	return validation.Validate(a, validation.In(TextAligns()...), validation.Skip)
}

// ViewType is the children view domain of a block or page.
type ViewType string

// View types.
const (
	ViewTypeBullet   ViewType = "bullet"
	ViewTypeDocument ViewType = "document"
	ViewTypeNumbered ViewType = "numbered"
)

// ViewTypes lists every admitted view literal.
func ViewTypes() []any {
	return []any{ViewTypeBullet, ViewTypeDocument, ViewTypeNumbered}
}

// Validate rejects literals outside the documented domain.
func (v ViewType) Validate() error {
	if v == "" {
		return nil
	}
	return validation.Validate(v, validation.In(ViewTypes()...), validation.Skip)
}

// Heading is the heading level of a block: 0 (plain) through 3.
type Heading int

// Validate rejects levels outside 0..3.
func (h Heading) Validate() error {
	return validation.Validate(int(h), validation.Min(0), validation.Max(3))
}
