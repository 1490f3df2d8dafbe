package write

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dive2Pro/roam-types/pkg/query"
)

// BlockProps is the fixed set of recognized block property overrides.
// Absent fields leave the corresponding host-side property untouched.
type BlockProps struct {
	String           string          `json:"string,omitempty"`
	UID              string          `json:"uid,omitempty"`
	Open             *bool           `json:"open,omitempty"`
	Heading          *query.Heading  `json:"heading,omitempty"`
	TextAlign        query.TextAlign `json:"text-align,omitempty"`
	ChildrenViewType query.ViewType  `json:"children-view-type,omitempty"`
}

// Validate checks the enumerated fields against their literal domains.
func (p BlockProps) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Heading),
		validation.Field(&p.TextAlign),
		validation.Field(&p.ChildrenViewType),
	)
}

// PageProps is the fixed set of recognized page property overrides.
type PageProps struct {
	Title            string         `json:"title,omitempty"`
	UID              string         `json:"uid,omitempty"`
	ChildrenViewType query.ViewType `json:"children-view-type,omitempty"`
}

// Validate checks the enumerated fields against their literal domains.
func (p PageProps) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChildrenViewType),
	)
}

// BlockRef names the block a mutation targets, by unique key.
type BlockRef struct {
	UID string `json:"uid"`
}

// Validate enforces the required key.
func (r BlockRef) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UID, validation.Required),
	)
}

// PageRef names the page a mutation targets, by unique key.
type PageRef struct {
	UID string `json:"uid"`
}

// Validate enforces the required key.
func (r PageRef) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UID, validation.Required),
	)
}

// CreateBlockArgs creates a block under a parent. The location descriptor
// is required; String carries the new block's text.
type CreateBlockArgs struct {
	Location *Location  `json:"location"`
	Block    BlockProps `json:"block"`
}

// Validate enforces the required location and text.
func (a CreateBlockArgs) Validate() error {
	if err := validation.ValidateStruct(&a,
		validation.Field(&a.Location, validation.Required),
		validation.Field(&a.Block),
	); err != nil {
		return err
	}
	return validation.Validate(a.Block.String, validation.Required.Error("block string is required"))
}

// UpdateBlockArgs updates the properties of an existing block. UID names
// the target; every other property is an optional override.
type UpdateBlockArgs struct {
	Block BlockProps `json:"block"`
}

// Validate enforces the target key and the property domains.
func (a UpdateBlockArgs) Validate() error {
	if err := validation.Validate(a.Block.UID, validation.Required.Error("block uid is required")); err != nil {
		return err
	}
	return a.Block.Validate()
}

// MoveBlockArgs moves an existing block to a new location.
type MoveBlockArgs struct {
	Location *Location `json:"location"`
	Block    BlockRef  `json:"block"`
}

// Validate enforces both the target and the destination.
func (a MoveBlockArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Location, validation.Required),
		validation.Field(&a.Block, validation.Required),
	)
}

// DeleteBlockArgs deletes a block and its descendants.
type DeleteBlockArgs struct {
	Block BlockRef `json:"block"`
}

// Validate enforces the target key.
func (a DeleteBlockArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Block, validation.Required),
	)
}

// ReorderBlocksArgs rewrites the child order under one parent. UIDs must
// name children of the location's parent.
type ReorderBlocksArgs struct {
	Location *Location `json:"location"`
	Blocks   []string  `json:"blocks"`
}

// Validate enforces the parent location and a non-empty child list.
func (a ReorderBlocksArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Location, validation.Required),
		validation.Field(&a.Blocks, validation.Required, validation.Length(1, 0)),
	)
}

// CreatePageArgs creates a page. Title is required; UID is an optional
// caller-supplied unique key.
type CreatePageArgs struct {
	Page PageProps `json:"page"`
}

// Validate enforces the required title.
func (a CreatePageArgs) Validate() error {
	if err := validation.Validate(a.Page.Title, validation.Required.Error("page title is required")); err != nil {
		return err
	}
	return a.Page.Validate()
}

// UpdatePageArgs updates the properties of an existing page.
type UpdatePageArgs struct {
	Page PageProps `json:"page"`
}

// Validate enforces the target key and the property domains.
func (a UpdatePageArgs) Validate() error {
	if err := validation.Validate(a.Page.UID, validation.Required.Error("page uid is required")); err != nil {
		return err
	}
	return a.Page.Validate()
}

// DeletePageArgs deletes a page and all blocks it contains.
type DeletePageArgs struct {
	Page PageRef `json:"page"`
}

// Validate enforces the target key.
func (a DeletePageArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Page, validation.Required),
	)
}

// UpsertUserArgs creates or updates a user record.
type UpsertUserArgs struct {
	User UserProps `json:"user"`
}

// UserProps is the recognized property set of a user record.
type UserProps struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display-name,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Validate enforces the required user key.
func (a UpsertUserArgs) Validate() error {
	return validation.Validate(a.User.UID, validation.Required.Error("user uid is required"))
}
