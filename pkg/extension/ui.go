package extension

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dive2Pro/roam-types/pkg/query"
)

// Element is an opaque handle to a host-owned render target. The host
// passes it to component mounts; this contract never inspects it.
type Element any

// Component is an opaque handle to a caller-supplied renderable
// component, mounted by the host into an Element.
type Component any

// Command is a command palette entry. Label doubles as the removal key:
// RemoveCommand must present the label that registered the entry.
type Command struct {
	Label         string `json:"label"`
	Callback      func() `json:"-"`
	DisableHotkey bool   `json:"disable-hotkey,omitempty"`
}

// Validate enforces the label and callback.
func (c Command) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Label, validation.Required),
		validation.Field(&c.Callback, validation.By(requiredFunc)),
	)
}

// CommandPalette registers commands into the host's palette.
type CommandPalette interface {
	AddCommand(ctx context.Context, cmd Command) error
	RemoveCommand(ctx context.Context, label string) error
}

// MenuContext is the context variant handed to a context-menu callback.
// Exactly two variants exist: a single-block context and a multi-select
// context.
type MenuContext interface {
	menuContext()
}

// BlockContext describes the block the menu was opened on.
type BlockContext struct {
	BlockUID    string         `json:"block-uid"`
	PageUID     string         `json:"page-uid"`
	WindowID    string         `json:"window-id"`
	BlockString string         `json:"block-string"`
	Heading     *query.Heading `json:"heading,omitempty"`
}

func (BlockContext) menuContext() {}

// MultiSelectContext describes a multi-block selection.
type MultiSelectContext struct {
	BlockUIDs []string `json:"block-uids"`
}

func (MultiSelectContext) menuContext() {}

// MenuCommand is a context-menu entry; the callback receives the context
// variant matching the menu it was registered on.
type MenuCommand struct {
	Label    string           `json:"label"`
	Callback func(MenuContext) `json:"-"`
}

// Validate enforces the label and callback.
func (c MenuCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Label, validation.Required),
		validation.Field(&c.Callback, validation.By(requiredFunc)),
	)
}

// ContextMenu registers entries into one of the host's context menus.
// The same label-keyed removal convention as the command palette applies.
type ContextMenu interface {
	AddCommand(ctx context.Context, cmd MenuCommand) error
	RemoveCommand(ctx context.Context, label string) error
}

// ComponentMount mounts a renderable into a host element, keyed by label
// for later unmounting.
type ComponentMount struct {
	Label     string    `json:"label"`
	Component Component `json:"-"`
}

// Components renders host records (or searches) into caller-supplied
// elements, and mounts custom components.
type Components interface {
	// RenderBlock renders the block identified by uid into el.
	RenderBlock(ctx context.Context, uid string, el Element) error

	// RenderPage renders the page identified by uid into el.
	RenderPage(ctx context.Context, uid string, el Element) error

	// RenderSearch renders a search input scoped to the graph into el.
	RenderSearch(ctx context.Context, el Element) error

	// Mount attaches a custom component; Unmount detaches it by label.
	Mount(ctx context.Context, m ComponentMount, el Element) error
	Unmount(ctx context.Context, label string) error
}

// MainWindow drives the host's main view.
//
// The open calls resolve true regardless of whether the identified
// entity exists; existence must be checked through the read surface
// beforehand. The convention is the host's and is recorded here only.
type MainWindow interface {
	OpenBlock(ctx context.Context, id query.EntityID) (bool, error)
	OpenPage(ctx context.Context, id query.EntityID) (bool, error)
}

// UI aggregates the registration surface handed to an extension.
type UI struct {
	CommandPalette   CommandPalette
	BlockContextMenu ContextMenu
	MultiSelectMenu  ContextMenu
	Components       Components
	MainWindow       MainWindow
}
