package extension

import (
	"context"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Settings is the key/value store the host scopes to each extension,
// plus the declarative panel builder. Reads are synchronous; writes and
// panel creation are deferred.
type Settings interface {
	// Get returns the stored value for key, or nil when unset.
	Get(key string) any

	// All returns every stored key/value pair of the extension.
	All() map[string]any

	// Set stores value under key. Deferred.
	Set(ctx context.Context, key string, value any) error

	// CreatePanel declares the extension's settings panel. Calling it
	// again replaces the previous declaration. Deferred.
	CreatePanel(ctx context.Context, cfg PanelConfig) error
}

// PanelConfig declares an extension's settings panel.
type PanelConfig struct {
	TabTitle string          `json:"tabTitle"`
	Settings []SettingConfig `json:"settings"`
}

// Validate enforces the required tab title and at least one entry, then
// each entry's own contract.
func (c PanelConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TabTitle, validation.Required),
		validation.Field(&c.Settings, validation.Required, validation.Length(1, 0)),
	)
}

// SettingConfig is one panel entry: identity, display strings, and the
// action descriptor selecting its control variant.
type SettingConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Action      Action `json:"action"`
}

// Validate enforces identity fields and delegates to the action variant.
func (c SettingConfig) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Name, validation.Required),
	); err != nil {
		return err
	}
	if c.Action == nil {
		return validation.Errors{"action": validation.ErrRequired}
	}
	return c.Action.Validate()
}

// settingConfigWire mirrors SettingConfig with the action left raw for
// two-phase decoding.
type settingConfigWire struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Action      json.RawMessage `json:"action"`
}

// MarshalJSON emits the entry with the action in tagged wire form.
func (c SettingConfig) MarshalJSON() ([]byte, error) {
	wire := settingConfigWire{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
	if c.Action != nil {
		raw, err := MarshalAction(c.Action)
		if err != nil {
			return nil, err
		}
		wire.Action = raw
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the entry, resolving the action through its
// discriminant tag.
func (c *SettingConfig) UnmarshalJSON(data []byte) error {
	var wire settingConfigWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	c.ID = wire.ID
	c.Name = wire.Name
	c.Description = wire.Description
	c.Action = nil
	if len(wire.Action) > 0 && string(wire.Action) != "null" {
		action, err := UnmarshalAction(wire.Action)
		if err != nil {
			return err
		}
		c.Action = action
	}
	return nil
}
