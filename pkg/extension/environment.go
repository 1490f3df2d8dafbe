package extension

import validation "github.com/go-ozzo/ozzo-validation/v4"

// GraphType is the hosting mode of the open graph.
type GraphType string

// Graph types.
const (
	GraphTypeHosted  GraphType = "hosted"
	GraphTypeOffline GraphType = "offline"
)

// Validate rejects literals outside the documented domain.
func (t GraphType) Validate() error {
	return validation.Validate(t, validation.Required, validation.In(GraphTypeHosted, GraphTypeOffline), validation.Skip)
}

// Graph describes the open graph: read-only flags set by the host.
type Graph struct {
	Name        string    `json:"name"`
	Type        GraphType `json:"type"`
	IsEncrypted bool      `json:"isEncrypted"`
}

// Validate enforces the name and type domain.
func (g Graph) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.Required),
		validation.Field(&g.Type),
	)
}

// Platform describes the runtime host: read-only capability flags.
type Platform struct {
	IsDesktop     bool `json:"isDesktop"`
	IsMobile      bool `json:"isMobile"`
	IsMobileApp   bool `json:"isMobileApp"`
	IsTouchDevice bool `json:"isTouchDevice"`
	IsIOS         bool `json:"isIOS"`
}

// Environment bundles the descriptors the host exposes to extensions.
type Environment struct {
	Graph    Graph    `json:"graph"`
	Platform Platform `json:"platform"`
}
