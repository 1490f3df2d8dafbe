package extension

import (
	"context"

	"github.com/dive2Pro/roam-types/pkg/query"
	"github.com/dive2Pro/roam-types/pkg/write"
)

// API is the surface the host hands to an extension's entry points on
// load. Two divergent historical declarations of this surface circulated
// upstream; this is the reconciled one, restricted to the operations the
// host currently documents.
type API struct {
	Settings    Settings
	UI          UI
	Reader      query.Reader
	Writer      write.Writer
	Environment Environment
}

// Extension is implemented by a loadable extension. The host calls
// OnLoad once after the graph is ready and OnUnload when the extension
// is disabled or the graph closes; every registration made through the
// API must be removed in OnUnload, by its label key.
type Extension interface {
	OnLoad(ctx context.Context, api *API) error
	OnUnload(ctx context.Context) error
}
