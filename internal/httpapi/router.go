package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler()

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Shape registry.
	r.Get("/shapes", h.ListShapes)
	r.Get("/shapes/{name}", h.GetShape)
	r.Get("/shapes/{name}/jsonschema", h.GetShapeJSONSchema)

	// Payload validation.
	r.Post("/validate/{name}", h.ValidatePayload)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
