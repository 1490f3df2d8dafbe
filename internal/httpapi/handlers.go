package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dive2Pro/roam-types/internal/apperr"
	"github.com/dive2Pro/roam-types/internal/checker"
	"github.com/dive2Pro/roam-types/pkg/schema"
)

// Handler holds API route handlers.
type Handler struct{}

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ShapeListItem is a lightweight item in the shape listing.
type ShapeListItem struct {
	Name     string          `json:"name"`
	Doc      string          `json:"doc,omitempty"`
	Delivery schema.Delivery `json:"delivery"`
	Union    bool            `json:"union,omitempty"`
}

// ShapeListResponse wraps the shape listing.
type ShapeListResponse struct {
	Shapes []ShapeListItem `json:"shapes"`
	Total  int             `json:"total"`
}

// ValidateResponse is the outcome of a validation call.
type ValidateResponse struct {
	Shape  string `json:"shape"`
	Valid  bool   `json:"valid"`
	Detail string `json:"detail,omitempty"`
}

// ListShapes handles GET /shapes.
func (h *Handler) ListShapes(w http.ResponseWriter, _ *http.Request) {
	all := schema.All()
	items := make([]ShapeListItem, len(all))
	for i, s := range all {
		items[i] = ShapeListItem{
			Name:     s.Name,
			Doc:      s.Doc,
			Delivery: s.Delivery,
			Union:    s.IsUnion(),
		}
	}
	writeJSON(w, http.StatusOK, ShapeListResponse{Shapes: items, Total: len(items)})
}

// GetShape handles GET /shapes/{name}: the full descriptor.
func (h *Handler) GetShape(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s := schema.Lookup(name)
	if s == nil {
		writeJSON(w, http.StatusNotFound, errorBody("unknown shape"))
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// GetShapeJSONSchema handles GET /shapes/{name}/jsonschema: the shape's
// Go model reflected into a JSON Schema document.
func (h *Handler) GetShapeJSONSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s := schema.Lookup(name)
	if s == nil {
		writeJSON(w, http.StatusNotFound, errorBody("unknown shape"))
		return
	}
	js, err := s.JSONSchema()
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("shape has no reflectable model"))
		return
	}
	writeJSON(w, http.StatusOK, js)
}

// ValidatePayload handles POST /validate/{name}: checks the request body
// against the named shape.
func (h *Handler) ValidatePayload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	name := chi.URLParam(r, "name")

	var value any
	if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	err := checker.CheckDocument(&checker.Document{Shape: name, Value: value})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, ValidateResponse{Shape: name, Valid: true})
	case errors.Is(err, apperr.ErrUnknownShape):
		writeJSON(w, http.StatusNotFound, errorBody("unknown shape"))
	case errors.Is(err, apperr.ErrConformance):
		writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{Shape: name, Valid: false, Detail: err.Error()})
	default:
		slog.Error("validate failed", slog.String("shape", name), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
