package schema

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// JSONSchema reflects the shape's Go model into a JSON Schema document.
// Shapes without a model (unions decoded through hand-written codecs)
// return an error rather than a lossy guess.
func (s *Shape) JSONSchema() (*jsonschema.Schema, error) {
	if s.Model == nil {
		return nil, fmt.Errorf("schema: shape %q has no reflectable model", s.Name)
	}
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	js := r.Reflect(s.Model)
	js.Title = s.Name
	if s.Doc != "" {
		js.Description = s.Doc
	}
	return js, nil
}
