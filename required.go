package formvalidate

import (
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// requiredRule fails when the value, trimmed, is loosely empty.
type requiredRule struct{}

func (requiredRule) Check(value, _ any) error {
	if isEmpty(trim(toString(value))) {
		return ErrRequired
	}
	return nil
}

func (requiredRule) Describe(name string, _ any, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	if !slices.Contains(schema.Required, name) {
		schema.Required = append(schema.Required, name)
	}
	return nil
}
