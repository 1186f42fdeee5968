package formvalidate

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// absentRule fails when the value is not loosely empty. Unlike required,
// the value is not trimmed, so " " is not empty.
type absentRule struct{}

func (absentRule) Check(value, _ any) error {
	if !isEmpty(value) {
		return ErrNotEmpty
	}
	return nil
}

func (absentRule) Describe(_ string, _ any, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, "Must be empty.")
	return nil
}
