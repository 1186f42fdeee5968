package formvalidate

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema describes rs as an OpenAPI 3 object schema with one string
// property per field. Rules that would not run during validation, such as
// a presence rule with a false condition or an unknown rule, are left out.
func (rs RuleSet) Schema() (*openapi3.SchemaRef, error) {
	schema := openapi3.NewObjectSchema()
	if schema.Properties == nil {
		schema.Properties = openapi3.Schemas{}
	}

	for _, fr := range rs {
		if fr == nil {
			continue
		}
		ref, ok := schema.Properties[fr.Name]
		if !ok {
			ref = &openapi3.SchemaRef{Value: openapi3.NewStringSchema()}
			schema.Properties[fr.Name] = ref
		}
		if fr.Label != "" {
			ref.Value.Title = fr.Label
		}
		if err := applyRulesToSchema(fr, schema, ref); err != nil {
			return nil, err
		}
	}
	return &openapi3.SchemaRef{Value: schema}, nil
}

// applyRulesToSchema calls Describe for each rule of fr that would run.
func applyRulesToSchema(fr *FieldRules, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, r := range fr.Rules {
		k, ok := lookup(r.Name)
		if !ok || (k.gated && !isTrue(r.Condition)) {
			continue
		}
		if err := k.Describe(fr.Name, r.Condition, schema, ref); err != nil {
			return fmt.Errorf("field %s rule %s: %w", fr.Name, r.Name, err)
		}
	}
	return nil
}
