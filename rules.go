package formvalidate

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi3"
)

// labelKey names the label entry of a declarative rule set. It is field
// metadata and never dispatched as a rule.
const labelKey = "label"

// errBadCondition marks a rule whose condition cannot be evaluated.
var errBadCondition = errors.New("unusable rule condition")

// checker evaluates and documents one kind of rule.
type checker interface {
	// Check returns nil if value satisfies the rule, a validation.Error if
	// it does not, or an error wrapping errBadCondition if the condition is
	// unusable.
	Check(value, condition any) error
	Describe(name string, condition any, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
}

// kind is a registry entry. Gated kinds only run when their condition is
// the boolean true.
type kind struct {
	checker
	gated bool
}

var registry = map[string]kind{
	RuleRequired:     {requiredRule{}, true},
	RuleEmpty:        {absentRule{}, true},
	RuleEmail:        {emailRule, true},
	RuleAlphabetical: {alphabeticalRule, true},
	RulePhone:        {phoneRule, true},
	RuleNumber:       {numberRule, true},
	RuleInt:          {numberRule, true},
	RuleInteger:      {numberRule, true},
	RuleMinLength:    {lengthRule{min: true}, false},
	RuleMaxLength:    {lengthRule{min: false}, false},
}

// lookup returns the registry entry for a rule name.
func lookup(name string) (kind, bool) {
	k, ok := registry[name]
	return k, ok
}

// appendDescription adds desc to the schema description, space separated.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if ref.Value.Description != "" {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
