package formvalidate

// Rule names understood by the validator. Names are matched case-sensitively;
// anything else is ignored.
const (
	RuleRequired     = "required"
	RuleEmpty        = "empty"
	RuleEmail        = "email"
	RuleAlphabetical = "alphabetical"
	RulePhone        = "phone"
	RuleNumber       = "number"
	RuleInt          = "int"
	RuleInteger      = "integer"
	RuleMinLength    = "minlength"
	RuleMaxLength    = "maxlength"
)

type (
	// Record holds the submitted field values of one validation attempt.
	// A field missing from the record is validated as the empty string.
	Record map[string]any

	// Rule is a named rule with its condition. Presence-style rules only
	// apply when Condition is the boolean true; length rules take a number.
	Rule struct {
		Name      string
		Condition any
	}

	// FieldRules binds a field name to its label and rules. Rules are
	// evaluated in slice order.
	FieldRules struct {
		Name  string
		Label string
		Rules []Rule
	}

	// RuleSet is the ordered list of field rules. Fields are evaluated, and
	// their messages reported, in slice order.
	RuleSet []*FieldRules
)

// Presence-style rules with their condition set.
var (
	Required     = Rule{Name: RuleRequired, Condition: true}
	Empty        = Rule{Name: RuleEmpty, Condition: true}
	Email        = Rule{Name: RuleEmail, Condition: true}
	Alphabetical = Rule{Name: RuleAlphabetical, Condition: true}
	Phone        = Rule{Name: RulePhone, Condition: true}
	Number       = Rule{Name: RuleNumber, Condition: true}
)

// Field creates a FieldRules for the named field.
func Field(name, label string, rules ...Rule) *FieldRules {
	return &FieldRules{
		Name:  name,
		Label: label,
		Rules: rules,
	}
}

// Is returns a rule with an arbitrary name and condition.
func Is(name string, condition any) Rule {
	return Rule{Name: name, Condition: condition}
}

// MinLength returns a rule requiring at least n characters.
func MinLength(n int) Rule {
	return Rule{Name: RuleMinLength, Condition: n}
}

// MaxLength returns a rule allowing at most n characters.
func MaxLength(n int) Rule {
	return Rule{Name: RuleMaxLength, Condition: n}
}

// label returns the text interpolated into messages for the field.
func (f *FieldRules) label() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}
