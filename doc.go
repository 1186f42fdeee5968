// Package formvalidate validates flat form submissions against declarative
// per-field rule sets and collects human-readable error messages.
//
// Declare the rules in the order messages should appear:
//
//	rules := formvalidate.RuleSet{
//	    formvalidate.Field("name", "name", formvalidate.Required, formvalidate.MinLength(3), formvalidate.Alphabetical),
//	    formvalidate.Field("email", "email", formvalidate.Required, formvalidate.Email),
//	}
//
// Then validate a record:
//
//	v := formvalidate.New(record, rules)
//	if !v.Validate() {
//	    for _, msg := range v.Errors() {
//	        fmt.Println(msg)
//	    }
//	}
//
// Rule sets can also be loaded from YAML with [ParseRuleSet] and described as
// an OpenAPI 3 schema with [RuleSet.Schema].
//
// Sub-packages:
//   - openapi – OpenAPI request/response documents for form endpoints
//   - transform – value sanitization ([Clean])
package formvalidate
