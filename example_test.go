package formvalidate_test

import (
	"fmt"

	fv "github.com/Gobd/formvalidate"
)

func ExampleValidator_Validate() {
	rules := fv.RuleSet{
		fv.Field("name", "name", fv.Required, fv.MinLength(3), fv.Alphabetical),
		fv.Field("email", "email", fv.Required, fv.Email),
	}

	v := fv.New(fv.Record{"name": "Alice", "email": "alice@example.com"}, rules)
	fmt.Println(v.Validate())
	// Output: true
}

func ExampleValidator_Errors() {
	rules := fv.RuleSet{
		fv.Field("name", "name", fv.Required, fv.MinLength(3), fv.Alphabetical),
		fv.Field("email", "email", fv.Required, fv.Email),
		fv.Field("phone", "phone number", fv.Phone),
	}

	v := fv.New(fv.Record{"name": "A1", "email": "alice"}, rules)
	if !v.Validate() {
		for _, msg := range v.Errors() {
			fmt.Println(msg)
		}
	}
	// Output:
	// The name field must be at least 3 characters long.
	// Please use only alphabetical characters for the name field.
	// Please enter a valid email address.
	// Please enter a valid phone number.
}

func ExampleParseRuleSet() {
	rules, err := fv.ParseRuleSet([]byte(`
age:
  required: true
  number: true
  maxlength: 3
  label: age
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	res := fv.Check(fv.Record{"age": "1000"}, rules)
	fmt.Println(res.Valid, res.Messages())
	// Output: false [The age field must be 3 characters long at maximum.]
}

func ExampleClean() {
	fmt.Println(fv.Clean("5a 7", "int"))
	fmt.Println(fv.Clean(`<script>x</script>"quoted"`, "string"))
	// Output:
	// 57
	// x&#34;quoted&#34;
}
