package formvalidate

import (
	"regexp"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// Only these accented letters are accepted; callers depend on the exact set.
	alphabeticalPattern = `^[a-zA-ZàáíìóòôîêëäöüèéÀÁÍÌÓÒÔÎÊËÄÖÜÈÉ]{2,}$`
	phonePattern        = `^\+?[- ()/0-9]{3,18}$`
	numericPattern      = `^[ \t\n\r\v\f]*[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?[ \t\n\r\v\f]*$`
)

var (
	alphabeticalRegexp = regexp.MustCompile(alphabeticalPattern)
	phoneRegexp        = regexp.MustCompile(phonePattern)
	numericRegexp      = regexp.MustCompile(numericPattern)
)

// stringRule checks the string form of a value against a predicate.
// Empty strings are checked too; they fail every built-in predicate.
type stringRule struct {
	validate func(string) bool
	err      validation.Error
	format   string
	pattern  string
	desc     string
}

var (
	emailRule = stringRule{
		validate: govalidator.IsEmail,
		err:      ErrEmail,
		format:   "email",
	}
	alphabeticalRule = stringRule{
		validate: alphabeticalRegexp.MatchString,
		err:      ErrAlphabetical,
		pattern:  alphabeticalPattern,
		desc:     "Letters only, at least 2.",
	}
	phoneRule = stringRule{
		validate: phoneRegexp.MatchString,
		err:      ErrPhone,
		pattern:  phonePattern,
		desc:     "Phone number.",
	}
	numberRule = stringRule{
		validate: numericRegexp.MatchString,
		err:      ErrNumber,
		pattern:  numericPattern,
		desc:     "Numeric.",
	}
)

func (r stringRule) Check(value, _ any) error {
	if !r.validate(toString(value)) {
		return r.err
	}
	return nil
}

func (r stringRule) Describe(_ string, _ any, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.format != "" {
		ref.Value.Format = r.format
	}
	if r.pattern != "" {
		ref.Value.Pattern = r.pattern
	}
	if r.desc != "" {
		appendDescription(ref, r.desc)
	}
	return nil
}
