package formvalidate

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of field names to their first validation error.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors

// ErrNoData is reported by [Result.Err] when there was nothing to validate.
var ErrNoData = errors.New("no data submitted")

// Messages produced by the built-in rules. The templates are rendered with
// the "label" param and, for length rules, "min" or "max".
var (
	ErrRequired     = validation.NewError("validation_required", "Please fill out the {{.label}} field.")
	ErrNotEmpty     = validation.NewError("validation_empty", "The {{.label}} field must be empty.")
	ErrEmail        = validation.NewError("validation_email", "Please enter a valid email address.")
	ErrAlphabetical = validation.NewError("validation_alphabetical", "Please use only alphabetical characters for the {{.label}} field.")
	ErrPhone        = validation.NewError("validation_phone", "Please enter a valid phone number.")
	ErrNumber       = validation.NewError("validation_number", "Please enter a number for the {{.label}} field.")
	ErrMinLength    = validation.NewError("validation_min_length", "The {{.label}} field must be at least {{.min}} characters long.")
	ErrMaxLength    = validation.NewError("validation_max_length", "The {{.label}} field must be {{.max}} characters long at maximum.")
)

// withLabel returns a copy of e with the label param added.
func withLabel(e validation.Error, label string) validation.Error {
	params := map[string]any{"label": label}
	for k, v := range e.Params() {
		params[k] = v
	}
	return e.SetParams(params)
}
