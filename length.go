package formvalidate

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
)

// lengthRule bounds the character count of a value. It has no boolean
// gate: any condition that reads as a number applies.
type lengthRule struct {
	min bool
}

func (r lengthRule) Check(value, condition any) error {
	limit, err := getFloat(condition)
	if err != nil {
		return err
	}
	n := float64(utf8.RuneCountInString(toString(value)))
	if r.min && n < limit {
		return ErrMinLength.SetParams(map[string]any{"min": formatLimit(limit)})
	}
	if !r.min && n > limit {
		return ErrMaxLength.SetParams(map[string]any{"max": formatLimit(limit)})
	}
	return nil
}

func (r lengthRule) Describe(_ string, condition any, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	limit, err := getFloat(condition)
	if err != nil {
		return err
	}
	if r.min {
		ref.Value.MinLength = uint64(math.Max(0, math.Ceil(limit)))
		return nil
	}
	hi := uint64(math.Max(0, math.Floor(limit)))
	ref.Value.MaxLength = &hi
	return nil
}

var floatType = reflect.TypeOf(float64(0))

// getFloat reads a length condition. Numeric kinds convert directly and
// strings must parse as a number.
func getFloat(unk any) (float64, error) {
	if unk == nil {
		return 0, fmt.Errorf("%w: missing length", errBadCondition)
	}
	if s, ok := unk.(fmt.Stringer); ok {
		unk = s.String()
	}
	v := reflect.Indirect(reflect.ValueOf(unk))
	switch v.Kind() {
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q is not a number", errBadCondition, v.String())
		}
		return f, nil
	case reflect.Bool:
		return 0, fmt.Errorf("%w: %v is not a number", errBadCondition, v.Bool())
	}
	if !v.IsValid() || !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("%w: cannot convert %T to a number", errBadCondition, unk)
	}
	f := v.Convert(floatType).Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not a finite number", errBadCondition, f)
	}
	return f, nil
}

func formatLimit(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
