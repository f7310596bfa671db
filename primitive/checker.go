package primitive

import (
	"fmt"
	"reflect"

	"dynabean/schema"
)

// Checker is the default schema.PrimitiveValidator implementation: a value
// is accepted for a primitive property when it is non-nil and its runtime
// type is assignable to the declared type.
type Checker struct{}

func (Checker) Validate(name string, declared reflect.Type, value any) error {
	if value == nil {
		return &schema.InvalidValueError{
			Code:     "nil_primitive",
			Property: name,
			Declared: declared,
			Reason:   "nil value for a primitive property",
		}
	}

	rt := reflect.TypeOf(value)
	if rt.AssignableTo(declared) {
		return nil
	}

	return &schema.InvalidValueError{
		Code:     "type_mismatch",
		Property: name,
		Declared: declared,
		Value:    value,
		Reason:   fmt.Sprintf("%s is not assignable to %s", rt, declared),
	}
}
