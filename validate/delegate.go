package validate

import (
	"fmt"
	"reflect"

	"dynabean/schema"
)

// ValidateDelegate checks, at configuration time, that a custom read/write
// delegate is compatible with the property it is being registered for.
// Failures are configuration errors, not data errors.
func ValidateDelegate(name string, desc, delegate schema.Descriptor) error {
	if desc.Indexed {
		if !declaresOwnArray(delegate) {
			return &schema.DelegateError{
				Property: name,
				Reason:   "delegate for an indexed property must declare an array type matching its component type",
			}
		}

		if !delegate.Indexed {
			return &schema.DelegateError{
				Property: name,
				Reason:   "delegate for an indexed property must itself be indexed",
			}
		}
	}

	if delegate.Type != desc.Type {
		return &schema.DelegateError{
			Property: name,
			Reason:   fmt.Sprintf("delegate type %s does not match declared type %s", typeName(delegate.Type), typeName(desc.Type)),
		}
	}

	return nil
}

// declaresOwnArray reports whether the delegate's declared type is an array
// type whose element type agrees with the delegate's own component type.
func declaresOwnArray(delegate schema.Descriptor) bool {
	t := delegate.Type
	if t == nil || (t.Kind() != reflect.Slice && t.Kind() != reflect.Array) {
		return false
	}

	return t.Elem() == delegate.Component
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}

	return t.String()
}
