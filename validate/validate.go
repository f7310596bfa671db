// Package validate checks candidate property values against a schema and
// delegate descriptors against the properties they are registered for.
//
// Value validation is deliberately permissive at the edges: untyped and
// list-typed descriptors accept anything (list handling is deferred to the
// list reconciliation collaborator), and nil is permitted for every
// non-primitive property. Primitive verdicts are delegated to the primitive
// validator collaborator and returned as-is.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"golang.org/x/exp/maps"

	"dynabean/internal/diagnostic"
	"dynabean/primitive"
	"dynabean/schema"
)

// Validator checks values against property schemas. Handlers recognizes
// managed proxy-backed values; Primitives judges values of primitive-typed
// properties.
type Validator struct {
	Handlers   schema.Introspector
	Primitives schema.PrimitiveValidator
}

func New(handlers schema.Introspector, primitives schema.PrimitiveValidator) *Validator {
	return &Validator{Handlers: handlers, Primitives: primitives}
}

// ValidateValue decides whether value is acceptable for the named property.
func (v *Validator) ValidateValue(s schema.Schema, name string, value any) error {
	desc, known := s[name]
	if !known {
		return &schema.InvalidValueError{
			Code:     "unknown_property",
			Property: name,
			Value:    value,
			Reason:   "unknown property",
		}
	}

	switch desc.Kind() {
	case schema.DescriptorUntyped, schema.DescriptorList:
		return nil
	}

	if primitive.FromReflectType(desc.Type) != 0 {
		return v.Primitives.Validate(name, desc.Type, value)
	}

	if value == nil {
		// nil is permitted for any non-primitive property
		return nil
	}

	if v.Handlers != nil {
		if h, ok := v.Handlers.HandlerOf(value); ok {
			return proxyVerdict(name, desc, h)
		}
	}

	if reflect.TypeOf(value).AssignableTo(desc.Type) {
		return nil
	}

	return &schema.InvalidValueError{
		Code:     "type_mismatch",
		Property: name,
		Declared: desc.Type,
		Value:    value,
		Reason:   fmt.Sprintf("%s is not assignable to %s", reflect.TypeOf(value), desc.Type),
	}
}

// proxyVerdict judges a proxy-backed value: a handler without capabilities
// is a configuration error, a capable handler must proxy for the declared
// type.
func proxyVerdict(name string, desc schema.Descriptor, h schema.Handler) error {
	if h == nil {
		return fmt.Errorf("property %q: %w", name, schema.ErrUnsupportedHandler)
	}

	if h.ProxiesFor(desc.Type) {
		return nil
	}

	return &schema.InvalidValueError{
		Code:     "proxy_type_mismatch",
		Property: name,
		Declared: desc.Type,
		Reason:   fmt.Sprintf("proxy does not stand in for %s", desc.Type),
	}
}

// ValidateAll applies ValidateValue to every entry of values in property
// name order and fails on the first violation.
func (v *Validator) ValidateAll(s schema.Schema, values map[string]any) error {
	names := maps.Keys(values)
	slices.Sort(names)

	for _, name := range names {
		if err := v.ValidateValue(s, name, values[name]); err != nil {
			return err
		}
	}

	return nil
}

// Check applies the same rules as ValidateAll but collects every violation
// instead of failing fast.
func (v *Validator) Check(s schema.Schema, values map[string]any) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	names := maps.Keys(values)
	slices.Sort(names)

	for _, name := range names {
		err := v.ValidateValue(s, name, values[name])
		if err == nil {
			continue
		}

		res.AddError(errorCode(err), err.Error(), name)
	}

	return res
}

func errorCode(err error) string {
	var invalid *schema.InvalidValueError
	if errors.As(err, &invalid) {
		return invalid.Code
	}

	if errors.Is(err, schema.ErrUnsupportedHandler) {
		return "unsupported_handler"
	}

	return "invalid_value"
}
