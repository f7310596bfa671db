package schema

import "reflect"

// Factory instantiates managed nested objects of interface types. The path
// argument is the property path the new instance is created for; factories
// may use it for naming or diagnostics only.
type Factory interface {
	// Create builds a new empty instance of t.
	Create(path string, t reflect.Type) (any, error)

	// CreateSeeded builds a new instance of t with its internal value store
	// initialized from seed.
	CreateSeeded(path string, t reflect.Type, seed map[string]any) (any, error)
}

// PrimitiveArrays reads and writes elements of primitive-typed arrays on
// behalf of the engine, which itself only handles []any object arrays.
type PrimitiveArrays interface {
	// IsPrimitive reports whether t is an array or slice type with a
	// primitive element type.
	IsPrimitive(t reflect.Type) bool

	// Get returns the element at index. Out-of-range indices are errors.
	Get(array any, index int) (any, error)

	// Set replaces the element at index. Out-of-range indices are errors.
	Set(array any, index int, value any) error
}

// Handler exposes the capabilities of the mechanism backing a managed
// nested-object instance.
type Handler interface {
	// ProxiesFor reports whether the handler's instance stands in for t.
	ProxiesFor(t reflect.Type) bool

	// Store returns the instance's internal value store for in-place merge.
	Store() map[string]any
}

// Introspector recognizes managed nested-object instances among arbitrary
// values.
type Introspector interface {
	// HandlerOf returns the handler backing value. ok is true when value is
	// proxy-backed at all; a true ok with a nil Handler means the backing
	// handler exposes none of the Handler capabilities, which the engine
	// reports as a configuration error.
	HandlerOf(value any) (Handler, bool)
}

// Populator merges a value map into an existing plain (non-managed) object.
type Populator interface {
	Populate(target any, values map[string]any) error
}

// ListReconciler post-processes a resolved value map for list-typed
// properties. It is invoked once at the end of flat-map resolution.
type ListReconciler interface {
	Filter(s Schema, values map[string]any) error
}

// PrimitiveValidator checks a candidate value against a primitive declared
// type. Its verdict is returned to the caller as-is.
type PrimitiveValidator interface {
	Validate(name string, declared reflect.Type, value any) error
}
