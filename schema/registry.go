package schema

import (
	"reflect"
	"strings"
	"time"
)

// TypeRegistry resolves the type names used in schema definition files to
// reflect.Type tokens. It is seeded with the built-in primitive names;
// interface types must be registered by the caller.
type TypeRegistry struct {
	types map[string]reflect.Type
}

// NewTypeRegistry returns a registry seeded with the built-in type names.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: map[string]reflect.Type{
		"string":   reflect.TypeOf(""),
		"int":      reflect.TypeOf(int(0)),
		"int64":    reflect.TypeOf(int64(0)),
		"uint":     reflect.TypeOf(uint(0)),
		"uint64":   reflect.TypeOf(uint64(0)),
		"float32":  reflect.TypeOf(float32(0)),
		"float64":  reflect.TypeOf(float64(0)),
		"bool":     reflect.TypeOf(false),
		"time":     reflect.TypeOf(time.Time{}),
		"duration": reflect.TypeOf(time.Duration(0)),
		"any":      reflect.TypeOf((*any)(nil)).Elem(),
	}}
}

// Register binds a name to a type, replacing any previous binding.
func (r *TypeRegistry) Register(name string, t reflect.Type) {
	r.types[name] = t
}

// Lookup resolves a type name. A "[]" prefix resolves to a slice of the
// remaining name, applied recursively.
func (r *TypeRegistry) Lookup(name string) (reflect.Type, bool) {
	if elem, ok := strings.CutPrefix(name, "[]"); ok {
		t, found := r.Lookup(elem)
		if !found {
			return nil, false
		}

		return reflect.SliceOf(t), true
	}

	t, ok := r.types[name]

	return t, ok
}
