// Package indexed resolves element reads and writes for indexed properties.
//
// The index is taken from the property name itself ("endpoints[2]"). A name
// without a concrete index makes a read return absent and a write a no-op;
// this is deliberate permissiveness, not an error. An index outside the
// bounds of the array is an error and is propagated.
//
// Object arrays are []any values mutated in place. Reading an absent element
// whose declared component type is an interface constructs the element
// through the factory and stores it back, so the same slot yields the
// identical instance on every subsequent read. Anything that is not an []any
// is delegated to the primitive-array accessor.
package indexed

import (
	"reflect"

	"dynabean/pathexpr"
	"dynabean/schema"
	"dynabean/utils"
)

// Resolver reads and writes indexed elements. Arrays handles primitive
// arrays; Factory constructs missing nested elements of object arrays.
type Resolver struct {
	Arrays  schema.PrimitiveArrays
	Factory schema.Factory
}

func New(arrays schema.PrimitiveArrays, factory schema.Factory) *Resolver {
	return &Resolver{Arrays: arrays, Factory: factory}
}

// Get returns the element addressed by the index operator in name.
// component is the array's declared element type; it controls lazy
// construction and may be nil.
func (r *Resolver) Get(name string, array any, component reflect.Type) (any, error) {
	idx, ok := pathexpr.IndexOf(name)
	if !ok {
		return nil, nil
	}

	items, isObject := array.([]any)
	if !isObject {
		return r.Arrays.Get(array, idx)
	}

	if !utils.IsInRange(0, idx, len(items)-1) {
		return nil, &schema.RangeError{Index: idx, Length: len(items)}
	}

	if items[idx] != nil {
		return items[idx], nil
	}

	if component == nil || component.Kind() != reflect.Interface {
		return nil, nil
	}

	elem, err := r.Factory.Create(name, component)
	if err != nil {
		return nil, err
	}

	items[idx] = elem

	return elem, nil
}

// Set stores value at the element addressed by the index operator in name,
// overwriting any prior value.
func (r *Resolver) Set(name string, array any, value any) error {
	idx, ok := pathexpr.IndexOf(name)
	if !ok {
		return nil
	}

	items, isObject := array.([]any)
	if !isObject {
		return r.Arrays.Set(array, idx, value)
	}

	if !utils.IsInRange(0, idx, len(items)-1) {
		return &schema.RangeError{Index: idx, Length: len(items)}
	}

	items[idx] = value

	return nil
}
