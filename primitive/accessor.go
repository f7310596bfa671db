package primitive

import (
	"errors"
	"fmt"
	"reflect"

	"dynabean/schema"
	"dynabean/utils"
)

var (
	ErrNotPrimitiveArray = errors.New("value is not a primitive array")
	ErrNilElement        = errors.New("nil value for a primitive element")
	ErrElementMismatch   = errors.New("value does not fit the primitive element type")
)

// Accessor is the default schema.PrimitiveArrays implementation. It operates
// on typed slices whose element type classifies as a primitive kind, e.g.
// []int or []string. Go arrays passed as any are copies, so mutating them
// through an accessor would be lost; only slices are accepted.
type Accessor struct{}

func (Accessor) IsPrimitive(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Slice {
		return false
	}

	return FromReflectType(t.Elem()) != 0
}

// Get returns the boxed element at index.
func (a Accessor) Get(array any, index int) (any, error) {
	rv, err := a.value(array, index)
	if err != nil {
		return nil, err
	}

	return rv.Index(index).Interface(), nil
}

// Set replaces the element at index, converting between numeric kinds when
// the value does not fit the element type directly.
func (a Accessor) Set(array any, index int, value any) error {
	rv, err := a.value(array, index)
	if err != nil {
		return err
	}

	if value == nil {
		return ErrNilElement
	}

	elem := rv.Type().Elem()
	vv := reflect.ValueOf(value)

	switch {
	case vv.Type().AssignableTo(elem):
	case vv.Type().ConvertibleTo(elem) &&
		FromReflectType(vv.Type()).IsNumber() && FromReflectType(elem).IsNumber():
		vv = vv.Convert(elem)
	default:
		return fmt.Errorf("cannot store %s into %s element: %w", vv.Type(), elem, ErrElementMismatch)
	}

	rv.Index(index).Set(vv)

	return nil
}

func (a Accessor) value(array any, index int) (reflect.Value, error) {
	if array == nil {
		return reflect.Value{}, fmt.Errorf("nil array: %w", ErrNotPrimitiveArray)
	}

	rv := reflect.ValueOf(array)
	if !a.IsPrimitive(rv.Type()) {
		return reflect.Value{}, fmt.Errorf("%T: %w", array, ErrNotPrimitiveArray)
	}

	if !utils.IsInRange(0, index, rv.Len()-1) {
		return reflect.Value{}, &schema.RangeError{Index: index, Length: rv.Len()}
	}

	return rv, nil
}
