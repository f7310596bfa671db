package schema

import "reflect"

type DescriptorEnum int

const (
	DescriptorUnknown DescriptorEnum = iota
	DescriptorUntyped
	DescriptorList
	DescriptorIndexed
	DescriptorSimple

	// DescriptorTotal is a constant that represents the total number of kinds defined
	DescriptorTotal = int(iota)
)

// Descriptor describes a single property of a managed type.
type Descriptor struct {
	// Name is the property name.
	Name string

	// Type is the declared property type. It is nil for index-only
	// descriptors that declare no scalar type.
	Type reflect.Type

	// Indexed reports whether the property supports indexed element access.
	Indexed bool

	// Component is the array element type. It is set only when Indexed.
	Component reflect.Type
}

// Kind classifies the descriptor for dispatch. Untyped descriptors take
// precedence over everything else; list-typed properties over indexed ones.
func (d Descriptor) Kind() DescriptorEnum {
	switch {
	case d.Type == nil:
		return DescriptorUntyped
	case d.Type.Kind() == reflect.Slice:
		return DescriptorList
	case d.Indexed:
		return DescriptorIndexed
	default:
		return DescriptorSimple
	}
}

// Schema maps property names to their descriptors. It is treated as
// read-only by the engine.
type Schema map[string]Descriptor

// Provider resolves the property schema of a managed type.
//
// Implementations must return an empty, non-nil Schema for unknown types,
// never nil.
type Provider interface {
	Lookup(t reflect.Type) Schema
}

// MapProvider is a static Provider backed by a plain map.
type MapProvider map[reflect.Type]Schema

func (m MapProvider) Lookup(t reflect.Type) Schema {
	if s, ok := m[t]; ok {
		return s
	}

	return Schema{}
}
