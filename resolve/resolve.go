// Package resolve turns flat value maps with dotted keys into properly
// nested structure.
//
// A key like "pool.host" is split into its parent property "pool" and child
// entry "host"; all children of one parent are gathered and either seeded
// into a new nested instance built by the factory, or merged into the
// instance already stored under the parent key. Resolution is restricted to
// one level of dotted nesting even though path parsing itself supports
// arbitrary depth; deeper keys are rejected outright.
//
// Groups whose parent is unknown in the schema are dropped silently, while
// flat keys are never checked here at all; validation is a separate pass.
// Callers that depend on stricter behavior must validate before resolving.
package resolve

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"dynabean/schema"
	"dynabean/utils"
)

// Resolver nests dotted keys of flat value maps. Factory builds new nested
// instances; Handlers recognizes managed instances for in-place store
// merges; Objects populates plain existing objects; Lists runs once after
// resolution. Handlers and Lists may be nil.
type Resolver struct {
	Factory  schema.Factory
	Handlers schema.Introspector
	Objects  schema.Populator
	Lists    schema.ListReconciler
}

func New(factory schema.Factory, handlers schema.Introspector, objects schema.Populator, lists schema.ListReconciler) *Resolver {
	return &Resolver{Factory: factory, Handlers: handlers, Objects: objects, Lists: lists}
}

// Resolve mutates values in place: dotted keys are removed and replaced by
// nested instances under their parent keys. It is a no-op on an empty map.
func (r *Resolver) Resolve(s schema.Schema, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}

	nested, dotted, err := group(values)
	if err != nil {
		return err
	}

	for _, key := range dotted {
		delete(values, key)
	}

	parents := maps.Keys(nested)
	slices.Sort(parents)

	for _, parent := range parents {
		if err := r.apply(s, values, parent, nested[parent]); err != nil {
			return err
		}
	}

	if r.Lists != nil {
		return r.Lists.Filter(s, values)
	}

	return nil
}

// group gathers the children of every dotted key under their parent name and
// returns the dotted keys scheduled for removal. Keys nested deeper than one
// level are rejected.
func group(values map[string]any) (map[string]map[string]any, []string, error) {
	nested := map[string]map[string]any{}

	var dotted []string

	keys := maps.Keys(values)
	slices.Sort(keys)

	for _, key := range keys {
		switch strings.Count(key, ".") {
		case 0:
			continue
		case 1:
			parent, child := utils.Unpack2(strings.SplitN(key, ".", 2))

			group := nested[parent]
			if group == nil {
				group = map[string]any{}
				nested[parent] = group
			}

			group[child] = values[key]
			dotted = append(dotted, key)
		default:
			return nil, nil, &schema.InvalidValueError{
				Code:     "nested_too_deep",
				Property: key,
				Reason:   "nested properties deeper than one level are not supported",
			}
		}
	}

	return nested, dotted, nil
}

// apply resolves one (parent, children) group against the schema and merges
// the result back into values.
func (r *Resolver) apply(s schema.Schema, values map[string]any, parent string, children map[string]any) error {
	desc, known := s[parent]
	if !known {
		// unknown parents are dropped, not rejected
		return nil
	}

	if desc.Type == nil || desc.Type.Kind() != reflect.Interface {
		return &schema.InvalidValueError{
			Code:     "nested_not_interface",
			Property: parent,
			Declared: desc.Type,
			Reason:   "nested property must have an interface type",
		}
	}

	if existing := values[parent]; existing != nil {
		return r.merge(parent, existing, children)
	}

	instance, err := r.Factory.CreateSeeded(parent, desc.Type, children)
	if err != nil {
		return err
	}

	values[parent] = instance

	return nil
}

// merge folds children into an instance that already sits under the parent
// key: managed instances get their internal store extended, plain objects go
// through the populate collaborator.
func (r *Resolver) merge(parent string, existing any, children map[string]any) error {
	if r.Handlers != nil {
		if h, ok := r.Handlers.HandlerOf(existing); ok {
			if h == nil {
				return fmt.Errorf("property %q: %w", parent, schema.ErrUnsupportedHandler)
			}

			store := h.Store()
			for child, value := range children {
				store[child] = value
			}

			return nil
		}
	}

	return r.Objects.Populate(existing, children)
}
