// Package schema defines the property-schema data model consumed by the
// path-expression engine, the collaborator interfaces the engine delegates
// to, and a YAML loader for schema definition files.
//
// # Key capabilities
//
//   - Descriptor model: declared type, indexed flag, array component type
//   - Tagged descriptor kinds (simple, indexed, list, untyped) dispatched
//     by switch instead of a descriptor-class registry
//   - Provider lookup with a non-nil empty Schema for unknown types
//   - Collaborator contracts: nested-object factory, primitive array
//     accessor, proxy handler introspection, list reconciliation
//   - Shared error types for data errors (invalid values) and
//     configuration errors (invalid delegates, unsupported handlers)
//   - YAML schema definitions with a name-to-type registry
//
// # Schema Overview
//
// A schema definition file has the following structure:
//
//	version: "1"
//	properties:
//	  - name: host
//	    type: string
//	  - name: pool
//	    type: connection
//	  - name: endpoints
//	    type: "[]any"
//	    indexed: true
//	    component: connection
//
// Type names resolve through a TypeRegistry seeded with the built-in
// primitive names; interface types such as "connection" above must be
// registered by the caller before loading.
package schema
