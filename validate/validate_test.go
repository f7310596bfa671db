package validate_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynabean/primitive"
	"dynabean/schema"
	"dynabean/validate"
)

type connection interface {
	Host() string
}

type publisher interface {
	Topic() string
}

var (
	connectionType = reflect.TypeOf((*connection)(nil)).Elem()
	publisherType  = reflect.TypeOf((*publisher)(nil)).Elem()
)

// proxyConn mimics a managed instance whose handler proxies for connection.
type proxyConn struct{}

func (proxyConn) Host() string { return "" }

func (proxyConn) ProxiesFor(t reflect.Type) bool { return t == connectionType }

func (proxyConn) Store() map[string]any { return map[string]any{} }

// opaqueProxy mimics a proxy-backed value whose handler exposes no
// capabilities the engine understands.
type opaqueProxy struct{}

type fakeIntrospector struct{}

func (fakeIntrospector) HandlerOf(value any) (schema.Handler, bool) {
	switch value.(type) {
	case proxyConn:
		return proxyConn{}, true
	case opaqueProxy:
		return nil, true
	default:
		return nil, false
	}
}

// directConn satisfies connection without any proxy machinery.
type directConn struct{}

func (directConn) Host() string { return "" }

func testSchema() schema.Schema {
	return schema.Schema{
		"name":     {Name: "name", Type: reflect.TypeOf("")},
		"port":     {Name: "port", Type: reflect.TypeOf(int(0))},
		"pool":     {Name: "pool", Type: connectionType},
		"sink":     {Name: "sink", Type: publisherType},
		"tags":     {Name: "tags", Type: reflect.TypeOf([]any(nil))},
		"slots":    {Name: "slots", Indexed: true},
		"backends": {Name: "backends", Type: reflect.TypeOf([]any(nil)), Indexed: true, Component: connectionType},
	}
}

func newValidator() *validate.Validator {
	return validate.New(fakeIntrospector{}, primitive.Checker{})
}

func TestValidateValueUnknownProperty(t *testing.T) {
	err := newValidator().ValidateValue(testSchema(), "missing", "anything")
	require.ErrorIs(t, err, schema.ErrInvalidValue)

	var invalid *schema.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "unknown_property", invalid.Code)
}

func TestValidateValueUntypedAndListAcceptAnything(t *testing.T) {
	v := newValidator()
	s := testSchema()

	require.NoError(t, v.ValidateValue(s, "slots", struct{}{}))
	require.NoError(t, v.ValidateValue(s, "tags", 42))
	require.NoError(t, v.ValidateValue(s, "tags", nil))
	require.NoError(t, v.ValidateValue(s, "backends", []any{nil}))
}

func TestValidateValuePrimitiveDelegation(t *testing.T) {
	v := newValidator()
	s := testSchema()

	require.NoError(t, v.ValidateValue(s, "port", 8080))
	require.ErrorIs(t, v.ValidateValue(s, "port", nil), schema.ErrInvalidValue)
	require.ErrorIs(t, v.ValidateValue(s, "name", 1), schema.ErrInvalidValue)
}

func TestValidateValueNilAcceptedForNonPrimitive(t *testing.T) {
	require.NoError(t, newValidator().ValidateValue(testSchema(), "pool", nil))
}

func TestValidateValueProxy(t *testing.T) {
	v := newValidator()
	s := testSchema()

	require.NoError(t, v.ValidateValue(s, "pool", proxyConn{}))

	// recognized handler, wrong declared type
	err := v.ValidateValue(s, "sink", proxyConn{})
	require.ErrorIs(t, err, schema.ErrInvalidValue)

	var invalid *schema.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "proxy_type_mismatch", invalid.Code)

	// proxy-backed but the handler exposes no capabilities
	err = v.ValidateValue(s, "pool", opaqueProxy{})
	require.ErrorIs(t, err, schema.ErrUnsupportedHandler)
}

func TestValidateValueAssignability(t *testing.T) {
	v := newValidator()
	s := testSchema()

	require.NoError(t, v.ValidateValue(s, "pool", directConn{}))

	err := v.ValidateValue(s, "pool", struct{}{})
	require.ErrorIs(t, err, schema.ErrInvalidValue)

	var invalid *schema.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "type_mismatch", invalid.Code)
	assert.Equal(t, connectionType, invalid.Declared)
}

func TestValidateAllFailsOnFirstViolation(t *testing.T) {
	v := newValidator()

	err := v.ValidateAll(testSchema(), map[string]any{
		"name": "ok",
		"port": "not a port",
		"pool": struct{}{},
	})
	require.Error(t, err)

	// entries are visited in name order, so "pool" is reported first
	var invalid *schema.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "pool", invalid.Property)
}

func TestCheckCollectsEveryViolation(t *testing.T) {
	v := newValidator()

	res := v.Check(testSchema(), map[string]any{
		"name":  "ok",
		"port":  "not a port",
		"pool":  struct{}{},
		"extra": 1,
	})
	require.True(t, res.HasErrors())
	require.Len(t, res.Errors, 3)

	codes := make([]string, len(res.Errors))
	for i, d := range res.Errors {
		codes[i] = d.Code
	}

	assert.Equal(t, []string{"unknown_property", "type_mismatch", "type_mismatch"}, codes)
	require.Error(t, res.Error())
}

func TestValidateDelegate(t *testing.T) {
	indexedDesc := schema.Descriptor{
		Name:      "backends",
		Type:      reflect.TypeOf([]any(nil)),
		Indexed:   true,
		Component: connectionType,
	}

	t.Run("accepts matching indexed delegate", func(t *testing.T) {
		delegate := schema.Descriptor{
			Type:      reflect.TypeOf([]any(nil)),
			Indexed:   true,
			Component: reflect.TypeOf((*any)(nil)).Elem(),
		}
		require.NoError(t, validate.ValidateDelegate("backends", indexedDesc, delegate))
	})

	t.Run("rejects non-array delegate for indexed property", func(t *testing.T) {
		delegate := schema.Descriptor{Type: reflect.TypeOf(""), Indexed: true}
		err := validate.ValidateDelegate("backends", indexedDesc, delegate)
		require.ErrorIs(t, err, schema.ErrInvalidDelegate)
	})

	t.Run("rejects component mismatch", func(t *testing.T) {
		delegate := schema.Descriptor{
			Type:      reflect.TypeOf([]any(nil)),
			Indexed:   true,
			Component: connectionType,
		}
		err := validate.ValidateDelegate("backends", indexedDesc, delegate)
		require.ErrorIs(t, err, schema.ErrInvalidDelegate)
	})

	t.Run("rejects non-indexed delegate for indexed property", func(t *testing.T) {
		delegate := schema.Descriptor{
			Type:      reflect.TypeOf([]any(nil)),
			Component: reflect.TypeOf((*any)(nil)).Elem(),
		}
		err := validate.ValidateDelegate("backends", indexedDesc, delegate)
		require.ErrorIs(t, err, schema.ErrInvalidDelegate)
	})

	t.Run("rejects declared type mismatch", func(t *testing.T) {
		desc := schema.Descriptor{Name: "pool", Type: connectionType}
		delegate := schema.Descriptor{Type: publisherType}
		err := validate.ValidateDelegate("pool", desc, delegate)
		require.ErrorIs(t, err, schema.ErrInvalidDelegate)
	})
}

// rejectingPrimitives fails every primitive with a plain error carrying no
// code of its own.
type rejectingPrimitives struct{}

func (rejectingPrimitives) Validate(name string, _ reflect.Type, _ any) error {
	return errors.New("rejected " + name)
}

func TestCheckCodesCollaboratorErrors(t *testing.T) {
	v := validate.New(fakeIntrospector{}, rejectingPrimitives{})

	res := v.Check(testSchema(), map[string]any{
		"pool": opaqueProxy{},
		"port": 8080,
	})
	require.Len(t, res.Errors, 2)

	assert.Equal(t, "unsupported_handler", res.Errors[0].Code)
	assert.Equal(t, "pool", res.Errors[0].Property)
	assert.Equal(t, "invalid_value", res.Errors[1].Code)
	assert.Equal(t, "port", res.Errors[1].Property)
}
