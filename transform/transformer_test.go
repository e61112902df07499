package transform

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transformable/selector"
)

type item struct {
	Count int
	Label string
	Meta  any
}

func (i *item) Use() { i.Count-- }

func keep[V any](current, _ V, _ *Wrapper, _ string) V { return current }

func TestNew_Validation(t *testing.T) {
	w, err := Wrap(&item{Count: 2}, NewRegistry())
	require.NoError(t, err)

	tests := []struct {
		name    string
		build   func() (*Transformer, error)
		wantErr error
	}{
		{
			name:  "data property on wrapper",
			build: func() (*Transformer, error) { return New(w, "Count", 0, keep[int]) },
		},
		{
			name:  "data property on struct pointer",
			build: func() (*Transformer, error) { return New(&item{}, "Label", 0, keep[string]) },
		},
		{
			name:  "interface callback type",
			build: func() (*Transformer, error) { return New(w, "Count", 0, keep[any]) },
		},
		{
			name:    "unknown property",
			build:   func() (*Transformer, error) { return New(w, "Missing", 0, keep[int]) },
			wantErr: ErrUnknownProperty,
		},
		{
			name:    "unknown property on struct pointer",
			build:   func() (*Transformer, error) { return New(&item{}, "Missing", 0, keep[int]) },
			wantErr: ErrUnknownProperty,
		},
		{
			name:    "callable property",
			build:   func() (*Transformer, error) { return New(w, "Use", 0, keep[func()]) },
			wantErr: ErrNotData,
		},
		{
			name:    "wrong value type",
			build:   func() (*Transformer, error) { return New(w, "Count", 0, keep[string]) },
			wantErr: ErrTypeMismatch,
		},
		{
			name:    "invalid target",
			build:   func() (*Transformer, error) { return New(42, "Count", 0, keep[int]) },
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "nil callback",
			build:   func() (*Transformer, error) { return New[int](w, "Count", 0, nil) },
			wantErr: ErrNilCallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := tt.build()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, tr)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(&item{}, "Missing", 0, keep[int]) })
}

func TestTransformer_Accessors(t *testing.T) {
	w, err := Wrap(&item{}, NewRegistry())
	require.NoError(t, err)

	tr := MustNew(w, "Count", 7, keep[int])

	assert.Equal(t, "Count", tr.Property())
	assert.Equal(t, 7, tr.Priority())
	assert.Equal(t, reflect.TypeFor[int](), tr.ValueType())
	assert.True(t, tr.Selector().Matches(w))
	assert.Equal(t, "Transformer(Count, priority=7, int)", tr.String())
}

func TestTransformer_AppliesTo(t *testing.T) {
	r := NewRegistry()
	w1, err := Wrap(&item{}, r)
	require.NoError(t, err)
	w2, err := Wrap(&item{}, r)
	require.NoError(t, err)

	tr := MustNew(w1, "Count", 0, keep[int])

	assert.True(t, tr.AppliesTo(w1, "Count"))
	assert.False(t, tr.AppliesTo(w1, "Label"))
	assert.False(t, tr.AppliesTo(w2, "Count"))

	unscoped := NewSelected[int](nil, "Count", 0, keep[int])
	assert.False(t, unscoped.AppliesTo(w1, "Count"))

	either := NewSelected(selector.Any(selector.Identity(w1), selector.Identity(w2)), "Count", 0, keep[int])
	assert.True(t, either.AppliesTo(w2, "Count"))
}

func TestAs(t *testing.T) {
	v, ok := as[int](3)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = as[int]("3")
	assert.False(t, ok)

	_, ok = as[int](nil)
	assert.False(t, ok)

	e, ok := as[error](nil)
	assert.True(t, ok)
	assert.Nil(t, e)

	var p *item
	got, ok := as[*item](p)
	assert.True(t, ok)
	assert.Nil(t, got)
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag          string
		skip, hidden bool
	}{
		{tag: ""},
		{tag: "-", skip: true},
		{tag: ",hidden", hidden: true},
		{tag: "name, hidden", hidden: true},
		{tag: "-,"},
		{tag: ",other"},
	}

	for _, tt := range tests {
		skip, hidden := parseTag(tt.tag)
		assert.Equal(t, tt.skip, skip, tt.tag)
		assert.Equal(t, tt.hidden, hidden, tt.tag)
	}
}

func TestDescribe_RecursiveEmbedding(t *testing.T) {
	type node struct {
		*node

		Value int
	}

	props := describe(reflect.ValueOf(&node{Value: 1, node: &node{Value: 2}}))

	require.Len(t, props, 1)
	assert.Equal(t, "Value", props[0].Name)
	assert.Equal(t, 0, props[0].Depth)
}

type pinger struct{}

func (*pinger) Ping() {}

type ponger struct{}

func (ponger) Pong() {}

type inheritsPing struct{ pinger }

type overridesPing struct{ pinger }

func (*overridesPing) Ping() {}

type inheritsPong struct{ ponger }

func TestDeclaredOn(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		name string
		want bool
	}{
		{typ: reflect.TypeFor[item](), name: "Use", want: true},
		{typ: reflect.TypeFor[pinger](), name: "Ping", want: true},
		{typ: reflect.TypeFor[ponger](), name: "Pong", want: true},
		{typ: reflect.TypeFor[inheritsPing](), name: "Ping", want: false},
		{typ: reflect.TypeFor[overridesPing](), name: "Ping", want: true},
		{typ: reflect.TypeFor[inheritsPong](), name: "Pong", want: false},
		{typ: reflect.TypeFor[item](), name: "Missing", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, declaredOn(tt.typ, tt.name), "%s.%s", tt.typ, tt.name)
	}
}

func TestWrapper_DefineAfterSeal(t *testing.T) {
	w, err := Wrap(&item{}, NewRegistry())
	require.NoError(t, err)

	w.define(Property{Name: "Injected", Kind: KindData, Type: reflect.TypeFor[int]()})

	assert.False(t, w.Has("Injected"))
	assert.Len(t, w.Properties(), 4)
}

func TestKindEnum_String(t *testing.T) {
	assert.Equal(t, "KindData", KindData.String())
	assert.Equal(t, "KindMethod", KindMethod.String())
	assert.Equal(t, "KindEnum(0)", KindEnum(0).String())
}
