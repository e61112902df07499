package transform

import (
	"fmt"
	"reflect"

	"github.com/go-logr/logr"

	"transformable/schema"
)

// Wrapper is a frozen view over a target struct pointer whose data reads are
// resolved through a registry.
type Wrapper struct {
	target   reflect.Value
	registry *Registry
	schema   *schema.Schema
	props    []Property
	index    map[string]int
	sealed   bool
	logger   logr.Logger
}

// Wrap builds a wrapper for target, which must be a non-nil pointer to a
// struct. The wrapper keeps a reference to r, not a copy.
func Wrap(target any, r *Registry, opts ...Option) (*Wrapper, error) {
	ptr, err := structPointer(target)
	if err != nil {
		return nil, err
	}

	if r == nil {
		return nil, ErrNilRegistry
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := r.logger
	if cfg.logger != nil {
		logger = *cfg.logger
	}

	typeName := schema.TypeName(ptr.Elem().Type())
	props := describe(ptr)
	decl := declaration(ptr, &cfg)

	res := decl.Validate(known(props))
	for _, warning := range res.Warnings {
		logger.Info("mutability schema warning", "type", typeName, "diagnostic", warning.String())
	}

	if err := res.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	w := &Wrapper{
		target:   ptr,
		registry: r,
		schema:   decl,
		index:    make(map[string]int, len(props)),
		logger:   logger,
	}

	for _, p := range props {
		w.define(p)
	}

	w.sealed = true

	logger.V(1).Info("wrapped target",
		"type", typeName,
		"properties", len(w.props),
		"mutable", decl.MutableNames())

	return w, nil
}

// declaration picks the mutability schema for the target.
func declaration(ptr reflect.Value, cfg *config) *schema.Schema {
	if cfg.schema != nil {
		return cfg.schema
	}

	if s, ok := cfg.catalog.Lookup(ptr.Type()); ok {
		return s
	}

	if d, ok := ptr.Interface().(schema.Declarer); ok {
		return schema.FromNames(schema.TypeName(ptr.Elem().Type()), d.MutableProperties()...)
	}

	return nil
}

func (w *Wrapper) define(p Property) {
	if w.sealed {
		return
	}

	if _, exists := w.index[p.Name]; exists {
		return
	}

	p.Mutable = p.Kind == KindData && w.schema.IsMutable(p.Name)
	w.index[p.Name] = len(w.props)
	w.props = append(w.props, p)
}

func (w *Wrapper) lookup(name string) (*Property, error) {
	i, ok := w.index[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownProperty, name)
	}

	return &w.props[i], nil
}

// Get reads a property. Callables return the function bound to the target;
// data properties return the stored value folded through every applicable
// transformer.
func (w *Wrapper) Get(name string) (any, error) {
	p, err := w.lookup(name)
	if err != nil {
		return nil, err
	}

	if p.Kind == KindMethod {
		return p.fn.Interface(), nil
	}

	return w.resolve(p)
}

type folded struct {
	value any
	err   error
}

func (w *Wrapper) resolve(p *Property) (any, error) {
	initial, err := w.read(p)
	if err != nil {
		return nil, err
	}

	res := Fold(w.registry, folded{value: initial}, func(acc folded, t *Transformer) folded {
		if acc.err != nil || !t.AppliesTo(w, p.Name) {
			return acc
		}

		v, err := t.apply(acc.value, initial, w, p.Name)

		return folded{value: v, err: err}
	})

	if res.err != nil {
		return nil, res.err
	}

	return res.value, nil
}

// read returns the value stored on the target, bypassing transformers.
func (w *Wrapper) read(p *Property) (any, error) {
	f, err := w.target.Elem().FieldByIndexErr(p.index)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", p.Name, err)
	}

	return f.Interface(), nil
}

// Initial returns the value the target stores for a data property, without
// applying transformers.
func (w *Wrapper) Initial(name string) (any, error) {
	p, err := w.lookup(name)
	if err != nil {
		return nil, err
	}

	if p.Kind != KindData {
		return nil, fmt.Errorf("property %q: %w", name, ErrNotData)
	}

	return w.read(p)
}

// Set stores value on the target. Only data properties declared mutable
// accept writes; transformers are not involved.
func (w *Wrapper) Set(name string, value any) error {
	p, err := w.lookup(name)
	if err != nil {
		return err
	}

	if !p.Mutable {
		return fmt.Errorf("property %q: %w", name, ErrReadOnly)
	}

	rv, err := assignable(value, p.Type)
	if err != nil {
		return fmt.Errorf("property %q: %w", name, err)
	}

	f, err := w.target.Elem().FieldByIndexErr(p.index)
	if err != nil {
		return fmt.Errorf("property %q: %w", name, err)
	}

	f.Set(rv)

	return nil
}

// Call invokes a callable on the target and returns its results.
func (w *Wrapper) Call(name string, args ...any) ([]any, error) {
	p, err := w.lookup(name)
	if err != nil {
		return nil, err
	}

	if p.Kind != KindMethod {
		return nil, fmt.Errorf("property %q: %w", name, ErrNotCallable)
	}

	in, err := arguments(p.fn.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", name, err)
	}

	out := p.fn.Call(in)

	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}

	return results, nil
}

// Keys returns the enumerable property names in order.
func (w *Wrapper) Keys() []string {
	return enumerable(w.props)
}

// Has reports whether name is exposed, enumerable or not.
func (w *Wrapper) Has(name string) bool {
	_, ok := w.index[name]
	return ok
}

// Property returns the descriptor of name.
func (w *Wrapper) Property(name string) (Property, bool) {
	i, ok := w.index[name]
	if !ok {
		return Property{}, false
	}

	return w.props[i], true
}

// Properties returns every descriptor, including non-enumerable ones.
func (w *Wrapper) Properties() []Property {
	out := make([]Property, len(w.props))
	copy(out, w.props)

	return out
}

// Mutable reports whether name accepts Set.
func (w *Wrapper) Mutable(name string) bool {
	p, ok := w.Property(name)
	return ok && p.Mutable
}

// Target returns the wrapped struct pointer.
func (w *Wrapper) Target() any {
	return w.target.Interface()
}

// Registry returns the registry reads are resolved against.
func (w *Wrapper) Registry() *Registry {
	return w.registry
}

// Schema returns the mutability declaration in effect, or nil.
func (w *Wrapper) Schema() *schema.Schema {
	return w.schema
}

// Sealed reports whether the property table is frozen. It is true for every
// wrapper returned by Wrap.
func (w *Wrapper) Sealed() bool {
	return w.sealed
}

// Value reads a property and converts it to V.
func Value[V any](w *Wrapper, name string) (V, error) {
	v, err := w.Get(name)
	if err != nil {
		var zero V
		return zero, err
	}

	out, ok := as[V](v)
	if !ok {
		return out, fmt.Errorf("property %q: %w: holds %T, want %s", name, ErrTypeMismatch, v, reflect.TypeFor[V]())
	}

	return out, nil
}

// MustValue is like Value but panics on error.
func MustValue[V any](w *Wrapper, name string) V {
	v, err := Value[V](w, name)
	if err != nil {
		panic(err)
	}

	return v
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// assignable converts value into a reflect.Value settable into a slot of type t.
func assignable(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		if !nilable(t) {
			return reflect.Value{}, fmt.Errorf("%w: nil is not a %s", ErrTypeMismatch, t)
		}

		return reflect.Zero(t), nil
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrTypeMismatch, rv.Type(), t)
	}

	return rv, nil
}

// arguments checks args against the signature of fn.
func arguments(fn reflect.Type, args []any) ([]reflect.Value, error) {
	n := fn.NumIn()

	if fn.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: want at least %d, got %d", ErrBadArguments, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrBadArguments, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var t reflect.Type
		if fn.IsVariadic() && i >= n-1 {
			t = fn.In(n - 1).Elem()
		} else {
			t = fn.In(i)
		}

		rv, err := assignable(arg, t)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %w", ErrBadArguments, i, err)
		}

		in[i] = rv
	}

	return in, nil
}
