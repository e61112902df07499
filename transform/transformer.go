package transform

import (
	"fmt"
	"reflect"

	"transformable/selector"
)

// Callback computes a new value for a property. current is the value folded
// so far, initial the untouched value read from the target, w the wrapper
// being read and property the property name.
type Callback[V any] func(current, initial V, w *Wrapper, property string) V

type applyFunc func(current, initial any, w *Wrapper, property string) (any, error)

// Transformer is an immutable, prioritized rewriting rule for one property.
// Two transformers are the same only if they are the same pointer.
type Transformer struct {
	selector  selector.Selector
	property  string
	priority  int
	valueType reflect.Type
	apply     applyFunc
}

// New builds a transformer scoped to target. Selectors match the wrapper a
// property is read through, so target is normally the *Wrapper returned by
// Wrap. A raw struct pointer is accepted for the property check, but no
// wrapper ever matches it.
//
// The property must be a data property of target whose type is assignable
// to V.
func New[V any](target any, property string, priority int, cb Callback[V]) (*Transformer, error) {
	if cb == nil {
		return nil, ErrNilCallback
	}

	p, err := lookupProperty(target, property)
	if err != nil {
		return nil, fmt.Errorf("transformer for %q: %w", property, err)
	}

	if p.Kind != KindData {
		return nil, fmt.Errorf("transformer for %q: %w", property, ErrNotData)
	}

	vt := reflect.TypeFor[V]()
	if !p.Type.AssignableTo(vt) {
		return nil, fmt.Errorf("transformer for %q: %w: property is %s, callback takes %s",
			property, ErrTypeMismatch, p.Type, vt)
	}

	return newTransformer(selector.Identity(target), property, priority, cb), nil
}

// MustNew is like New but panics on error.
func MustNew[V any](target any, property string, priority int, cb Callback[V]) *Transformer {
	t, err := New(target, property, priority, cb)
	if err != nil {
		panic(err)
	}

	return t
}

// NewSelected builds a transformer for an arbitrary selector. Nothing is
// known about the selected objects up front, so a property whose value is
// not a V surfaces as ErrTypeMismatch when it is read.
func NewSelected[V any](sel selector.Selector, property string, priority int, cb Callback[V]) *Transformer {
	if cb == nil {
		panic(ErrNilCallback)
	}

	return newTransformer(sel, property, priority, cb)
}

func newTransformer[V any](sel selector.Selector, property string, priority int, cb Callback[V]) *Transformer {
	return &Transformer{
		selector:  sel,
		property:  property,
		priority:  priority,
		valueType: reflect.TypeFor[V](),
		apply: func(current, initial any, w *Wrapper, property string) (any, error) {
			c, ok := as[V](current)
			if !ok {
				return nil, fmt.Errorf("property %q: %w: holds %T, transformer takes %s",
					property, ErrTypeMismatch, current, reflect.TypeFor[V]())
			}

			i, ok := as[V](initial)
			if !ok {
				return nil, fmt.Errorf("property %q: %w: holds %T, transformer takes %s",
					property, ErrTypeMismatch, initial, reflect.TypeFor[V]())
			}

			return cb(c, i, w, property), nil
		},
	}
}

// Property returns the property name the transformer rewrites.
func (t *Transformer) Property() string { return t.property }

// Priority returns the priority; higher runs first.
func (t *Transformer) Priority() int { return t.priority }

// Selector returns the selector scoping the transformer.
func (t *Transformer) Selector() selector.Selector { return t.selector }

// ValueType returns the type the callback operates on.
func (t *Transformer) ValueType() reflect.Type { return t.valueType }

// AppliesTo reports whether t rewrites property when read through w.
func (t *Transformer) AppliesTo(w *Wrapper, property string) bool {
	return t.property == property && t.selector != nil && t.selector.Matches(w)
}

func (t *Transformer) String() string {
	return fmt.Sprintf("Transformer(%s, priority=%d, %s)", t.property, t.priority, t.valueType)
}

// as converts a property value to V. A nil interface converts only when V
// can hold nil itself.
func as[V any](v any) (V, bool) {
	if v == nil {
		var zero V
		return zero, reflect.TypeFor[V]().Kind() == reflect.Interface
	}

	out, ok := v.(V)

	return out, ok
}

// lookupProperty finds the descriptor of name on a wrapper or struct pointer.
func lookupProperty(target any, name string) (Property, error) {
	if w, ok := target.(*Wrapper); ok && w != nil {
		p, found := w.Property(name)
		if !found {
			return Property{}, fmt.Errorf("%w %q", ErrUnknownProperty, name)
		}

		return p, nil
	}

	ptr, err := structPointer(target)
	if err != nil {
		return Property{}, err
	}

	for _, p := range describe(ptr) {
		if p.Name == name {
			return p, nil
		}
	}

	return Property{}, fmt.Errorf("%w %q", ErrUnknownProperty, name)
}
