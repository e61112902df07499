package selector

import "reflect"

// Selector answers whether a candidate is the intended target of a transformer.
type Selector interface {
	Matches(candidate any) bool
}

// The Func type is an adapter to allow the use of ordinary functions as Selector.
type Func func(candidate any) bool

// Matches calls f(candidate).
func (f Func) Matches(candidate any) bool {
	return f(candidate)
}

type identity struct {
	target any
}

// Identity returns a selector matching only the given reference.
//
// Pointers, maps, channels and funcs compare by address. Other comparable
// values compare by value, so scope to a pointer when identity matters.
// Candidates that cannot be compared never match.
func Identity(target any) Selector {
	return identity{target: target}
}

func (s identity) Matches(candidate any) bool {
	return same(s.target, candidate)
}

func same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	// Comparable looks through interface fields at the dynamic values.
	if !va.Comparable() || !vb.Comparable() {
		return false
	}

	return va.Equal(vb)
}

// Any matches when at least one of the selectors matches.
func Any(selectors ...Selector) Selector {
	return Func(func(candidate any) bool {
		for _, s := range selectors {
			if s != nil && s.Matches(candidate) {
				return true
			}
		}

		return false
	})
}

// All matches when every selector matches. An empty All matches everything.
func All(selectors ...Selector) Selector {
	return Func(func(candidate any) bool {
		for _, s := range selectors {
			if s == nil || !s.Matches(candidate) {
				return false
			}
		}

		return true
	})
}

// Not inverts s. A nil selector never matches, so Not(nil) matches everything.
func Not(s Selector) Selector {
	return Func(func(candidate any) bool {
		return s == nil || !s.Matches(candidate)
	})
}
