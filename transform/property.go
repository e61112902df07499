package transform

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"transformable/schema"
)

const tagName = "transform"

// Property describes one name exposed by a wrapper.
type Property struct {
	Name string
	Kind KindEnum
	// Enumerable properties are listed by Wrapper.Keys.
	Enumerable bool
	// Mutable data properties accept Wrapper.Set.
	Mutable bool
	// Type is the field type for data properties and the bound function
	// type for callables.
	Type reflect.Type
	// Depth is the embedding depth of the layer that declares the name;
	// the target's own struct is 0.
	Depth int

	index []int
	fn    reflect.Value
}

type layer struct {
	typ   reflect.Type
	value reflect.Value // invalid below a nil embedded pointer
	index []int
	depth int
}

// candidate is one declaration of a name met during the walk.
type candidate struct {
	prop      Property
	expose    bool
	ambiguous bool
	seq       int
}

// describe flattens the struct behind ptr and its embedded structs into an
// ordered property table. Layers are visited breadth first; within a layer
// fields come in declaration order followed by the methods declared there.
// Names resolve as Go selectors do: the shallowest declaration wins, and a
// name declared more than once at that depth is ambiguous and left out.
func describe(ptr reflect.Value) []Property {
	var (
		names   = map[string]*candidate{}
		visited = map[reflect.Type]struct{}{}
		level   = []layer{{typ: ptr.Elem().Type(), value: ptr.Elem()}}
	)

	offer := func(p Property, expose bool) {
		c, ok := names[p.Name]
		switch {
		case !ok:
			names[p.Name] = &candidate{prop: p, expose: expose, seq: len(names)}
		case c.prop.Depth == p.Depth:
			c.ambiguous = true
		}
	}

	_, declares := ptr.Interface().(schema.Declarer)

	for len(level) > 0 {
		var next []layer

		for _, l := range level {
			if _, ok := visited[l.typ]; ok {
				continue
			}

			var inner []reflect.Type

			for i := 0; i < l.typ.NumField(); i++ {
				f := l.typ.Field(i)
				index := append(slices.Clone(l.index), i)

				var fv reflect.Value
				if l.value.IsValid() {
					fv = l.value.Field(i)
				}

				if f.Anonymous {
					if typ, val, ok := embedded(f, fv); ok {
						inner = append(inner, typ)
						next = append(next, layer{typ: typ, value: val, index: index, depth: l.depth + 1})

						if f.IsExported() {
							offer(Property{Name: f.Name, Depth: l.depth}, false)
						}

						continue
					}
				}

				if !f.IsExported() {
					continue
				}

				skip, hidden := parseTag(f.Tag.Get(tagName))

				p := Property{
					Name:       f.Name,
					Kind:       KindData,
					Enumerable: !hidden,
					Type:       f.Type,
					Depth:      l.depth,
					index:      index,
				}

				if fv.IsValid() && f.Type.Kind() == reflect.Func && !fv.IsNil() {
					p.Kind = KindMethod
					p.fn = reflect.ValueOf(fv.Interface())
				}

				offer(p, !skip && fv.IsValid())
			}

			pt := reflect.PointerTo(l.typ)
			for i := 0; i < pt.NumMethod(); i++ {
				m := pt.Method(i)

				if promoted(m.Name, inner) && !declaredOn(l.typ, m.Name) {
					continue
				}

				offer(Property{Name: m.Name, Kind: KindMethod, Depth: l.depth},
					!declares || m.Name != schema.DeclarerMethod)
			}
		}

		for _, l := range level {
			visited[l.typ] = struct{}{}
		}

		level = next
	}

	// The method set of the target is authoritative for callables.
	rt := ptr.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		if declares && m.Name == schema.DeclarerMethod {
			continue
		}

		c, ok := names[m.Name]
		if ok && c.expose && !c.ambiguous && c.prop.index == nil {
			continue
		}

		seq := len(names)
		if ok {
			seq = c.seq
		}

		names[m.Name] = &candidate{prop: Property{Name: m.Name, Kind: KindMethod}, expose: true, seq: seq}
	}

	ordered := make([]*candidate, 0, len(names))
	for _, c := range names {
		ordered = append(ordered, c)
	}

	slices.SortFunc(ordered, func(a, b *candidate) int { return a.seq - b.seq })

	props := make([]Property, 0, len(ordered))
	for _, c := range ordered {
		if !c.expose || c.ambiguous {
			continue
		}

		p := c.prop
		if p.Kind == KindMethod && p.index == nil {
			bound := ptr.MethodByName(p.Name)
			if !bound.IsValid() {
				continue
			}

			p.Type = bound.Type()
			p.fn = bound
		}

		props = append(props, p)
	}

	return props
}

// embedded reports whether f links to a deeper struct layer.
func embedded(f reflect.StructField, fv reflect.Value) (reflect.Type, reflect.Value, bool) {
	switch {
	case f.Type.Kind() == reflect.Struct:
		return f.Type, fv, true
	case f.Type.Kind() == reflect.Pointer && f.Type.Elem().Kind() == reflect.Struct:
		if !fv.IsValid() || fv.IsNil() {
			return f.Type.Elem(), reflect.Value{}, true
		}

		return f.Type.Elem(), fv.Elem(), true
	default:
		return nil, reflect.Value{}, false
	}
}

// promoted reports whether one of the embedded layers has a method name.
func promoted(name string, inner []reflect.Type) bool {
	for _, t := range inner {
		if _, ok := reflect.PointerTo(t).MethodByName(name); ok {
			return true
		}
	}

	return false
}

// declaredOn reports whether t declares the method name itself instead of
// inheriting it. Inherited entries of a method set are compiler wrappers.
func declaredOn(t reflect.Type, name string) bool {
	if m, ok := reflect.PointerTo(t).MethodByName(name); ok && !generated(m.Func) {
		return true
	}

	if m, ok := t.MethodByName(name); ok && !generated(m.Func) {
		return true
	}

	return false
}

func generated(fn reflect.Value) bool {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return true
	}

	file, _ := f.FileLine(f.Entry())

	return file == "<autogenerated>"
}

// parseTag reads `transform:"-"` and `transform:",hidden"`.
func parseTag(tag string) (skip, hidden bool) {
	if tag == "-" {
		return true, false
	}

	opts := strings.Split(tag, ",")
	for _, opt := range opts[1:] {
		if strings.TrimSpace(opt) == "hidden" {
			hidden = true
		}
	}

	return false, hidden
}

// structPointer validates a wrap target.
func structPointer(target any) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: got %T", ErrInvalidTarget, target)
	}

	return v, nil
}

// EnumerableKeys returns the enumerable property names of target in the
// order a wrapper over it would list them.
func EnumerableKeys(target any) ([]string, error) {
	ptr, err := structPointer(target)
	if err != nil {
		return nil, err
	}

	return enumerable(describe(ptr)), nil
}

func enumerable(props []Property) []string {
	keys := make([]string, 0, len(props))
	for _, p := range props {
		if p.Enumerable {
			keys = append(keys, p.Name)
		}
	}

	return keys
}

// known maps every property name to whether it holds data.
func known(props []Property) map[string]bool {
	out := make(map[string]bool, len(props))
	for _, p := range props {
		out[p.Name] = p.Kind == KindData
	}

	return out
}
