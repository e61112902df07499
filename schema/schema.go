package schema

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"transformable/internal/common"
)

var (
	ErrEmptyType     = errors.New("schema type name is empty")
	ErrDuplicateType = errors.New("schema declared more than once")
)

// Declarer is implemented by types that declare their own mutable properties.
// The declaring method is metadata and is never exposed as a property.
type Declarer interface {
	MutableProperties() []string
}

// DeclarerMethod is the method name of [Declarer].
const DeclarerMethod = "MutableProperties"

// Property is a single entry of a mutability declaration.
type Property struct {
	Name    string `yaml:"name"`
	Mutable bool   `yaml:"mutable"`
}

// Schema is the mutability declaration of one type.
type Schema struct {
	// Type is the declaring type, see TypeName.
	Type string `yaml:"type"`
	// Mutable is a shorthand list of mutable property names; Normalize folds
	// it into Properties.
	Mutable []string `yaml:"mutable,omitempty"`
	// Properties are the ordered property records.
	Properties []Property `yaml:"properties,omitempty"`
}

// FromNames builds a schema marking the given names mutable.
func FromNames(typeName string, names ...string) *Schema {
	s := &Schema{Type: typeName}
	for _, name := range names {
		s.Properties = append(s.Properties, Property{Name: name, Mutable: true})
	}

	return s
}

// For builds a schema for T marking the given names mutable.
func For[T any](names ...string) *Schema {
	return FromNames(TypeName(reflect.TypeFor[T]()), names...)
}

// Normalize expands the Mutable shorthand into Properties. Shorthand entries
// come first, in their listed order.
func (s *Schema) Normalize() {
	if len(s.Mutable) == 0 {
		return
	}

	expanded := make([]Property, 0, len(s.Mutable)+len(s.Properties))
	for _, name := range s.Mutable {
		expanded = append(expanded, Property{Name: name, Mutable: true})
	}

	s.Properties = append(expanded, s.Properties...)
	s.Mutable = nil
}

// MutableNames returns the mutable property names in declaration order,
// without duplicates. Shorthand names are included even before Normalize.
func (s *Schema) MutableNames() []string {
	if s == nil {
		return nil
	}

	var names []string
	for _, name := range s.Mutable {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	for _, p := range s.Properties {
		if p.Mutable && !slices.Contains(names, p.Name) {
			names = append(names, p.Name)
		}
	}

	return names
}

// IsMutable reports whether name is declared mutable.
func (s *Schema) IsMutable(name string) bool {
	return slices.Contains(s.MutableNames(), name)
}

// Catalog indexes schemas by type name.
type Catalog struct {
	schemas map[string]*Schema
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		schemas: make(map[string]*Schema),
	}
}

// Add registers s under its type name.
func (c *Catalog) Add(s *Schema) error {
	if s == nil || s.Type == "" {
		return ErrEmptyType
	}

	if _, exists := c.schemas[s.Type]; exists {
		return fmt.Errorf("type %q: %w", s.Type, ErrDuplicateType)
	}

	c.schemas[s.Type] = s

	return nil
}

// Get returns the schema registered under name, or nil.
func (c *Catalog) Get(name string) *Schema {
	return c.schemas[name]
}

// Lookup finds the schema for t, trying the qualified name before the alias
// form. Pointer types resolve to their element type.
func (c *Catalog) Lookup(t reflect.Type) (*Schema, bool) {
	if c == nil || t == nil {
		return nil, false
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if s, ok := c.schemas[QualifiedTypeName(t)]; ok {
		return s, true
	}

	s, ok := c.schemas[TypeName(t)]

	return s, ok
}

// Len returns the number of registered schemas.
func (c *Catalog) Len() int {
	return len(c.schemas)
}

// TypeName returns the package alias form of a named type, e.g. "game.Unit".
// Unnamed types return their Go syntax.
func TypeName(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return common.PkgAlias(t.PkgPath()) + "." + t.Name()
}

// QualifiedTypeName returns the full import path form of a named type.
func QualifiedTypeName(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
