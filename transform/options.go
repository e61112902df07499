package transform

import (
	"github.com/go-logr/logr"

	"transformable/schema"
)

// Option configures Wrap.
type Option func(*config)

type config struct {
	schema  *schema.Schema
	catalog *schema.Catalog
	logger  *logr.Logger
}

// WithSchema declares the mutable properties explicitly, taking precedence
// over a catalog entry or a Declarer implementation.
func WithSchema(s *schema.Schema) Option {
	return func(c *config) {
		c.schema = s
	}
}

// WithCatalog looks the target's declaration up by type name.
func WithCatalog(catalog *schema.Catalog) Option {
	return func(c *config) {
		c.catalog = catalog
	}
}

// WithLogger overrides the logger inherited from the registry.
func WithLogger(logger logr.Logger) Option {
	return func(c *config) {
		c.logger = &logger
	}
}
