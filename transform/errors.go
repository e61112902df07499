package transform

import "errors"

var (
	ErrInvalidTarget   = errors.New("target must be a non-nil pointer to a struct")
	ErrNilRegistry     = errors.New("registry is nil")
	ErrNilCallback     = errors.New("transformer callback is nil")
	ErrUnknownProperty = errors.New("unknown property")
	ErrNotData         = errors.New("property is callable, not data")
	ErrNotCallable     = errors.New("property is not callable")
	ErrReadOnly        = errors.New("property is read-only")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrInvalidSchema   = errors.New("invalid mutability schema")
	ErrBadArguments    = errors.New("bad call arguments")
)
