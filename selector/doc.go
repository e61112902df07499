// Package selector decides which wrapped instances a transformer is scoped to.
//
// A [Selector] is a pure predicate over candidate objects. The transform
// engine asks it whether a wrapper counts as the intended target of a
// transformer every time a property is resolved, so implementations must be
// deterministic and must never panic.
//
// The built-in [Identity] selector matches exactly one reference. The
// combinators [Any], [All] and [Not] and the [Func] adapter build larger
// predicates out of smaller ones.
package selector
