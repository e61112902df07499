// Package transform overlays computed values onto existing objects without
// touching their code.
//
// A [Wrapper] exposes every property of a target struct pointer. Reads of
// data properties are resolved on every access by folding the transformers
// held in a [Registry] over the value stored on the target. Writes and
// method calls go straight to the target.
//
// # Properties
//
// The wrapper walks the target's struct and its embedded structs, nearest
// layer first, and records each exported name once:
//
//   - exported fields become data properties, enumerable unless tagged
//     `transform:",hidden"`; `transform:"-"` leaves a field out entirely
//   - exported methods (own and promoted) become callables bound to the
//     target, so calling them mutates the real target
//   - func-typed fields holding a function at wrap time become callables
//     too; nil ones stay data properties
//
// Names resolve the way Go selectors do. A name found on a nearer layer
// shadows the same name further down, and a method declared on a layer
// shadows whatever its embedded structs define under that name. A name
// declared twice on the nearest layer that has it is ambiguous and is not
// exposed. The table is frozen at construction: fields or kinds that change
// later are not re-examined.
//
// # Resolution
//
// Reading a data property p starts from the value v stored on the target
// and applies, from highest to lowest priority, every transformer t with
// t.Property() == p whose selector matches the wrapper:
//
//	value = t.callback(value, v, wrapper, p)
//
// Transformers with equal priority run in the order they were added. The
// registry is consulted live, so adding or removing transformers changes the
// next read.
//
// # Writes
//
// Only properties declared mutable by the target's [schema.Schema] accept
// [Wrapper.Set]; the value is stored on the target as is, bypassing every
// transformer. All other writes fail with [ErrReadOnly].
//
// # Concurrency
//
// Registries and wrappers are not safe for concurrent use. Callbacks must be
// pure: the number of times they run is not guaranteed, and they must not
// mutate the registry they are folded from.
package transform
