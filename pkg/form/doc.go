// Package form owns the runtime state of a schema-driven form: the value and
// error maps, change handling with type-specific coercion, visibility-aware
// payload computation, and the submission cycle with its re-entrancy guard.
//
// A Controller is seeded from a schema.Schema and mutated through two change
// entry points: HandleNativeChange for raw input events and HandleValueChange
// for components that already hold a typed value. Submit gates on the
// optional validator and hands the visible-value subset to a caller-supplied
// Handler; what happens after submission is the caller's concern.
package form
