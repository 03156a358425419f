// Package library defines node-type descriptors and the registry the
// synthesis pipeline draws from.
//
// A Declaration is the authoring form of a node type: a name, an ordered
// required-input type list, an ordered optional-input type list, an ordered
// output type list, and one description template per output. At registration
// time every declaration expands into one concrete Descriptor per subset of
// its optional inputs; each expanded descriptor has a fixed required-input
// list (required ++ chosen subset, declaration order) and a distinct,
// deterministic name, so sibling expansions are never interchangeable during
// search or canonical hashing.
//
// The Registry performs a startup self-check: every concrete descriptor must
// be reachable from exactly one declaration, names must be unique, and each
// declaration's template arity must match its output arity. Violations are
// reported as ErrValidation-class errors and are fatal — they indicate an
// authoring defect, never a runtime condition.
//
// Libraries can be authored in Go (see Standard) or loaded from the YAML
// schema (see LoadYAML).
package library
