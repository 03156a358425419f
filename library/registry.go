// Package library: Registry construction and the startup self-check.
package library

import (
	"errors"
	"fmt"
)

// ErrValidation classifies every library self-check failure. Validation
// errors are fatal at startup; they indicate an authoring defect and are
// never deferred to runtime. Branch with errors.Is(err, ErrValidation).
var ErrValidation = errors.New("library: validation failed")

// Registry is a read-only, name-indexed store of concrete descriptors,
// built once at startup from declarations. It is safe for concurrent reads
// after construction.
type Registry struct {
	decls   []Declaration
	ordered []Descriptor
	byName  map[string]Descriptor
}

// NewRegistry expands every declaration and validates the result. It
// returns an ErrValidation-class error on duplicate names, template/output
// arity mismatches, empty names or types, or any descriptor not traceable
// to exactly one declaration.
// Complexity: O(Σ 2^len(Optional_i) · len(Inputs_i)).
func NewRegistry(decls ...Declaration) (*Registry, error) {
	r := &Registry{
		decls:  append([]Declaration(nil), decls...),
		byName: make(map[string]Descriptor),
	}

	for _, decl := range r.decls {
		if err := checkDeclaration(decl); err != nil {
			return nil, err
		}
		for _, d := range Expand(decl) {
			if _, dup := r.byName[d.Name]; dup {
				return nil, fmt.Errorf("library: duplicate descriptor name %q: %w", d.Name, ErrValidation)
			}
			r.byName[d.Name] = d
			r.ordered = append(r.ordered, d)
		}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// checkDeclaration verifies per-declaration invariants before expansion.
func checkDeclaration(decl Declaration) error {
	if decl.Name == "" {
		return fmt.Errorf("library: declaration with empty name: %w", ErrValidation)
	}
	if len(decl.Templates) != len(decl.Outputs) {
		return fmt.Errorf("library: declaration %q: %d templates for %d outputs: %w",
			decl.Name, len(decl.Templates), len(decl.Outputs), ErrValidation)
	}
	for _, t := range decl.Inputs {
		if t == "" {
			return fmt.Errorf("library: declaration %q: empty input type: %w", decl.Name, ErrValidation)
		}
	}
	for _, t := range decl.Optional {
		if t == "" {
			return fmt.Errorf("library: declaration %q: empty optional type: %w", decl.Name, ErrValidation)
		}
	}
	for _, t := range decl.Outputs {
		if t == "" {
			return fmt.Errorf("library: declaration %q: empty output type: %w", decl.Name, ErrValidation)
		}
	}

	return nil
}

// Validate re-runs the registry-wide self-check: every concrete descriptor
// must be reachable from exactly one source declaration, and every
// declaration must have produced exactly one descriptor per optional-input
// subset. A passing registry cannot have silently omitted or duplicated
// entries.
// Complexity: O(number of descriptors).
func (r *Registry) Validate() error {
	perOrigin := make(map[string]int, len(r.decls))
	declared := make(map[string]Declaration, len(r.decls))
	for _, decl := range r.decls {
		if _, dup := declared[decl.Name]; dup {
			return fmt.Errorf("library: declaration %q registered twice: %w", decl.Name, ErrValidation)
		}
		declared[decl.Name] = decl
	}

	for _, d := range r.ordered {
		decl, ok := declared[d.Origin]
		if !ok {
			return fmt.Errorf("library: descriptor %q has unknown origin %q: %w", d.Name, d.Origin, ErrValidation)
		}
		if len(d.Templates) != len(d.Outputs) {
			return fmt.Errorf("library: descriptor %q: %d templates for %d outputs: %w",
				d.Name, len(d.Templates), len(d.Outputs), ErrValidation)
		}
		if len(d.Inputs) < len(decl.Inputs) || len(d.Inputs) > len(decl.Inputs)+len(decl.Optional) {
			return fmt.Errorf("library: descriptor %q: input arity %d outside declared range: %w",
				d.Name, len(d.Inputs), ErrValidation)
		}
		perOrigin[d.Origin]++
	}

	for name, decl := range declared {
		want := 1 << len(decl.Optional)
		if perOrigin[name] != want {
			return fmt.Errorf("library: declaration %q expanded to %d descriptors, want %d: %w",
				name, perOrigin[name], want, ErrValidation)
		}
	}

	return nil
}

// Descriptors returns the registry's concrete descriptors in registration
// order. The returned slice is a copy; callers may reorder it freely (the
// search shuffles its candidate order).
func (r *Registry) Descriptors() []Descriptor {
	return append([]Descriptor(nil), r.ordered...)
}

// Get looks a descriptor up by its expanded name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Len reports the number of concrete descriptors registered.
func (r *Registry) Len() int {
	return len(r.ordered)
}
