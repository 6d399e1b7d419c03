// SPDX-License-Identifier: MIT
package varenv

// Kind is the declared type of a program variable, coarse enough to
// make spec §7's EnvIncompatible taxon constructible: two variables
// sharing a name but declared with different Kind can never be mixed
// into one environment.
type Kind int

const (
	// KindInt marks a variable drawn from a (mathematically unbounded)
	// integer domain.
	KindInt Kind = iota
	// KindRational marks a variable drawn from the rational domain.
	KindRational
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindRational:
		return "rational"
	default:
		return "unknown"
	}
}

// Variable is one named, typed column of an Environment.
type Variable struct {
	Name string
	Kind Kind
}

// Environment is an ordered, typed set of program variables: the
// column layout a Matrix is defined over. The zero value is the empty
// environment (size 0), ready to use.
type Environment struct {
	vars  []Variable
	index map[string]int
}

// New builds an Environment from vars, in the given order (vars[i]
// becomes column i).
//
// Contract: no empty names, no duplicate names (ErrEmptyName /
// ErrDuplicateVar otherwise).
func New(vars []Variable, opts ...Option) (Environment, error) {
	cfg := newConfig(opts...)
	out := make([]Variable, 0, max(len(vars), cfg.capacityHint))
	idx := make(map[string]int, max(len(vars), cfg.capacityHint))
	for _, v := range vars {
		if v.Name == "" {
			return Environment{}, envErrorf("New", ErrEmptyName)
		}
		if _, dup := idx[v.Name]; dup {
			return Environment{}, envErrorf("New", ErrDuplicateVar)
		}
		idx[v.Name] = len(out)
		out = append(out, v)
	}
	return Environment{vars: out, index: idx}, nil
}

// Empty returns the environment with no variables.
func Empty() Environment { return Environment{} }

// Size returns the number of variables (the column count minus the
// constant column).
func (e Environment) Size() int { return len(e.vars) }

// IsEmpty reports whether e has no variables.
func (e Environment) IsEmpty() bool { return len(e.vars) == 0 }

// Variables returns the variables in column order. Callers must not
// mutate the returned slice.
func (e Environment) Variables() []Variable { return e.vars }

// DimOfVar returns the column index of the named variable.
func (e Environment) DimOfVar(name string) (int, bool) {
	i, ok := e.index[name]
	return i, ok
}

// VariableAt returns the variable occupying column i.
func (e Environment) VariableAt(i int) (Variable, bool) {
	if i < 0 || i >= len(e.vars) {
		return Variable{}, false
	}
	return e.vars[i], true
}

// Has reports whether name is declared in e.
func (e Environment) Has(name string) bool {
	_, ok := e.index[name]
	return ok
}

// Equal reports whether e and o declare the same variables, in the
// same order, with the same Kind.
func (e Environment) Equal(o Environment) bool {
	if len(e.vars) != len(o.vars) {
		return false
	}
	for i := range e.vars {
		if e.vars[i] != o.vars[i] {
			return false
		}
	}
	return true
}
