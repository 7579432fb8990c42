package interpreter

import (
	"fmt"
	"sort"
	"strings"
)

// Value is what a formula denotes in a model.
type Value interface {
	String() string
	isValue()
}

// Individual is an entity of the domain, identified by name.
type Individual string

// Truth is a truth value.
type Truth bool

// Predicate is the extension of an n-ary predicate: a set of n-tuples of
// individuals. Applying it to an individual fixes the first position.
type Predicate struct {
	arity  int
	tuples [][]Individual
}

func (Individual) isValue() {}
func (Truth) isValue()      {}
func (*Predicate) isValue() {}

func (i Individual) String() string { return string(i) }

func (t Truth) String() string {
	if t {
		return "true"
	}
	return "false"
}

// NewSet returns the unary predicate holding exactly members.
func NewSet(members ...Individual) *Predicate {
	p := &Predicate{arity: 1}
	for _, m := range members {
		p.add([]Individual{m})
	}
	return p
}

// NewRelation returns the predicate of the given arity holding tuples.
// Every tuple must have exactly arity elements.
func NewRelation(arity int, tuples ...[]Individual) (*Predicate, error) {
	if arity < 1 {
		return nil, fmt.Errorf("relation arity must be positive, got %d", arity)
	}
	p := &Predicate{arity: arity}
	for _, tuple := range tuples {
		if len(tuple) != arity {
			return nil, fmt.Errorf("tuple %v does not have arity %d", tuple, arity)
		}
		p.add(tuple)
	}
	return p, nil
}

func (p *Predicate) add(tuple []Individual) {
	for _, existing := range p.tuples {
		if equalTuple(existing, tuple) {
			return
		}
	}
	p.tuples = append(p.tuples, append([]Individual(nil), tuple...))
}

// Arity is the number of arguments the predicate takes.
func (p *Predicate) Arity() int { return p.arity }

// Len is the number of tuples in the extension.
func (p *Predicate) Len() int { return len(p.tuples) }

// Contains reports whether tuple is in the extension.
func (p *Predicate) Contains(tuple ...Individual) bool {
	for _, existing := range p.tuples {
		if equalTuple(existing, tuple) {
			return true
		}
	}
	return false
}

// Apply fixes the first argument. A unary predicate yields the membership of
// x; a wider one yields the predicate over the remaining positions of the
// tuples that start with x.
func (p *Predicate) Apply(x Individual) Value {
	if p.arity == 1 {
		return Truth(p.Contains(x))
	}
	rest := &Predicate{arity: p.arity - 1}
	for _, tuple := range p.tuples {
		if tuple[0] == x {
			rest.tuples = append(rest.tuples, tuple[1:])
		}
	}
	return rest
}

func (p *Predicate) String() string {
	parts := make([]string, 0, len(p.tuples))
	for _, tuple := range p.tuples {
		names := make([]string, len(tuple))
		for i, ind := range tuple {
			names[i] = string(ind)
		}
		if p.arity == 1 {
			parts = append(parts, names[0])
		} else {
			parts = append(parts, "("+strings.Join(names, ", ")+")")
		}
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

func equalTuple(a, b []Individual) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
