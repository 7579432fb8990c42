package interpreter

import "maps"

// WorldModel is a finite domain of individuals, in a fixed iteration order,
// together with the denotations of free symbols. Interpretation never writes
// to the model, so one model may serve concurrent evaluations.
type WorldModel struct {
	Individuals []Individual
	Assignment  map[string]Value
}

// NewWorldModel returns a model over individuals with an empty assignment.
func NewWorldModel(individuals ...Individual) *WorldModel {
	return &WorldModel{
		Individuals: append([]Individual(nil), individuals...),
		Assignment:  make(map[string]Value),
	}
}

// Assign binds name to value. It is meant for building a model, not for use
// while an evaluation over the model is running.
func (m *WorldModel) Assign(name string, value Value) *WorldModel {
	if m.Assignment == nil {
		m.Assignment = make(map[string]Value)
	}
	m.Assignment[name] = value
	return m
}

// Lookup returns the value assigned to name.
func (m *WorldModel) Lookup(name string) (Value, bool) {
	value, ok := m.Assignment[name]
	return value, ok
}

// Clone returns a model with its own individual slice and assignment map.
// Predicates are shared; they are immutable once built.
func (m *WorldModel) Clone() *WorldModel {
	return &WorldModel{
		Individuals: append([]Individual(nil), m.Individuals...),
		Assignment:  maps.Clone(m.Assignment),
	}
}

// scope is an immutable chain of quantifier bindings layered over the model's
// assignment. Binding a name returns a new child; the parent is untouched.
type scope struct {
	name   string
	value  Value
	parent *scope
}

func (s *scope) bind(name string, value Value) *scope {
	return &scope{name: name, value: value, parent: s}
}

func (s *scope) lookup(m *WorldModel, name string) (Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, true
		}
	}
	return m.Lookup(name)
}
