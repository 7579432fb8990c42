package formula

import "fmt"

// Type is a semantic type: an atomic type or a function type.
type Type interface {
	String() string
	// ConciseString abbreviates <x, y> as xy whenever x and y are atomic.
	ConciseString() string
	isType()
}

// AtomicType is one of the four basic types.
type AtomicType string

const (
	Entity     AtomicType = "e"
	Event      AtomicType = "v"
	TruthValue AtomicType = "t"
	World      AtomicType = "s"
)

// ComplexType is the type of functions from Domain to Range.
type ComplexType struct {
	Domain Type
	Range  Type
}

func (AtomicType) isType()  {}
func (ComplexType) isType() {}

func (a AtomicType) String() string {
	return string(a)
}

func (a AtomicType) ConciseString() string {
	return string(a)
}

func (c ComplexType) String() string {
	return fmt.Sprintf("<%s, %s>", c.Domain, c.Range)
}

func (c ComplexType) ConciseString() string {
	_, leftAtomic := c.Domain.(AtomicType)
	_, rightAtomic := c.Range.(AtomicType)
	if leftAtomic && rightAtomic {
		return c.Domain.String() + c.Range.String()
	}
	return fmt.Sprintf("<%s, %s>", c.Domain.ConciseString(), c.Range.ConciseString())
}

// TypeEqual reports whether two types are structurally identical.
func TypeEqual(a, b Type) bool {
	return a == b
}

func isAtomicLetter(ch byte) bool {
	switch ch {
	case 'e', 'v', 't', 's':
		return true
	}
	return false
}
