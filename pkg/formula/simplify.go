package formula

// Simplify beta-reduces f to normal form. Children are reduced first, then a
// Call whose reduced caller is a Lambda is rewritten by substituting the
// argument for the parameter, and the result is reduced again. A formula with
// no redex comes back unchanged.
func Simplify(f Formula) Formula {
	switch t := f.(type) {
	case Var:
		return t
	case And:
		return And{Left: Simplify(t.Left), Right: Simplify(t.Right)}
	case Or:
		return Or{Left: Simplify(t.Left), Right: Simplify(t.Right)}
	case IfThen:
		return IfThen{Left: Simplify(t.Left), Right: Simplify(t.Right)}
	case IfAndOnlyIf:
		return IfAndOnlyIf{Left: Simplify(t.Left), Right: Simplify(t.Right)}
	case Not:
		return Not{Operand: Simplify(t.Operand)}
	case Lambda:
		return Lambda{Parameter: t.Parameter, Body: Simplify(t.Body)}
	case ForAll:
		return ForAll{Symbol: t.Symbol, Body: Simplify(t.Body)}
	case Exists:
		return Exists{Symbol: t.Symbol, Body: Simplify(t.Body)}
	case Call:
		caller := Simplify(t.Caller)
		arg := Simplify(t.Arg)
		if fn, ok := caller.(Lambda); ok {
			return Simplify(fn.Body.ReplaceVariable(fn.Parameter, arg))
		}
		return Call{Caller: caller, Arg: arg}
	default:
		panic("formula: unknown formula variant")
	}
}

// HasRedex reports whether f still contains an application of a lambda.
func HasRedex(f Formula) bool {
	switch t := f.(type) {
	case And:
		return HasRedex(t.Left) || HasRedex(t.Right)
	case Or:
		return HasRedex(t.Left) || HasRedex(t.Right)
	case IfThen:
		return HasRedex(t.Left) || HasRedex(t.Right)
	case IfAndOnlyIf:
		return HasRedex(t.Left) || HasRedex(t.Right)
	case Not:
		return HasRedex(t.Operand)
	case Lambda:
		return HasRedex(t.Body)
	case ForAll:
		return HasRedex(t.Body)
	case Exists:
		return HasRedex(t.Body)
	case Call:
		if _, ok := t.Caller.(Lambda); ok {
			return true
		}
		return HasRedex(t.Caller) || HasRedex(t.Arg)
	}
	return false
}
