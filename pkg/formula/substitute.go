package formula

import "sort"

// ReplaceVariable returns f with every free occurrence of name replaced by
// replacement. Occurrences under a binder of the same name are left alone.
// Free variables of replacement are not renamed, so a binder of the same
// name on the path can capture them.
func ReplaceVariable(f Formula, name string, replacement Formula) Formula {
	return f.ReplaceVariable(name, replacement)
}

func (v Var) ReplaceVariable(name string, replacement Formula) Formula {
	if v.Name == name {
		return replacement
	}
	return v
}

func (a And) ReplaceVariable(name string, replacement Formula) Formula {
	return And{
		Left:  a.Left.ReplaceVariable(name, replacement),
		Right: a.Right.ReplaceVariable(name, replacement),
	}
}

func (o Or) ReplaceVariable(name string, replacement Formula) Formula {
	return Or{
		Left:  o.Left.ReplaceVariable(name, replacement),
		Right: o.Right.ReplaceVariable(name, replacement),
	}
}

func (i IfThen) ReplaceVariable(name string, replacement Formula) Formula {
	return IfThen{
		Left:  i.Left.ReplaceVariable(name, replacement),
		Right: i.Right.ReplaceVariable(name, replacement),
	}
}

func (i IfAndOnlyIf) ReplaceVariable(name string, replacement Formula) Formula {
	return IfAndOnlyIf{
		Left:  i.Left.ReplaceVariable(name, replacement),
		Right: i.Right.ReplaceVariable(name, replacement),
	}
}

func (n Not) ReplaceVariable(name string, replacement Formula) Formula {
	return Not{Operand: n.Operand.ReplaceVariable(name, replacement)}
}

func (c Call) ReplaceVariable(name string, replacement Formula) Formula {
	return Call{
		Caller: c.Caller.ReplaceVariable(name, replacement),
		Arg:    c.Arg.ReplaceVariable(name, replacement),
	}
}

func (l Lambda) ReplaceVariable(name string, replacement Formula) Formula {
	if l.Parameter == name {
		return l
	}
	return Lambda{Parameter: l.Parameter, Body: l.Body.ReplaceVariable(name, replacement)}
}

func (f ForAll) ReplaceVariable(name string, replacement Formula) Formula {
	if f.Symbol == name {
		return f
	}
	return ForAll{Symbol: f.Symbol, Body: f.Body.ReplaceVariable(name, replacement)}
}

func (e Exists) ReplaceVariable(name string, replacement Formula) Formula {
	if e.Symbol == name {
		return e
	}
	return Exists{Symbol: e.Symbol, Body: e.Body.ReplaceVariable(name, replacement)}
}

// FreeVariables returns the sorted names that occur free in f.
func FreeVariables(f Formula) []string {
	seen := make(map[string]bool)
	bound := make(map[string]int)
	var walk func(Formula)
	bind := func(name string, body Formula) {
		bound[name]++
		walk(body)
		if bound[name]--; bound[name] == 0 {
			delete(bound, name)
		}
	}
	walk = func(f Formula) {
		switch t := f.(type) {
		case Var:
			if bound[t.Name] == 0 {
				seen[t.Name] = true
			}
		case And:
			walk(t.Left)
			walk(t.Right)
		case Or:
			walk(t.Left)
			walk(t.Right)
		case IfThen:
			walk(t.Left)
			walk(t.Right)
		case IfAndOnlyIf:
			walk(t.Left)
			walk(t.Right)
		case Not:
			walk(t.Operand)
		case Call:
			walk(t.Caller)
			walk(t.Arg)
		case Lambda:
			bind(t.Parameter, t.Body)
		case ForAll:
			bind(t.Symbol, t.Body)
		case Exists:
			bind(t.Symbol, t.Body)
		}
	}
	walk(f)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
