// Package world builds interpreter models from Mangle Datalog programs.
//
// A program describes a model with a few reserved predicates:
//
//	individual(/john).        # /john is in the domain
//	constant("j", /john).     # the symbol j denotes /john
//	holds("rain").            # the proposition rain is true
//	proposition("snow").      # snow is a proposition; false unless it holds
//
// Every other predicate whose arguments are all names becomes a relation of
// the same arity, bound under its own name and under the name with the first
// letter capitalised, so good(/john) makes both good(j) and Good(j) true.
// Rules are evaluated to a fixpoint before the model is read off, so derived
// predicates are available like base facts.
package world

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	"github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"

	"github.com/vic/montague/pkg/interpreter"
)

const (
	predIndividual  = "individual"
	predConstant    = "constant"
	predHolds       = "holds"
	predProposition = "proposition"
)

// Load evaluates the program read from r and returns the model it describes.
// The domain holds every individual(...) name and every name occurring in a
// relation or constant, sorted by name.
func Load(r io.Reader) (*interpreter.WorldModel, error) {
	unit, err := parse.Unit(r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	programInfo, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return nil, fmt.Errorf("analysis error: %w", err)
	}
	store := factstore.NewSimpleInMemoryStore()
	if _, err := engine.EvalProgramWithStats(programInfo, store); err != nil {
		return nil, fmt.Errorf("evaluation error: %w", err)
	}

	b := newBuilder()
	for _, pred := range predicates(unit, programInfo) {
		var facts []ast.Atom
		err := store.GetFacts(ast.NewQuery(pred), func(a ast.Atom) error {
			facts = append(facts, a)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get facts for %s: %w", pred.Symbol, err)
		}
		if err := b.add(pred, facts); err != nil {
			return nil, err
		}
	}
	return b.model(), nil
}

// LoadString is Load over a string.
func LoadString(program string) (*interpreter.WorldModel, error) {
	return Load(strings.NewReader(program))
}

// LoadFile is Load over the file at path.
func LoadFile(path string) (*interpreter.WorldModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open world: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// predicates lists the program's own predicates, declared or used in a
// clause head, in a stable order.
func predicates(unit parse.SourceUnit, programInfo *analysis.ProgramInfo) []ast.PredicateSym {
	seen := make(map[ast.PredicateSym]bool)
	var preds []ast.PredicateSym
	addPred := func(p ast.PredicateSym) {
		if seen[p] || strings.HasPrefix(p.Symbol, ":") {
			return
		}
		seen[p] = true
		preds = append(preds, p)
	}
	for p := range programInfo.Decls {
		addPred(p)
	}
	for _, clause := range unit.Clauses {
		addPred(clause.Head.Predicate)
	}
	sort.Slice(preds, func(i, j int) bool {
		if preds[i].Symbol != preds[j].Symbol {
			return preds[i].Symbol < preds[j].Symbol
		}
		return preds[i].Arity < preds[j].Arity
	})
	return preds
}

type builder struct {
	domain     map[interpreter.Individual]bool
	assignment map[string]interpreter.Value
}

func newBuilder() *builder {
	return &builder{
		domain:     make(map[interpreter.Individual]bool),
		assignment: make(map[string]interpreter.Value),
	}
}

func (b *builder) add(pred ast.PredicateSym, facts []ast.Atom) error {
	switch {
	case pred.Symbol == predIndividual && pred.Arity == 1:
		for _, a := range facts {
			ind, err := individual(a, 0)
			if err != nil {
				return err
			}
			b.domain[ind] = true
		}
		return nil

	case pred.Symbol == predConstant && pred.Arity == 2:
		for _, a := range facts {
			name, err := text(a, 0)
			if err != nil {
				return err
			}
			ind, err := individual(a, 1)
			if err != nil {
				return err
			}
			b.domain[ind] = true
			b.assignment[name] = ind
		}
		return nil

	case pred.Symbol == predProposition && pred.Arity == 1:
		for _, a := range facts {
			name, err := text(a, 0)
			if err != nil {
				return err
			}
			if _, ok := b.assignment[name]; !ok {
				b.assignment[name] = interpreter.Truth(false)
			}
		}
		return nil

	case pred.Symbol == predHolds && pred.Arity == 1:
		for _, a := range facts {
			name, err := text(a, 0)
			if err != nil {
				return err
			}
			b.assignment[name] = interpreter.Truth(true)
		}
		return nil
	}

	if pred.Arity < 1 {
		return nil
	}
	tuples := make([][]interpreter.Individual, 0, len(facts))
	for _, a := range facts {
		tuple := make([]interpreter.Individual, len(a.Args))
		for i := range a.Args {
			ind, err := individual(a, i)
			if err != nil {
				return err
			}
			tuple[i] = ind
			b.domain[ind] = true
		}
		tuples = append(tuples, tuple)
	}
	rel, err := interpreter.NewRelation(pred.Arity, tuples...)
	if err != nil {
		return fmt.Errorf("predicate %s: %w", pred.Symbol, err)
	}
	b.assignment[pred.Symbol] = rel
	if alias := capitalize(pred.Symbol); alias != pred.Symbol {
		if _, taken := b.assignment[alias]; !taken {
			b.assignment[alias] = rel
		}
	}
	return nil
}

func (b *builder) model() *interpreter.WorldModel {
	individuals := make([]interpreter.Individual, 0, len(b.domain))
	for ind := range b.domain {
		individuals = append(individuals, ind)
	}
	sort.Slice(individuals, func(i, j int) bool { return individuals[i] < individuals[j] })

	m := interpreter.NewWorldModel(individuals...)
	for name, value := range b.assignment {
		m.Assign(name, value)
	}
	return m
}

// individual reads argument i of a as a name constant. /john becomes john.
func individual(a ast.Atom, i int) (interpreter.Individual, error) {
	c, ok := a.Args[i].(ast.Constant)
	if !ok || c.Type != ast.NameType {
		return "", fmt.Errorf("%s: argument %d must be a name, got %v", a, i+1, a.Args[i])
	}
	return interpreter.Individual(strings.TrimPrefix(c.Symbol, "/")), nil
}

// text reads argument i of a as a string constant naming a formula symbol.
func text(a ast.Atom, i int) (string, error) {
	c, ok := a.Args[i].(ast.Constant)
	if !ok || c.Type != ast.StringType {
		return "", fmt.Errorf("%s: argument %d must be a string, got %v", a, i+1, a.Args[i])
	}
	return c.Symbol, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
