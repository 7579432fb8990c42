package interpreter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vic/montague/pkg/formula"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	john Individual = "john"
	mary Individual = "mary"
)

func testModel(t *testing.T) *WorldModel {
	t.Helper()
	loves, err := NewRelation(2, []Individual{john, mary}, []Individual{mary, mary})
	require.NoError(t, err)
	return NewWorldModel(john, mary).
		Assign("j", john).
		Assign("m", mary).
		Assign("Good", NewSet(john)).
		Assign("Bad", NewSet(mary)).
		Assign("Man", NewSet(john)).
		Assign("Human", NewSet(mary, john)).
		Assign("Alien", NewSet()).
		Assign("Loves", loves).
		Assign("rain", Truth(true)).
		Assign("snow", Truth(false))
}

func TestInterpret(t *testing.T) {
	model := testModel(t)
	cases := []struct {
		name    string
		formula string
		want    bool
	}{
		{"john is good", "Good(j)", true},
		{"john is not good", "~Good(j)", false},
		{"john is bad", "Bad(j)", false},
		{"mary is bad and john is good", "Bad(m) & Good(j)", true},
		{"disjunction", "Bad(j) | Good(j)", true},
		{"implication from false", "Bad(j) -> Alien(j)", true},
		{"implication to false", "Good(j) -> Alien(j)", false},
		{"biconditional", "Man(j) <-> Good(j)", true},
		{"biconditional false", "Man(m) <-> Human(m)", false},
		{"everyone is bad", "Ax.Bad(x)", false},
		{"everyone is human", "Ax.Human(x)", true},
		{"someone is bad", "Ex.Bad(x)", true},
		{"someone is alien", "Ex.Alien(x)", false},
		{"john loves mary", "Loves(j, m)", true},
		{"mary loves john", "Loves(m, j)", false},
		{"everyone loves mary", "Ax.Loves(x, m)", true},
		{"someone loves everyone", "Ex.Ay.Loves(x, y)", false},
		{"nested shadowing", "Ax.[Ex.Bad(x)] & Human(x)", true},
		{"propositions", "rain & ~snow", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Interpret(formula.MustParseFormula(tc.formula), model)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, tc.formula)
		})
	}
}

func TestInterpretUnboundVariable(t *testing.T) {
	_, err := Interpret(formula.MustParseFormula("Good(k)"), testModel(t))
	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound), "got %v", err)
	assert.Equal(t, "k", unbound.Name)

	// The right operand is evaluated even when the left one decides.
	_, err = Interpret(formula.MustParseFormula("Bad(j) & Ugly(j)"), testModel(t))
	require.True(t, errors.As(err, &unbound), "got %v", err)
	assert.Equal(t, "Ugly", unbound.Name)
}

func TestInterpretLambdaIsUninterpretable(t *testing.T) {
	_, err := Interpret(formula.MustParseFormula("Lx.Good(x)"), testModel(t))
	var form *UninterpretableFormError
	require.True(t, errors.As(err, &form), "got %v", err)
	assert.IsType(t, formula.Lambda{}, form.Formula)

	var unbound *UnboundVariableError
	assert.False(t, errors.As(err, &unbound))
}

func TestInterpretTypeMismatches(t *testing.T) {
	model := testModel(t)
	for _, input := range []string{
		"j",           // an individual, not a truth value
		"j(m)",        // an individual is not a predicate
		"Good(Bad)",   // a predicate is not an individual
		"Loves(j)",    // a partially applied relation is not a truth value
		"Good(j) & j", // connective over an individual
	} {
		_, err := Interpret(formula.MustParseFormula(input), model)
		var form *UninterpretableFormError
		assert.True(t, errors.As(err, &form), "%s: got %v", input, err)
	}
}

func TestEvaluate(t *testing.T) {
	model := testModel(t)

	value, err := Evaluate(formula.MustParseFormula("j"), model)
	require.NoError(t, err)
	assert.Equal(t, john, value)

	value, err = Evaluate(formula.MustParseFormula("Loves(j)"), model)
	require.NoError(t, err)
	pred, ok := value.(*Predicate)
	require.True(t, ok, "got %T", value)
	assert.Equal(t, 1, pred.Arity())
	assert.True(t, pred.Contains(mary))
	assert.Equal(t, "{mary}", pred.String())
}

func TestQuantifiersLeaveAssignmentUntouched(t *testing.T) {
	model := testModel(t)
	model.Assign("x", mary)
	before := model.Clone()

	for _, input := range []string{"Ax.Bad(x)", "Ax.Human(x)", "Ex.Bad(x)", "Ex.Alien(x)", "Ey.Ax.Loves(x, y)"} {
		_, err := Interpret(formula.MustParseFormula(input), model)
		require.NoError(t, err)
		assert.Equal(t, before.Assignment, model.Assignment, input)
	}

	// Absent stays absent.
	delete(model.Assignment, "x")
	_, err := Interpret(formula.MustParseFormula("Ax.Human(x)"), model)
	require.NoError(t, err)
	_, present := model.Lookup("x")
	assert.False(t, present)
}

func TestVacuousQuantification(t *testing.T) {
	empty := NewWorldModel()
	got, err := Interpret(formula.MustParseFormula("Ax.Unknown(x)"), empty)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Interpret(formula.MustParseFormula("Ex.Unknown(x)"), empty)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestQuantifierBodyErrorsPropagate(t *testing.T) {
	model := testModel(t)
	for _, input := range []string{"Ax.Missing(x)", "Ex.Missing(x)"} {
		_, err := Interpret(formula.MustParseFormula(input), model)
		var unbound *UnboundVariableError
		require.True(t, errors.As(err, &unbound), "%s: got %v", input, err)
		assert.Equal(t, "Missing", unbound.Name)
	}
}

func TestEvaluateAll(t *testing.T) {
	model := testModel(t)
	inputs := []string{"Good(j)", "Bad(j)", "Ax.Human(x)", "Ex.Alien(x)", "Loves(j, m)"}
	formulas := make([]formula.Formula, len(inputs))
	for i, input := range inputs {
		formulas[i] = formula.MustParseFormula(input)
	}

	got, err := EvaluateAll(context.Background(), model, formulas, 2)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false, true}, got)
}

func TestEvaluateAllReportsFailure(t *testing.T) {
	model := testModel(t)
	formulas := []formula.Formula{
		formula.MustParseFormula("Good(j)"),
		formula.MustParseFormula("Lx.x"),
	}
	_, err := EvaluateAll(context.Background(), model, formulas, 0)
	var form *UninterpretableFormError
	require.True(t, errors.As(err, &form), "got %v", err)
	assert.Contains(t, err.Error(), "formula 1")
}

func TestEvaluateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := EvaluateAll(ctx, testModel(t), []formula.Formula{formula.MustParseFormula("Good(j)")}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRelationRejectsBadTuples(t *testing.T) {
	_, err := NewRelation(2, []Individual{john})
	assert.Error(t, err)
	_, err = NewRelation(0)
	assert.Error(t, err)
}
