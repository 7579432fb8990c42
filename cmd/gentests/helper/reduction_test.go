package helper

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vic/montague/pkg/formula"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		a, b  string
		equal bool
	}{
		{"Lx.x", "Ly.y", true},
		{"Lx.Ly.x", "La.Lb.a", true},
		{"Lx.Ly.x", "La.Lb.b", false},
		{"Ax.P(x, y)", "Az.P(z, y)", true},
		{"Ax.P(x, y)", "Ay.P(y, y)", false},
		{"Lx.x & [Lx.x]", "La.a & [Lb.b]", true},
		{"Lx.[Ex.Q(x)] & P(x)", "Ly.[Ez.Q(z)] & P(y)", true},
		{"P(x)", "P(y)", false},
	}
	for _, tc := range cases {
		a := Normalize(formula.MustParseFormula(tc.a))
		b := Normalize(formula.MustParseFormula(tc.b))
		if got := cmp.Equal(a, b); got != tc.equal {
			t.Errorf("Normalize(%s) == Normalize(%s): got %v, want %v (%s vs %s)", tc.a, tc.b, got, tc.equal, a, b)
		}
	}
}

func TestCheckReduction(t *testing.T) {
	CheckReduction(t, "inline", "(Lx.Ly.x & y)(a, b)", "a & b")
	CheckReduction(t, "inline_alpha", "(LP.LQ.Ax.P(x) -> Q(x))(Lx.Child(x))", "LR.Az.Child(z) -> R(z)")
}
